package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/calculator"
	"github.com/mmynk/carnival/internal/ledger"
	"github.com/mmynk/carnival/internal/models"
	"github.com/mmynk/carnival/internal/storage"
	pb "github.com/mmynk/carnival/pkg/proto"
)

// toConnectError maps ledger errors onto RPC codes. Data source failures
// only expose their user-facing message.
func toConnectError(err error) error {
	var dsErr *ledger.DataSourceError
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.As(err, &dsErr):
		return connect.NewError(connect.CodeUnavailable, errors.New(dsErr.Message))
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// reportAfterWrite rebuilds the event report once a write is committed.
// A failed rebuild is logged and flagged as stale instead of failing the
// call, so clients never resubmit a write that was stored.
func reportAfterWrite(ctx context.Context, l *ledger.Service, op, eventID string) (report *pb.Report, stale bool) {
	r, err := l.Recompute(ctx, eventID)
	if err != nil {
		slog.Error("Recompute after write failed, report is stale",
			"op", op,
			"event_id", eventID,
			"error", err,
		)
		return nil, true
	}
	return toProtoReport(r), false
}

// parseAmount reads a decimal amount. A blank amount is zero and left to
// the ledger's validation.
func parseAmount(field, s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s must be a decimal number, got %q", ledger.ErrValidation, field, s)
	}
	return d, nil
}

// parseDate reads an optional YYYY-MM-DD date.
func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD, got %q", ledger.ErrValidation, field, s)
	}
	return t, nil
}

// parseMonth reads an optional YYYY-MM month.
func parseMonth(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := models.ParseMonth(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ledger.ErrValidation, err)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}

func toProtoParticipant(p models.Participant) *pb.Participant {
	return &pb.Participant{
		Id:       p.ID,
		Name:     p.Name,
		Type:     string(p.Type),
		Children: int32(p.Children),
	}
}

func toProtoEvent(e models.Event) *pb.Event {
	return &pb.Event{
		Id:        e.ID,
		Name:      e.Name,
		Year:      int32(e.Year),
		StartDate: formatDate(e.StartDate),
		EndDate:   formatDate(e.EndDate),
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
	}
}

func toProtoExpense(e models.Expense) *pb.Expense {
	return &pb.Expense{
		Id:          e.ID,
		EventId:     e.EventID,
		Description: e.Description,
		Amount:      e.Amount.String(),
		Category:    e.Category,
		Date:        formatDate(e.Date),
		PayerId:     e.PayerID,
		CreatedAt:   e.CreatedAt,
	}
}

func toProtoPayment(p models.Payment) *pb.Payment {
	return &pb.Payment{
		Id:         p.ID,
		EventId:    p.EventID,
		PayerId:    p.PayerID,
		ReceiverId: p.ReceiverID,
		Amount:     p.Amount.String(),
		Note:       p.Note,
		RecordedBy: p.RecordedBy,
		CreatedAt:  p.CreatedAt,
	}
}

func toProtoPayments(payments []models.Payment) []*pb.Payment {
	out := make([]*pb.Payment, len(payments))
	for i, p := range payments {
		out[i] = toProtoPayment(p)
	}
	return out
}

func toProtoContribution(c models.Contribution) *pb.Contribution {
	return &pb.Contribution{
		Id:            c.ID,
		EventId:       c.EventID,
		ParticipantId: c.ParticipantID,
		Amount:        c.Amount.String(),
		Month:         c.Month.Format(models.MonthLayout),
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt,
	}
}

func toProtoContributions(contributions []models.Contribution) []*pb.Contribution {
	out := make([]*pb.Contribution, len(contributions))
	for i, c := range contributions {
		out[i] = toProtoContribution(c)
	}
	return out
}

func toProtoContributionTotals(totals []calculator.ContributionTotal) []*pb.ContributionTotal {
	out := make([]*pb.ContributionTotal, len(totals))
	for i, t := range totals {
		out[i] = &pb.ContributionTotal{
			ParticipantId:   t.ParticipantID,
			ParticipantName: t.ParticipantName,
			Amount:          t.Amount.String(),
			Count:           int32(t.Count),
		}
	}
	return out
}

func toProtoMonthly(groups []calculator.MonthlyContributions) []*pb.MonthlyContributions {
	out := make([]*pb.MonthlyContributions, len(groups))
	for i, g := range groups {
		out[i] = &pb.MonthlyContributions{
			Month:         g.Month.Format(models.MonthLayout),
			Total:         g.Total.String(),
			Contributions: toProtoContributions(g.Contributions),
		}
	}
	return out
}

func toProtoDetailed(d calculator.DetailedPayment) *pb.DetailedPayment {
	return &pb.DetailedPayment{
		FromId:             d.FromID,
		FromName:           d.FromName,
		ToId:               d.ToID,
		ToName:             d.ToName,
		Amount:             d.Amount.String(),
		ExpenseId:          d.ExpenseID,
		ExpenseDescription: d.ExpenseDescription,
	}
}

func toProtoReport(r *ledger.Report) *pb.Report {
	out := &pb.Report{
		EventId:    r.EventID,
		Policy:     string(r.Policy),
		Balances:   make([]*pb.Balance, len(r.Balances)),
		Detailed:   make([]*pb.DetailedPayment, len(r.Detailed)),
		ByExpense:  make([]*pb.ExpenseDetail, len(r.ByExpense)),
		Lines:      make([]*pb.SettlementLine, len(r.Lines)),
		ByOwer:     make([]*pb.PaymentsByPayer, len(r.ByOwer)),
		Categories: make([]*pb.CategoryTotal, len(r.Categories)),
		Payments:   toProtoPayments(r.Payments),
		Summary: &pb.Summary{
			TotalSpent:       r.Summary.TotalSpent.String(),
			TotalCredit:      r.Summary.TotalCredit.String(),
			TotalDebit:       r.Summary.TotalDebit.String(),
			Imbalance:        r.Summary.Imbalance.String(),
			TotalOutstanding: r.Summary.TotalOutstanding.String(),
			Balanced:         r.Summary.Balanced,
		},
		Overview: &pb.Overview{
			Adults:           int32(r.Overview.Adults),
			Children:         int32(r.Overview.Children),
			TotalSpent:       r.Overview.TotalSpent.String(),
			CostPerAdult:     r.Overview.CostPerAdult.String(),
			CostPerCouple:    r.Overview.CostPerCouple.String(),
			TotalContributed: r.Overview.TotalContributed.String(),
		},
		ContributionTotals:   toProtoContributionTotals(r.ContributionTotals),
		ContributionsByMonth: toProtoMonthly(r.ContributionsByMonth),
		Participants:         make([]*pb.Participant, len(r.Participants)),
	}

	for i, p := range r.Participants {
		out.Participants[i] = toProtoParticipant(p)
	}
	for i, b := range r.Balances {
		out.Balances[i] = &pb.Balance{
			Participant: toProtoParticipant(b.Participant),
			Paid:        b.Paid.String(),
			Shares:      b.Shares.String(),
			Sent:        b.Sent.String(),
			Received:    b.Received.String(),
			Owed:        b.Owed.String(),
			Owes:        b.Owes.String(),
			Balance:     b.Balance.String(),
		}
	}
	for i, d := range r.Detailed {
		out.Detailed[i] = toProtoDetailed(d)
	}
	for i, e := range r.ByExpense {
		payments := make([]*pb.DetailedPayment, len(e.Payments))
		for j, d := range e.Payments {
			payments[j] = toProtoDetailed(d)
		}
		out.ByExpense[i] = &pb.ExpenseDetail{
			Expense:   toProtoExpense(e.Expense),
			PayerName: e.PayerName,
			Payments:  payments,
		}
	}
	for i, l := range r.Lines {
		out.Lines[i] = &pb.SettlementLine{
			OwerId:      l.OwerID,
			PayerId:     l.PayerID,
			Amount:      l.Amount.String(),
			PaidAmount:  l.PaidAmount.String(),
			Payments:    int32(l.Payments),
			Outstanding: l.Outstanding.String(),
			IsPaid:      l.IsPaid,
			ExpenseIds:  l.ExpenseIDs,
		}
	}
	for i, g := range r.ByOwer {
		transfers := make([]*pb.Transfer, len(g.Payments))
		for j, t := range g.Payments {
			transfers[j] = &pb.Transfer{
				Receiver:    toProtoParticipant(t.Receiver),
				Amount:      t.Amount.String(),
				Outstanding: t.Outstanding.String(),
				IsPaid:      t.IsPaid,
			}
		}
		out.ByOwer[i] = &pb.PaymentsByPayer{Payer: toProtoParticipant(g.Payer), Payments: transfers}
	}
	for i, c := range r.Categories {
		out.Categories[i] = &pb.CategoryTotal{
			Category:   c.Category,
			Amount:     c.Amount.String(),
			Count:      int32(c.Count),
			Percentage: c.Percentage.String(),
		}
	}
	for _, g := range r.Gaps {
		out.Gaps = append(out.Gaps, &pb.Gap{
			Kind:      string(g.Kind),
			RecordId:  g.RecordID,
			Reference: g.Reference,
			Amount:    g.Amount.String(),
		})
	}
	return out
}
