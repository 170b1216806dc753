package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/carnival/internal/calculator"
	"github.com/mmynk/carnival/internal/ledger"
	"github.com/mmynk/carnival/internal/middleware"
	pb "github.com/mmynk/carnival/pkg/proto"
	"github.com/mmynk/carnival/pkg/proto/protoconnect"
)

// LedgerService implements the Connect LedgerService. Every write answers
// with a freshly recomputed report, or with report_stale set when the
// write was stored but the report could not be rebuilt.
type LedgerService struct {
	protoconnect.UnimplementedLedgerServiceHandler
	ledger *ledger.Service
}

// NewLedgerService creates a new LedgerService over the given ledger.
func NewLedgerService(l *ledger.Service) *LedgerService {
	return &LedgerService{ledger: l}
}

// GetBalances recomputes and returns every balance view of an event.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[pb.GetBalancesRequest]) (*connect.Response[pb.GetBalancesResponse], error) {
	eventID := req.Msg.GetEventId()
	slog.Info("GetBalances request received", "event_id", eventID)

	report, err := s.ledger.Recompute(ctx, eventID)
	if err != nil {
		slog.Error("GetBalances failed", "event_id", eventID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetBalances successful",
		"event_id", eventID,
		"balances", len(report.Balances),
		"lines", len(report.Lines),
	)
	return connect.NewResponse(&pb.GetBalancesResponse{Report: toProtoReport(report)}), nil
}

// CreateExpense records an expense split among the selected participants.
func (s *LedgerService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.CreateExpenseResponse], error) {
	msg := req.Msg
	slog.Info("CreateExpense request received",
		"event_id", msg.GetEventId(),
		"amount", msg.GetAmount(),
		"payer_id", msg.GetPayerId(),
		"participants_count", len(msg.GetParticipantIds()),
	)

	amount, err := parseAmount("amount", msg.GetAmount())
	if err != nil {
		return nil, toConnectError(err)
	}
	date, err := parseDate("date", msg.GetDate())
	if err != nil {
		return nil, toConnectError(err)
	}

	expense, shares, err := s.ledger.RecordExpense(ctx, ledger.ExpenseInput{
		EventID:        msg.GetEventId(),
		Description:    msg.GetDescription(),
		Amount:         amount,
		Category:       msg.GetCategory(),
		Date:           date,
		PayerID:        msg.GetPayerId(),
		Division:       calculator.DivisionType(msg.GetDivision()),
		ParticipantIDs: msg.GetParticipantIds(),
	})
	if err != nil {
		slog.Error("CreateExpense failed", "event_id", msg.GetEventId(), "error", err)
		return nil, toConnectError(err)
	}

	pbShares := make([]*pb.Share, len(shares))
	for i, sh := range shares {
		pbShares[i] = &pb.Share{ParticipantId: sh.ParticipantID, Amount: sh.Amount.String()}
	}
	report, stale := reportAfterWrite(ctx, s.ledger, ledger.OpCreateExpense, expense.EventID)
	return connect.NewResponse(&pb.CreateExpenseResponse{
		Expense:     toProtoExpense(*expense),
		Shares:      pbShares,
		Report:      report,
		ReportStale: stale,
	}), nil
}

// DeleteExpense removes an expense and its shares.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[pb.DeleteExpenseRequest]) (*connect.Response[pb.DeleteExpenseResponse], error) {
	expenseID := req.Msg.GetExpenseId()
	slog.Info("DeleteExpense request received", "expense_id", expenseID)

	expense, err := s.ledger.DeleteExpense(ctx, expenseID)
	if err != nil {
		slog.Error("DeleteExpense failed", "expense_id", expenseID, "error", err)
		return nil, toConnectError(err)
	}

	report, stale := reportAfterWrite(ctx, s.ledger, ledger.OpDeleteExpense, expense.EventID)
	return connect.NewResponse(&pb.DeleteExpenseResponse{Report: report, ReportStale: stale}), nil
}

// RecordPayment registers a settlement payment. The verified recorder, if
// any, is stored with it.
func (s *LedgerService) RecordPayment(ctx context.Context, req *connect.Request[pb.RecordPaymentRequest]) (*connect.Response[pb.RecordPaymentResponse], error) {
	msg := req.Msg
	recorder := middleware.GetRecorder(ctx)
	slog.Info("RecordPayment request received",
		"event_id", msg.GetEventId(),
		"payer_id", msg.GetPayerId(),
		"receiver_id", msg.GetReceiverId(),
		"amount", msg.GetAmount(),
		"recorder", recorder,
	)

	amount, err := parseAmount("amount", msg.GetAmount())
	if err != nil {
		return nil, toConnectError(err)
	}

	payment, err := s.ledger.RecordPayment(ctx, ledger.PaymentInput{
		EventID:    msg.GetEventId(),
		PayerID:    msg.GetPayerId(),
		ReceiverID: msg.GetReceiverId(),
		Amount:     amount,
		Note:       msg.GetNote(),
		RecordedBy: recorder,
	})
	if err != nil {
		slog.Error("RecordPayment failed", "event_id", msg.GetEventId(), "error", err)
		return nil, toConnectError(err)
	}

	report, stale := reportAfterWrite(ctx, s.ledger, ledger.OpRecordPayment, payment.EventID)
	return connect.NewResponse(&pb.RecordPaymentResponse{
		Payment:     toProtoPayment(*payment),
		Report:      report,
		ReportStale: stale,
	}), nil
}

// DeletePayment removes a payment of the given event and returns the
// event's new report.
func (s *LedgerService) DeletePayment(ctx context.Context, req *connect.Request[pb.DeletePaymentRequest]) (*connect.Response[pb.DeletePaymentResponse], error) {
	eventID, paymentID := req.Msg.GetEventId(), req.Msg.GetPaymentId()
	slog.Info("DeletePayment request received", "event_id", eventID, "payment_id", paymentID)

	if err := s.ledger.DeletePayment(ctx, eventID, paymentID); err != nil {
		slog.Error("DeletePayment failed", "event_id", eventID, "payment_id", paymentID, "error", err)
		return nil, toConnectError(err)
	}

	report, stale := reportAfterWrite(ctx, s.ledger, ledger.OpDeletePayment, eventID)
	return connect.NewResponse(&pb.DeletePaymentResponse{Report: report, ReportStale: stale}), nil
}

// ListPayments returns the payment history, newest first.
func (s *LedgerService) ListPayments(ctx context.Context, req *connect.Request[pb.ListPaymentsRequest]) (*connect.Response[pb.ListPaymentsResponse], error) {
	eventID := req.Msg.GetEventId()
	slog.Info("ListPayments request received", "event_id", eventID)

	payments, err := s.ledger.ListPayments(ctx, eventID)
	if err != nil {
		slog.Error("ListPayments failed", "event_id", eventID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ListPayments successful", "event_id", eventID, "count", len(payments))
	return connect.NewResponse(&pb.ListPaymentsResponse{Payments: toProtoPayments(payments)}), nil
}

// RecordContribution registers money a participant put into the event
// fund. Contributions do not move balances.
func (s *LedgerService) RecordContribution(ctx context.Context, req *connect.Request[pb.RecordContributionRequest]) (*connect.Response[pb.RecordContributionResponse], error) {
	msg := req.Msg
	slog.Info("RecordContribution request received",
		"event_id", msg.GetEventId(),
		"participant_id", msg.GetParticipantId(),
		"amount", msg.GetAmount(),
		"month", msg.GetMonth(),
	)

	amount, err := parseAmount("amount", msg.GetAmount())
	if err != nil {
		return nil, toConnectError(err)
	}
	month, err := parseMonth(msg.GetMonth())
	if err != nil {
		return nil, toConnectError(err)
	}

	contribution, err := s.ledger.RecordContribution(ctx, ledger.ContributionInput{
		EventID:       msg.GetEventId(),
		ParticipantID: msg.GetParticipantId(),
		Amount:        amount,
		Month:         month,
		Notes:         msg.GetNotes(),
	})
	if err != nil {
		slog.Error("RecordContribution failed", "event_id", msg.GetEventId(), "error", err)
		return nil, toConnectError(err)
	}

	report, stale := reportAfterWrite(ctx, s.ledger, ledger.OpRecordContribution, contribution.EventID)
	return connect.NewResponse(&pb.RecordContributionResponse{
		Contribution: toProtoContribution(*contribution),
		Report:       report,
		ReportStale:  stale,
	}), nil
}

// DeleteContribution removes a contribution of the given event.
func (s *LedgerService) DeleteContribution(ctx context.Context, req *connect.Request[pb.DeleteContributionRequest]) (*connect.Response[pb.DeleteContributionResponse], error) {
	eventID, contributionID := req.Msg.GetEventId(), req.Msg.GetContributionId()
	slog.Info("DeleteContribution request received", "event_id", eventID, "contribution_id", contributionID)

	if err := s.ledger.DeleteContribution(ctx, eventID, contributionID); err != nil {
		slog.Error("DeleteContribution failed", "event_id", eventID, "contribution_id", contributionID, "error", err)
		return nil, toConnectError(err)
	}

	report, stale := reportAfterWrite(ctx, s.ledger, ledger.OpDeleteContribution, eventID)
	return connect.NewResponse(&pb.DeleteContributionResponse{Report: report, ReportStale: stale}), nil
}

// ListContributions returns the contribution history with per-participant
// and per-month totals.
func (s *LedgerService) ListContributions(ctx context.Context, req *connect.Request[pb.ListContributionsRequest]) (*connect.Response[pb.ListContributionsResponse], error) {
	eventID := req.Msg.GetEventId()
	slog.Info("ListContributions request received", "event_id", eventID)

	list, err := s.ledger.ListContributions(ctx, eventID)
	if err != nil {
		slog.Error("ListContributions failed", "event_id", eventID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("ListContributions successful", "event_id", eventID, "count", len(list.Contributions))
	return connect.NewResponse(&pb.ListContributionsResponse{
		Contributions: toProtoContributions(list.Contributions),
		Totals:        toProtoContributionTotals(list.Totals),
		ByMonth:       toProtoMonthly(list.ByMonth),
	}), nil
}
