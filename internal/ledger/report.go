package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/carnival/internal/calculator"
	"github.com/mmynk/carnival/internal/models"
)

// Snapshot is the fully loaded input of one recomputation.
type Snapshot struct {
	Participants []models.Participant
	Expenses     []models.Expense
	Shares       []models.ExpenseShare
	Payments     []models.Payment
	// Contributions never move a balance.
	Contributions []models.Contribution
}

// Report is every balance view of one event, computed from one Snapshot.
type Report struct {
	EventID string
	Policy  calculator.ReconcilePolicy

	// Participants is the roster sorted by name ignoring case and accents.
	Participants []models.Participant

	Balances    []calculator.ParticipantBalance
	Obligations []calculator.Obligation

	// Detailed is the flat per-expense breakdown; ByExpense groups the
	// same lines under their expense. Neither view knows about payments.
	Detailed  []calculator.DetailedPayment
	ByExpense []calculator.ExpenseDetail

	Lines  []calculator.SettlementLine
	ByOwer []calculator.PaymentsByPayer

	Categories []calculator.CategoryTotal
	Summary    calculator.Summary
	Gaps       []calculator.Gap

	// Payments is the payment history, newest first.
	Payments []models.Payment

	Overview             calculator.Overview
	ContributionTotals   []calculator.ContributionTotal
	ContributionsByMonth []calculator.MonthlyContributions
}

// Build runs the calculator over snap. It is deterministic and does no I/O.
func Build(eventID string, snap Snapshot, policy calculator.ReconcilePolicy, driftThreshold decimal.Decimal) *Report {
	roster := calculator.NewRoster(snap.Participants)

	balances := calculator.ComputeBalances(snap.Participants, snap.Expenses, snap.Shares, snap.Payments)
	obligations := calculator.DeriveObligations(roster, snap.Expenses, snap.Shares)
	lines := calculator.Reconcile(obligations, snap.Payments, policy)

	participants := slices.Clone(snap.Participants)
	calculator.SortByName(participants)

	return &Report{
		EventID:              eventID,
		Policy:               policy,
		Participants:         participants,
		Balances:             balances,
		Obligations:          obligations,
		Detailed:             calculator.DetailedPayments(roster, obligations),
		ByExpense:            calculator.DetailByExpense(roster, snap.Expenses, obligations),
		Lines:                lines,
		ByOwer:               calculator.ProjectByOwer(lines, snap.Participants),
		Categories:           calculator.CategoryTotals(snap.Expenses),
		Summary:              calculator.Summarize(snap.Expenses, balances, lines),
		Gaps:                 calculator.FindGaps(snap.Participants, snap.Expenses, snap.Shares, snap.Payments, driftThreshold),
		Payments:             snap.Payments,
		Overview:             calculator.ComputeOverview(snap.Participants, snap.Expenses, snap.Contributions),
		ContributionTotals:   calculator.ContributionTotals(roster, snap.Contributions),
		ContributionsByMonth: calculator.ContributionsByMonth(snap.Contributions),
	}
}

// Recompute loads the event's records and rebuilds every view. Callers
// invoke it after each write; nothing is cached between calls.
func (s *Service) Recompute(ctx context.Context, eventID string) (report *Report, err error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveRecompute(time.Since(start), err)
	}()

	if eventID == "" {
		return nil, invalid(fmt.Errorf("%w: event id is required", models.ErrMissingField))
	}
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, readErr("get event", err)
	}

	snap, err := s.load(ctx, eventID)
	if err != nil {
		slog.Error("Ledger load failed", "event_id", eventID, "error", err)
		return nil, err
	}

	report = Build(eventID, snap, s.policy, s.driftThreshold)
	s.reportGaps(eventID, report.Gaps)

	slog.Debug("Ledger recomputed",
		"event_id", eventID,
		"participants", len(snap.Participants),
		"expenses", len(snap.Expenses),
		"payments", len(snap.Payments),
		"contributions", len(snap.Contributions),
		"lines", len(report.Lines),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return report, nil
}

// load issues the five independent reads concurrently. The first failure
// cancels the others and no partial snapshot is returned.
func (s *Service) load(ctx context.Context, eventID string) (Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		participants, err := s.store.ListParticipants(ctx, eventID)
		if err != nil {
			return readErr("list participants", err)
		}
		snap.Participants = participants
		return nil
	})

	g.Go(func() error {
		expenses, err := s.store.ListExpenses(ctx, eventID)
		if err != nil {
			return readErr("list expenses", err)
		}
		snap.Expenses = expenses
		return nil
	})

	g.Go(func() error {
		shares, err := s.store.ListExpenseShares(ctx, eventID)
		if err != nil {
			return readErr("list expense shares", err)
		}
		snap.Shares = shares
		return nil
	})

	g.Go(func() error {
		payments, err := s.store.ListPayments(ctx, eventID)
		if err != nil {
			return readErr("list payments", err)
		}
		snap.Payments = payments
		return nil
	})

	g.Go(func() error {
		contributions, err := s.store.ListContributions(ctx, eventID)
		if err != nil {
			return readErr("list contributions", err)
		}
		snap.Contributions = contributions
		return nil
	})

	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s *Service) reportGaps(eventID string, gaps []calculator.Gap) {
	counts := make(map[calculator.GapKind]int)
	for _, gap := range gaps {
		counts[gap.Kind]++
		slog.Warn("Ledger record skipped or flagged",
			"event_id", eventID,
			"kind", string(gap.Kind),
			"record_id", gap.RecordID,
			"reference", gap.Reference,
			"amount", gap.Amount.String(),
		)
	}
	for kind, n := range counts {
		s.metrics.AddGaps(string(kind), n)
	}
}
