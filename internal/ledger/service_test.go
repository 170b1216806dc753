package ledger

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/carnival/internal/calculator"
	"github.com/mmynk/carnival/internal/metrics"
	"github.com/mmynk/carnival/internal/models"
	"github.com/mmynk/carnival/internal/storage"
	"github.com/mmynk/carnival/internal/storage/memory"
)

type fixture struct {
	store    *memory.Store
	svc      *Service
	metrics  *metrics.Metrics
	event    *models.Event
	alice    *models.Participant
	bobCarol *models.Participant
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	ctx := context.Background()

	store := memory.New()
	m := metrics.New()
	svc := New(store, append([]Option{WithMetrics(m)}, opts...)...)

	event, err := svc.CreateEvent(ctx, EventInput{Name: "Carnival 2026", Year: 2026})
	require.NoError(t, err)
	alice, err := svc.CreateParticipant(ctx, ParticipantInput{Name: "Alice", Type: models.Individual, EventID: event.ID})
	require.NoError(t, err)
	bobCarol, err := svc.CreateParticipant(ctx, ParticipantInput{Name: "Bob & Carol", Type: models.Couple, Children: 1, EventID: event.ID})
	require.NoError(t, err)

	return &fixture{store: store, svc: svc, metrics: m, event: event, alice: alice, bobCarol: bobCarol}
}

func (f *fixture) rent(t *testing.T) *models.Expense {
	t.Helper()
	expense, _, err := f.svc.RecordExpense(context.Background(), ExpenseInput{
		EventID:        f.event.ID,
		Description:    "Rent",
		Amount:         decimal.NewFromInt(300),
		Category:       "Housing",
		Date:           time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC),
		PayerID:        f.alice.ID,
		ParticipantIDs: []string{f.alice.ID, f.bobCarol.ID},
	})
	require.NoError(t, err)
	return expense
}

func balanceOf(t *testing.T, r *Report, id string) calculator.ParticipantBalance {
	t.Helper()
	for _, b := range r.Balances {
		if b.Participant.ID == id {
			return b
		}
	}
	t.Fatalf("no balance for %s", id)
	return calculator.ParticipantBalance{}
}

func requireDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestRentScenarioEndToEnd(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rent := f.rent(t)

	report, err := f.svc.Recompute(ctx, f.event.ID)
	require.NoError(t, err)

	alice := balanceOf(t, report, f.alice.ID)
	requireDec(t, "300", alice.Paid)
	requireDec(t, "100", alice.RawOwes())
	requireDec(t, "200", alice.Owed)
	requireDec(t, "200", alice.Balance)

	bc := balanceOf(t, report, f.bobCarol.ID)
	requireDec(t, "200", bc.Owes)
	requireDec(t, "-200", bc.Balance)

	require.Len(t, report.Obligations, 1)
	assert.Equal(t, f.bobCarol.ID, report.Obligations[0].OwerID)
	assert.Equal(t, f.alice.ID, report.Obligations[0].PayerID)
	assert.Equal(t, rent.ID, report.Obligations[0].ExpenseID)
	requireDec(t, "200", report.Obligations[0].Amount)

	require.Len(t, report.Lines, 1)
	assert.False(t, report.Lines[0].IsPaid)
	assert.True(t, report.Summary.Balanced)

	payment, err := f.svc.RecordPayment(ctx, PaymentInput{
		EventID:    f.event.ID,
		PayerID:    f.bobCarol.ID,
		ReceiverID: f.alice.ID,
		Amount:     decimal.NewFromInt(200),
	})
	require.NoError(t, err)
	assert.Equal(t, "Payment from Bob & Carol to Alice", payment.Note)

	report, err = f.svc.Recompute(ctx, f.event.ID)
	require.NoError(t, err)

	require.Len(t, report.Lines, 1)
	assert.True(t, report.Lines[0].IsPaid)
	requireDec(t, "0", report.Lines[0].Outstanding)
	requireDec(t, "0", balanceOf(t, report, f.alice.ID).Balance)
	requireDec(t, "0", balanceOf(t, report, f.bobCarol.ID).Balance)

	// The per-expense view ignores payments.
	require.Len(t, report.ByExpense, 1)
	require.Len(t, report.ByExpense[0].Payments, 1)
	assert.Equal(t, "Bob & Carol", report.ByExpense[0].Payments[0].FromName)

	require.Len(t, report.ByOwer, 1)
	assert.Equal(t, f.bobCarol.ID, report.ByOwer[0].Payer.ID)

	require.Len(t, report.Categories, 1)
	assert.Equal(t, "Housing", report.Categories[0].Category)
	require.Len(t, report.Payments, 1)
}

func TestRecomputeAbortsOnDataSourceFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.rent(t)

	boom := errors.New("connection reset")
	f.store.FailOn(memory.OpListPayments, boom)

	report, err := f.svc.Recompute(ctx, f.event.ID)
	require.Error(t, err)
	assert.Nil(t, report, "no partial report on failure")

	var dsErr *DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, "list payments", dsErr.Op)
	assert.Equal(t, MsgLoadFailed, dsErr.Message)
	assert.ErrorIs(t, err, boom)

	f.store.FailOn(memory.OpListPayments, nil)
	report, err = f.svc.Recompute(ctx, f.event.ID)
	require.NoError(t, err)
	assert.Len(t, report.Balances, 2)
}

func TestRecomputeUnknownEvent(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Recompute(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	_, err = f.svc.Recompute(context.Background(), "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecordExpenseValidation(t *testing.T) {
	f := newFixture(t)
	valid := func() ExpenseInput {
		return ExpenseInput{
			EventID:        f.event.ID,
			Description:    "Beer",
			Amount:         decimal.NewFromInt(60),
			PayerID:        f.alice.ID,
			ParticipantIDs: []string{f.alice.ID, f.bobCarol.ID},
		}
	}

	tests := []struct {
		name   string
		mutate func(*ExpenseInput)
		target error
	}{
		{"zero amount", func(in *ExpenseInput) { in.Amount = decimal.Zero }, ErrValidation},
		{"negative amount", func(in *ExpenseInput) { in.Amount = decimal.NewFromInt(-5) }, ErrValidation},
		{"blank description", func(in *ExpenseInput) { in.Description = "" }, ErrValidation},
		{"no participants selected", func(in *ExpenseInput) { in.ParticipantIDs = nil }, ErrValidation},
		{"payer off roster", func(in *ExpenseInput) { in.PayerID = "stranger" }, ErrValidation},
		{"participant off roster", func(in *ExpenseInput) { in.ParticipantIDs = []string{"stranger"} }, ErrValidation},
		{"unsupported division", func(in *ExpenseInput) { in.Division = calculator.DivisionExact }, calculator.ErrUnsupportedDivision},
		{"unknown event", func(in *ExpenseInput) { in.EventID = "missing" }, storage.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			_, _, err := f.svc.RecordExpense(context.Background(), in)
			assert.ErrorIs(t, err, tt.target)
		})
	}

	expenses, err := f.store.ListExpenses(context.Background(), f.event.ID)
	require.NoError(t, err)
	assert.Empty(t, expenses, "rejected expenses must not be written")
}

func TestRecordExpenseSplitsByAdultUnits(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	expense, shares, err := f.svc.RecordExpense(ctx, ExpenseInput{
		EventID:        f.event.ID,
		Description:    "Groceries",
		Amount:         decimal.NewFromInt(100),
		PayerID:        f.bobCarol.ID,
		ParticipantIDs: []string{f.alice.ID, f.bobCarol.ID, f.alice.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategory, expense.Category)

	require.Len(t, shares, 2)
	requireDec(t, "33.33", shares[0].Amount)
	requireDec(t, "66.67", shares[1].Amount)
	for _, sh := range shares {
		assert.Equal(t, expense.ID, sh.ExpenseID)
	}
}

func TestRecordExpenseStoreFailure(t *testing.T) {
	f := newFixture(t)
	f.store.FailOn(memory.OpCreateExpense, errors.New("disk full"))

	_, _, err := f.svc.RecordExpense(context.Background(), ExpenseInput{
		EventID:        f.event.ID,
		Description:    "Rent",
		Amount:         decimal.NewFromInt(10),
		PayerID:        f.alice.ID,
		ParticipantIDs: []string{f.alice.ID},
	})
	var dsErr *DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, MsgWriteFailed, dsErr.Message)
}

func TestRecordPaymentValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.RecordPayment(ctx, PaymentInput{
		EventID: f.event.ID, PayerID: f.alice.ID, ReceiverID: f.alice.ID, Amount: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, ErrValidation, "self payment")

	_, err = f.svc.RecordPayment(ctx, PaymentInput{
		EventID: f.event.ID, PayerID: f.alice.ID, ReceiverID: "stranger", Amount: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, ErrValidation, "receiver off roster")

	_, err = f.svc.RecordPayment(ctx, PaymentInput{
		EventID: f.event.ID, PayerID: f.alice.ID, ReceiverID: f.bobCarol.ID, Amount: decimal.Zero,
	})
	assert.ErrorIs(t, err, ErrValidation, "zero amount")

	p, err := f.svc.RecordPayment(ctx, PaymentInput{
		EventID: f.event.ID, PayerID: f.alice.ID, ReceiverID: f.bobCarol.ID,
		Amount: decimal.NewFromInt(5), Note: "  cash ", RecordedBy: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "cash", p.Note)
	assert.Equal(t, "alice@example.com", p.RecordedBy)
}

func TestAmountPolicyTracksPartialPayments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, WithPolicy(calculator.PolicyAmount))
	f.rent(t)

	_, err := f.svc.RecordPayment(ctx, PaymentInput{
		EventID: f.event.ID, PayerID: f.bobCarol.ID, ReceiverID: f.alice.ID, Amount: decimal.NewFromInt(50),
	})
	require.NoError(t, err)

	report, err := f.svc.Recompute(ctx, f.event.ID)
	require.NoError(t, err)
	assert.Equal(t, calculator.PolicyAmount, report.Policy)
	require.Len(t, report.Lines, 1)
	assert.False(t, report.Lines[0].IsPaid)
	requireDec(t, "150", report.Lines[0].Outstanding)
	requireDec(t, "-150", balanceOf(t, report, f.bobCarol.ID).Balance)
}

func TestDeleteExpenseAndPayment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	rent := f.rent(t)

	payment, err := f.svc.RecordPayment(ctx, PaymentInput{
		EventID: f.event.ID, PayerID: f.bobCarol.ID, ReceiverID: f.alice.ID, Amount: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	history, err := f.svc.ListPayments(ctx, f.event.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)

	other, err := f.svc.CreateEvent(ctx, EventInput{Name: "Other Trip", Year: 2025})
	require.NoError(t, err)
	assert.ErrorIs(t, f.svc.DeletePayment(ctx, other.ID, payment.ID), storage.ErrNotFound)
	history, err = f.svc.ListPayments(ctx, f.event.ID)
	require.NoError(t, err)
	require.Len(t, history, 1, "a delete through another event must not remove the payment")

	assert.ErrorIs(t, f.svc.DeletePayment(ctx, "", payment.ID), ErrValidation)
	require.NoError(t, f.svc.DeletePayment(ctx, f.event.ID, payment.ID))
	assert.ErrorIs(t, f.svc.DeletePayment(ctx, f.event.ID, payment.ID), storage.ErrNotFound)

	deleted, err := f.svc.DeleteExpense(ctx, rent.ID)
	require.NoError(t, err)
	assert.Equal(t, f.event.ID, deleted.EventID)

	report, err := f.svc.Recompute(ctx, f.event.ID)
	require.NoError(t, err)
	assert.Empty(t, report.Obligations)
	for _, b := range report.Balances {
		assert.True(t, b.Balance.IsZero(), "%s should be settled", b.Participant.Name)
	}

	_, err = f.svc.DeleteExpense(ctx, rent.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRecomputeReportsReferentialGaps(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.store.PutExpense(models.Expense{
		EventID:     f.event.ID,
		Description: "Ghost dinner",
		Amount:      decimal.NewFromInt(90),
		Category:    "Food",
		Date:        time.Now(),
		PayerID:     "deleted-participant",
	}, models.ExpenseShare{ParticipantID: f.alice.ID, Amount: decimal.NewFromInt(90)})

	report, err := f.svc.Recompute(ctx, f.event.ID)
	require.NoError(t, err)

	kinds := map[calculator.GapKind]bool{}
	for _, g := range report.Gaps {
		kinds[g.Kind] = true
	}
	assert.True(t, kinds[calculator.GapUnknownPayer])
	for _, b := range report.Balances {
		assert.True(t, b.Balance.IsZero(), "skipped expense must not move %s", b.Participant.Name)
	}

	rr := httptest.NewRecorder()
	f.metrics.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(rr.Body.String(), `carnival_referential_gaps_total{kind="unknown_payer"} 1`), rr.Body.String())
}

func TestEventAdministration(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.CreateEvent(ctx, EventInput{Name: ""})
	assert.ErrorIs(t, err, ErrValidation)

	start := time.Date(2027, 2, 5, 0, 0, 0, 0, time.UTC)
	next, err := f.svc.CreateEvent(ctx, EventInput{Name: "Carnival 2027", StartDate: start, EndDate: start.AddDate(0, 0, 5)})
	require.NoError(t, err)
	assert.Equal(t, 2027, next.Year)

	events, err := f.svc.ListEvents(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, next.ID, events[0].ID)

	require.NoError(t, f.svc.AddToRoster(ctx, next.ID, f.alice.ID))
	require.NoError(t, f.svc.AddToRoster(ctx, next.ID, f.alice.ID))
	assert.ErrorIs(t, f.svc.AddToRoster(ctx, "missing", f.alice.ID), storage.ErrNotFound)

	report, err := f.svc.Recompute(ctx, next.ID)
	require.NoError(t, err)
	require.Len(t, report.Balances, 1)
	assert.Equal(t, "Alice", report.Balances[0].Participant.Name)

	active, err := f.svc.CreateEvent(ctx, EventInput{Name: "Carnival 2028", Year: 2028, Status: models.EventActive})
	require.NoError(t, err)
	assert.Equal(t, models.EventActive, active.Status)
	assert.Equal(t, models.EventPlanning, next.Status)
	_, err = f.svc.CreateEvent(ctx, EventInput{Name: "Carnival 2029", Status: "cancelled"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.CreateParticipant(ctx, ParticipantInput{Name: "Dora", Children: -1})
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.svc.CreateParticipant(ctx, ParticipantInput{Name: "Dora", Type: "family"})
	assert.ErrorIs(t, err, models.ErrInvalidHousehold)
}

func TestContributions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.rent(t)

	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []ContributionInput{
		{EventID: f.event.ID, ParticipantID: f.alice.ID, Amount: decimal.NewFromInt(100), Month: jan, Notes: "  january  "},
		{EventID: f.event.ID, ParticipantID: f.bobCarol.ID, Amount: decimal.NewFromInt(150), Month: jan.AddDate(0, 1, 0)},
		{EventID: f.event.ID, ParticipantID: f.alice.ID, Amount: decimal.NewFromInt(80), Month: jan.AddDate(0, 1, 0)},
	} {
		_, err := f.svc.RecordContribution(ctx, in)
		require.NoError(t, err)
	}

	t.Run("validation", func(t *testing.T) {
		_, err := f.svc.RecordContribution(ctx, ContributionInput{EventID: f.event.ID, ParticipantID: f.alice.ID, Amount: decimal.Zero})
		assert.ErrorIs(t, err, ErrValidation)
		_, err = f.svc.RecordContribution(ctx, ContributionInput{EventID: f.event.ID, ParticipantID: "stranger", Amount: decimal.NewFromInt(5)})
		assert.ErrorIs(t, err, ErrValidation)
		_, err = f.svc.RecordContribution(ctx, ContributionInput{EventID: "missing", ParticipantID: f.alice.ID, Amount: decimal.NewFromInt(5)})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	list, err := f.svc.ListContributions(ctx, f.event.ID)
	require.NoError(t, err)
	require.Len(t, list.Contributions, 3)
	assert.Equal(t, "2026-02", list.Contributions[0].Month.Format(models.MonthLayout))
	assert.Equal(t, "january", list.Contributions[2].Notes)

	require.Len(t, list.Totals, 2)
	assert.Equal(t, f.alice.ID, list.Totals[0].ParticipantID)
	requireDec(t, "180", list.Totals[0].Amount)
	assert.Equal(t, 2, list.Totals[0].Count)
	requireDec(t, "150", list.Totals[1].Amount)

	require.Len(t, list.ByMonth, 2)
	requireDec(t, "230", list.ByMonth[0].Total)
	requireDec(t, "100", list.ByMonth[1].Total)

	report, err := f.svc.Recompute(ctx, f.event.ID)
	require.NoError(t, err)
	requireDec(t, "200", balanceOf(t, report, f.alice.ID).Balance)
	requireDec(t, "-200", balanceOf(t, report, f.bobCarol.ID).Balance)
	assert.Len(t, report.ContributionTotals, 2)
	assert.Len(t, report.ContributionsByMonth, 2)

	o := report.Overview
	assert.Equal(t, int64(3), o.Adults)
	assert.Equal(t, 1, o.Children)
	requireDec(t, "300", o.TotalSpent)
	requireDec(t, "100", o.CostPerAdult)
	requireDec(t, "200", o.CostPerCouple)
	requireDec(t, "330", o.TotalContributed)

	janID := list.Contributions[2].ID
	other, err := f.svc.CreateEvent(ctx, EventInput{Name: "Other Trip", Year: 2025})
	require.NoError(t, err)
	assert.ErrorIs(t, f.svc.DeleteContribution(ctx, other.ID, janID), storage.ErrNotFound)
	require.NoError(t, f.svc.DeleteContribution(ctx, f.event.ID, janID))

	list, err = f.svc.ListContributions(ctx, f.event.ID)
	require.NoError(t, err)
	assert.Len(t, list.Contributions, 2)
}

func TestRecomputeAbortsWhenContributionsFail(t *testing.T) {
	f := newFixture(t)
	f.store.FailOn(memory.OpListContributions, errors.New("disk gone"))

	_, err := f.svc.Recompute(context.Background(), f.event.ID)
	var dsErr *DataSourceError
	require.ErrorAs(t, err, &dsErr)
	assert.Equal(t, "list contributions", dsErr.Op)
}

func TestReportParticipantsSortedByName(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	for _, name := range []string{"Bruno", "álvaro"} {
		_, err := f.svc.CreateParticipant(ctx, ParticipantInput{Name: name, EventID: f.event.ID})
		require.NoError(t, err)
	}

	report, err := f.svc.Recompute(ctx, f.event.ID)
	require.NoError(t, err)

	names := make([]string, 0, len(report.Participants))
	for _, p := range report.Participants {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Alice", "álvaro", "Bob & Carol", "Bruno"}, names)
}
