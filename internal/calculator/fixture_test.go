package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/carnival/internal/models"
)

// ledger accumulates an event's records for tests.
type ledger struct {
	t            *testing.T
	participants []models.Participant
	expenses     []models.Expense
	shares       []models.ExpenseShare
	payments     []models.Payment
}

func newLedger(t *testing.T) *ledger {
	t.Helper()
	return &ledger{t: t}
}

func (l *ledger) person(id, name string, typ models.HouseholdType) models.Participant {
	p := models.Participant{ID: id, Name: name, Type: typ}
	l.participants = append(l.participants, p)
	return p
}

// expense logs an expense split equally (by adult units) among the given
// participant IDs.
func (l *ledger) expense(id, description, amount, payer string, among ...string) {
	l.t.Helper()
	roster := NewRoster(l.participants)
	var selected []models.Participant
	for _, pid := range among {
		p, ok := roster[pid]
		require.True(l.t, ok, "unknown participant %s", pid)
		selected = append(selected, p)
	}

	amt := dec(amount)
	shares, err := Split(DivisionEqual, amt, selected)
	require.NoError(l.t, err)

	l.expenses = append(l.expenses, models.Expense{ID: id, Description: description, Amount: amt, PayerID: payer, Category: "Rent"})
	for _, s := range shares {
		l.shares = append(l.shares, models.ExpenseShare{ExpenseID: id, ParticipantID: s.ParticipantID, Amount: s.Amount})
	}
}

// rawExpense logs an expense with explicit share rows.
func (l *ledger) rawExpense(id, description, amount, payer string, shares map[string]string, order ...string) {
	l.expenses = append(l.expenses, models.Expense{ID: id, Description: description, Amount: dec(amount), PayerID: payer})
	for _, pid := range order {
		l.shares = append(l.shares, models.ExpenseShare{ExpenseID: id, ParticipantID: pid, Amount: dec(shares[pid])})
	}
}

func (l *ledger) pay(id, from, to, amount string) {
	l.payments = append(l.payments, models.Payment{ID: id, PayerID: from, ReceiverID: to, Amount: dec(amount)})
}

func (l *ledger) balances() []ParticipantBalance {
	return ComputeBalances(l.participants, l.expenses, l.shares, l.payments)
}

func (l *ledger) obligations() []Obligation {
	return DeriveObligations(NewRoster(l.participants), l.expenses, l.shares)
}

func (l *ledger) lines(policy ReconcilePolicy) []SettlementLine {
	return Reconcile(l.obligations(), l.payments, policy)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

func balanceOf(t *testing.T, balances []ParticipantBalance, id string) ParticipantBalance {
	t.Helper()
	for _, b := range balances {
		if b.Participant.ID == id {
			return b
		}
	}
	t.Fatalf("no balance for %s", id)
	return ParticipantBalance{}
}
