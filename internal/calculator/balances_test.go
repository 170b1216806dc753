package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/carnival/internal/models"
)

func TestComputeBalances_RentScenario(t *testing.T) {
	l := newLedger(t)
	l.person("alice", "Alice", models.Individual)
	l.person("bob-carol", "Bob & Carol", models.Couple)
	l.expense("rent", "Rent", "300", "alice", "alice", "bob-carol")

	balances := l.balances()
	require.Len(t, balances, 2)
	assert.Equal(t, "alice", balances[0].Participant.ID)
	assert.Equal(t, "bob-carol", balances[1].Participant.ID)

	alice := balances[0]
	requireDec(t, "300", alice.Paid, "alice paid")
	requireDec(t, "100", alice.RawOwes(), "alice raw owes")
	requireDec(t, "200", alice.Owed, "alice owed")
	requireDec(t, "0", alice.Owes, "alice owes")
	requireDec(t, "200", alice.Balance, "alice balance")

	bc := balances[1]
	requireDec(t, "0", bc.Paid, "bob-carol paid")
	requireDec(t, "200", bc.RawOwes(), "bob-carol raw owes")
	requireDec(t, "200", bc.Owes, "bob-carol owes")
	requireDec(t, "-200", bc.Balance, "bob-carol balance")

	t.Run("payment settles both sides", func(t *testing.T) {
		l.pay("p1", "bob-carol", "alice", "200")
		after := l.balances()

		a := balanceOf(t, after, "alice")
		requireDec(t, "300", a.Paid)
		requireDec(t, "200", a.Received)
		requireDec(t, "0", a.Balance, "alice balance after payment")

		b := balanceOf(t, after, "bob-carol")
		requireDec(t, "0", b.RawOwes(), "bob-carol raw owes after payment")
		requireDec(t, "0", b.Balance, "bob-carol balance after payment")
	})
}

func TestComputeBalances_Conservation(t *testing.T) {
	l := newLedger(t)
	l.person("ana", "Ana", models.Individual)
	l.person("bia-caio", "Bia & Caio", models.Couple)
	l.person("duda", "Duda", models.Individual)
	l.person("edu-fe", "Edu & Fê", models.Couple)

	l.expense("e1", "House", "1234.57", "ana", "ana", "bia-caio", "duda", "edu-fe")
	l.expense("e2", "Groceries", "389.90", "bia-caio", "bia-caio", "duda", "edu-fe")
	l.expense("e3", "Uber", "47.33", "duda", "ana", "duda")
	l.expense("e4", "Drinks", "100", "edu-fe", "ana", "bia-caio", "duda")

	balances := l.balances()
	sum := decimal.Zero
	for _, b := range balances {
		sum = sum.Add(b.Balance)
		assert.False(t, b.Owed.IsNegative(), "%s owed must not be negative", b.Participant.Name)
		assert.False(t, b.Owes.IsNegative(), "%s owes must not be negative", b.Participant.Name)
		assert.True(t, b.Owed.IsZero() || b.Owes.IsZero(), "%s cannot both owe and be owed", b.Participant.Name)
	}

	tolerance := dec("0.01").Mul(decimal.NewFromInt(int64(len(balances))))
	assert.True(t, sum.Abs().LessThanOrEqual(tolerance), "sum of balances = %s, want 0 ± %s", sum, tolerance)

	summary := Summarize(l.expenses, balances, l.lines(PolicyPresence))
	assert.True(t, summary.Balanced, "imbalance %s", summary.Imbalance)
	requireDec(t, "1771.80", summary.TotalSpent)
}

func TestComputeBalances_SkipsUnresolvedReferences(t *testing.T) {
	l := newLedger(t)
	l.person("alice", "Alice", models.Individual)
	l.person("bob", "Bob", models.Individual)

	// payer was deleted: neither the amount nor the shares count
	l.rawExpense("ghost-exp", "Boat", "80", "ghost", map[string]string{"alice": "40", "ghost": "40"}, "alice", "ghost")
	// payment to an unknown participant is ignored
	l.pay("p1", "alice", "ghost", "15")
	// expense without payer
	l.rawExpense("no-payer", "Ice", "10", "", map[string]string{"bob": "10"}, "bob")
	// share left behind by a deleted expense
	l.shares = append(l.shares, models.ExpenseShare{ExpenseID: "deleted", ParticipantID: "bob", Amount: dec("25")})

	for _, b := range l.balances() {
		requireDec(t, "0", b.Paid, b.Participant.Name)
		requireDec(t, "0", b.Shares, b.Participant.Name)
		requireDec(t, "0", b.Sent, b.Participant.Name)
		requireDec(t, "0", b.Balance, b.Participant.Name)
	}
}

func TestComputeBalances_SortsIgnoringCaseAndAccents(t *testing.T) {
	l := newLedger(t)
	l.person("z", "Zoe", models.Individual)
	l.person("a2", "álvaro", models.Individual)
	l.person("b", "bruno", models.Individual)
	l.person("a1", "Alvaro", models.Individual)

	var names []string
	for _, b := range l.balances() {
		names = append(names, b.Participant.ID)
	}
	// equal collation keys fall back to ID order
	assert.Equal(t, []string{"a1", "a2", "b", "z"}, names)
}

func TestComputeBalances_IdleParticipantIsZero(t *testing.T) {
	l := newLedger(t)
	l.person("alice", "Alice", models.Individual)
	l.person("bob", "Bob", models.Individual)
	l.person("idle", "Idle", models.Couple)
	l.expense("e1", "Lunch", "50", "alice", "alice", "bob")

	idle := balanceOf(t, l.balances(), "idle")
	requireDec(t, "0", idle.Owed)
	requireDec(t, "0", idle.Owes)
	requireDec(t, "0", idle.Balance)
}

func TestComputeBalances_Overpayment(t *testing.T) {
	l := newLedger(t)
	l.person("alice", "Alice", models.Individual)
	l.person("bob", "Bob", models.Individual)
	l.expense("e1", "Lunch", "50", "alice", "alice", "bob")
	l.pay("p1", "bob", "alice", "40")

	bob := balanceOf(t, l.balances(), "bob")
	requireDec(t, "15", bob.Owed, "a 25 share overpaid by 15")
	requireDec(t, "15", bob.Balance)

	alice := balanceOf(t, l.balances(), "alice")
	requireDec(t, "-15", alice.Balance)
}
