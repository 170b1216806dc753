package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/carnival/internal/models"
)

func TestCategoryTotals(t *testing.T) {
	expenses := []models.Expense{
		{ID: "1", Category: "Rent", Amount: dec("600")},
		{ID: "2", Category: "Food", Amount: dec("150")},
		{ID: "3", Category: "", Amount: dec("50")},
		{ID: "4", Category: "Food", Amount: dec("200")},
	}

	totals := CategoryTotals(expenses)
	require.Len(t, totals, 3)

	assert.Equal(t, "Rent", totals[0].Category)
	requireDec(t, "600", totals[0].Amount)
	requireDec(t, "60", totals[0].Percentage)

	assert.Equal(t, "Food", totals[1].Category)
	assert.Equal(t, 2, totals[1].Count)
	requireDec(t, "350", totals[1].Amount)
	requireDec(t, "35", totals[1].Percentage)

	assert.Equal(t, models.DefaultCategory, totals[2].Category)
	requireDec(t, "5", totals[2].Percentage)
}

func TestCategoryTotals_Empty(t *testing.T) {
	assert.Empty(t, CategoryTotals(nil))
}

func TestFindGaps(t *testing.T) {
	l := newLedger(t)
	l.person("alice", "Alice", models.Individual)
	l.person("bob", "Bob", models.Individual)
	l.rawExpense("drift", "Pizza", "100", "alice", map[string]string{"alice": "40", "bob": "40"}, "alice", "bob")
	l.rawExpense("ok", "Taxi", "20", "bob", map[string]string{"alice": "10", "bob": "10", "zed": "0"}, "alice", "bob", "zed")
	l.rawExpense("orphan-payer", "Boat", "30", "ghost", map[string]string{"alice": "30"}, "alice")
	l.shares = append(l.shares, models.ExpenseShare{ExpenseID: "deleted", ParticipantID: "alice", Amount: dec("5")})
	l.pay("p1", "alice", "bob", "10")
	l.pay("p2", "ghost", "bob", "10")
	l.pay("p3", "alice", "ghost", "10")

	gaps := FindGaps(l.participants, l.expenses, l.shares, l.payments, dec("0.01"))

	kinds := make(map[GapKind][]string)
	for _, g := range gaps {
		kinds[g.Kind] = append(kinds[g.Kind], g.RecordID)
	}
	assert.Equal(t, []string{"drift"}, kinds[GapShareDrift])
	assert.Equal(t, []string{"orphan-payer"}, kinds[GapUnknownPayer])
	assert.Equal(t, []string{"deleted:alice"}, kinds[GapOrphanShare])
	assert.Equal(t, []string{"ok:zed"}, kinds[GapUnknownShareHolder])
	assert.Equal(t, []string{"p2", "p3"}, kinds[GapUnknownPaymentParty])
	assert.Len(t, gaps, 6)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyPresence, p)

	p, err = ParsePolicy("AMOUNT")
	require.NoError(t, err)
	assert.Equal(t, PolicyAmount, p)

	_, err = ParsePolicy("netting")
	assert.Error(t, err)
}
