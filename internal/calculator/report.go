package calculator

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/models"
)

// CategoryTotal is the money spent in one expense category.
type CategoryTotal struct {
	Category   string
	Amount     decimal.Decimal
	Count      int
	Percentage decimal.Decimal // share of the total spent, 0-100, two decimals
}

// CategoryTotals sums expenses per category, largest first. Blank categories
// are reported as models.DefaultCategory.
func CategoryTotals(expenses []models.Expense) []CategoryTotal {
	totals := make(map[string]*CategoryTotal)
	var order []string
	var total decimal.Decimal
	for _, e := range expenses {
		cat := strings.TrimSpace(e.Category)
		if cat == "" {
			cat = models.DefaultCategory
		}
		ct, ok := totals[cat]
		if !ok {
			ct = &CategoryTotal{Category: cat}
			totals[cat] = ct
			order = append(order, cat)
		}
		ct.Amount = ct.Amount.Add(e.Amount)
		ct.Count++
		total = total.Add(e.Amount)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, cat := range order {
		ct := *totals[cat]
		if total.IsPositive() {
			ct.Percentage = ct.Amount.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
		}
		out = append(out, ct)
	}
	slices.SortStableFunc(out, func(a, b CategoryTotal) int {
		if n := b.Amount.Cmp(a.Amount); n != 0 {
			return n
		}
		return strings.Compare(a.Category, b.Category)
	})
	return out
}

// Summary holds the ledger-wide totals used to check that money is conserved.
type Summary struct {
	TotalSpent decimal.Decimal

	// TotalCredit is the sum of positive balances, TotalDebit the sum of the
	// magnitudes of negative ones.
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal

	// Imbalance is TotalCredit - TotalDebit. It is zero for a consistent
	// ledger, give or take cent rounding.
	Imbalance decimal.Decimal

	// TotalOutstanding is the sum of Outstanding over all settlement lines.
	TotalOutstanding decimal.Decimal

	// Balanced is true when |Imbalance| is within one cent per participant.
	Balanced bool
}

// Summarize totals balances and settlement lines.
func Summarize(expenses []models.Expense, balances []ParticipantBalance, lines []SettlementLine) Summary {
	var s Summary
	for _, e := range expenses {
		s.TotalSpent = s.TotalSpent.Add(e.Amount)
	}
	for _, b := range balances {
		if b.Balance.IsPositive() {
			s.TotalCredit = s.TotalCredit.Add(b.Balance)
		} else {
			s.TotalDebit = s.TotalDebit.Add(b.Balance.Neg())
		}
	}
	for _, l := range lines {
		s.TotalOutstanding = s.TotalOutstanding.Add(l.Outstanding)
	}
	s.Imbalance = s.TotalCredit.Sub(s.TotalDebit)

	tolerance := cent.Mul(decimal.NewFromInt(int64(max(len(balances), 1))))
	s.Balanced = s.Imbalance.Abs().LessThanOrEqual(tolerance)
	return s
}

var cent = decimal.New(1, -2)

// GapKind names a kind of inconsistency in the loaded ledger.
type GapKind string

const (
	GapUnknownPayer        GapKind = "unknown_payer"
	GapUnknownShareHolder  GapKind = "unknown_share_participant"
	GapOrphanShare         GapKind = "orphan_share"
	GapUnknownPaymentParty GapKind = "unknown_payment_party"
	GapShareDrift          GapKind = "share_drift"
)

// Gap is one record that the computation skipped or tolerated.
type Gap struct {
	Kind      GapKind
	RecordID  string
	Reference string
	Amount    decimal.Decimal
}

// FindGaps lists the records that ComputeBalances and DeriveObligations
// skip, plus expenses whose shares drift from the amount by more than
// driftThreshold. None of these stop the computation.
func FindGaps(participants []models.Participant, expenses []models.Expense, shares []models.ExpenseShare, payments []models.Payment, driftThreshold decimal.Decimal) []Gap {
	roster := NewRoster(participants)
	var gaps []Gap

	known := make(map[string]bool, len(expenses))
	shareSums := make(map[string]decimal.Decimal, len(expenses))
	for _, s := range shares {
		shareSums[s.ExpenseID] = shareSums[s.ExpenseID].Add(s.Amount)
	}

	for _, e := range expenses {
		known[e.ID] = true
		if !roster.Has(e.PayerID) {
			gaps = append(gaps, Gap{Kind: GapUnknownPayer, RecordID: e.ID, Reference: e.PayerID, Amount: e.Amount})
			continue
		}
		if drift := e.Amount.Sub(shareSums[e.ID]); drift.Abs().GreaterThan(driftThreshold) {
			gaps = append(gaps, Gap{Kind: GapShareDrift, RecordID: e.ID, Amount: drift})
		}
	}

	for _, s := range shares {
		id := s.ExpenseID + ":" + s.ParticipantID
		switch {
		case !known[s.ExpenseID]:
			gaps = append(gaps, Gap{Kind: GapOrphanShare, RecordID: id, Reference: s.ExpenseID, Amount: s.Amount})
		case !roster.Has(s.ParticipantID):
			gaps = append(gaps, Gap{Kind: GapUnknownShareHolder, RecordID: id, Reference: s.ParticipantID, Amount: s.Amount})
		}
	}

	for _, p := range payments {
		switch {
		case !roster.Has(p.PayerID):
			gaps = append(gaps, Gap{Kind: GapUnknownPaymentParty, RecordID: p.ID, Reference: p.PayerID, Amount: p.Amount})
		case !roster.Has(p.ReceiverID):
			gaps = append(gaps, Gap{Kind: GapUnknownPaymentParty, RecordID: p.ID, Reference: p.ReceiverID, Amount: p.Amount})
		}
	}
	return gaps
}
