package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/models"
)

// ParticipantBalance is one participant's position in an event ledger.
type ParticipantBalance struct {
	Participant models.Participant

	// Paid is the sum of the expenses this participant fronted.
	Paid decimal.Decimal

	// Shares is the sum of this participant's expense shares.
	Shares decimal.Decimal

	// Sent and Received are settlement payments made and received.
	Sent     decimal.Decimal
	Received decimal.Decimal

	// Owed is what others still owe this participant (never negative).
	Owed decimal.Decimal

	// Owes is what this participant still owes others (never negative).
	Owes decimal.Decimal

	// Balance is Owed - Owes: positive means others owe this participant.
	Balance decimal.Decimal
}

// RawOwes is the running "owes others" total: shares minus payments sent.
func (b ParticipantBalance) RawOwes() decimal.Decimal {
	return b.Shares.Sub(b.Sent)
}

// ComputeBalances folds the ledger of one event into per-participant balances.
//
// Algorithm:
//   - payer of each expense: Paid += amount
//   - each share: Shares += amount (raw owes)
//   - each payment: the payer's raw owes drop by the amount, and so does the
//     receiver's raw owed
//   - position = Paid - (Shares - Sent) - Received
//   - Owed = max(0, position), Owes = max(0, -position), Balance = position
//
// Records that reference a participant missing from participants are skipped,
// and so are the shares of an expense whose payer cannot be resolved and
// shares whose expense no longer exists. Earlier versions of the ledger still
// counted those shares in the debtor's Shares, which left the event total
// unbalanced; skipping them is deliberate and keeps credits equal to debits.
// Nothing is reported here: callers use FindGaps to log what was skipped.
//
// The result has one entry per participant, sorted by name ignoring case and
// accents.
func ComputeBalances(participants []models.Participant, expenses []models.Expense, shares []models.ExpenseShare, payments []models.Payment) []ParticipantBalance {
	roster := NewRoster(participants)

	balances := make(map[string]*ParticipantBalance, len(roster))
	order := make([]string, 0, len(roster))
	for _, p := range participants {
		if _, dup := balances[p.ID]; dup {
			continue
		}
		balances[p.ID] = &ParticipantBalance{Participant: p}
		order = append(order, p.ID)
	}

	counted := make(map[string]bool, len(expenses))
	for _, e := range expenses {
		payer, ok := balances[e.PayerID]
		if e.PayerID == "" || !ok {
			continue
		}
		payer.Paid = payer.Paid.Add(e.Amount)
		counted[e.ID] = true
	}

	for _, s := range shares {
		if !counted[s.ExpenseID] {
			continue
		}
		if b, ok := balances[s.ParticipantID]; ok {
			b.Shares = b.Shares.Add(s.Amount)
		}
	}

	for _, p := range payments {
		from, okFrom := balances[p.PayerID]
		to, okTo := balances[p.ReceiverID]
		if !okFrom || !okTo {
			continue
		}
		from.Sent = from.Sent.Add(p.Amount)
		to.Received = to.Received.Add(p.Amount)
	}

	result := make([]ParticipantBalance, 0, len(order))
	for _, id := range order {
		b := balances[id]
		position := b.Paid.Sub(b.RawOwes()).Sub(b.Received)
		b.Owed = decimal.Max(decimal.Zero, position)
		b.Owes = decimal.Max(decimal.Zero, position.Neg())
		b.Balance = b.Owed.Sub(b.Owes)
		result = append(result, *b)
	}

	c := newNameCollator()
	slices.SortStableFunc(result, func(a, b ParticipantBalance) int {
		return compareNames(c, a.Participant.Name, a.Participant.ID, b.Participant.Name, b.Participant.ID)
	})
	return result
}
