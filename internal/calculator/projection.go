package calculator

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/models"
)

// Transfer is one line of what an ower has to pay.
type Transfer struct {
	Receiver    models.Participant
	Amount      decimal.Decimal
	Outstanding decimal.Decimal
	IsPaid      bool
}

// PaymentsByPayer lists the transfers one participant has to make. Payer is
// the participant who pays, i.e. the ower of the underlying obligations.
type PaymentsByPayer struct {
	Payer    models.Participant
	Payments []Transfer
}

// ProjectByOwer groups settlement lines by ower for the "who pays whom" view.
// Lines for the same receiver are merged. Owers without lines are omitted and
// groups are sorted by ower name; transfers keep line order.
func ProjectByOwer(lines []SettlementLine, participants []models.Participant) []PaymentsByPayer {
	roster := NewRoster(participants)

	groups := make(map[string]*PaymentsByPayer)
	var order []string
	for _, l := range lines {
		ower, okOwer := roster[l.OwerID]
		receiver, okReceiver := roster[l.PayerID]
		if !okOwer || !okReceiver {
			continue
		}

		g, ok := groups[ower.ID]
		if !ok {
			g = &PaymentsByPayer{Payer: ower}
			groups[ower.ID] = g
			order = append(order, ower.ID)
		}

		idx := slices.IndexFunc(g.Payments, func(t Transfer) bool { return t.Receiver.ID == receiver.ID })
		if idx >= 0 {
			t := &g.Payments[idx]
			t.Amount = t.Amount.Add(l.Amount)
			t.Outstanding = t.Outstanding.Add(l.Outstanding)
			t.IsPaid = t.IsPaid && l.IsPaid
			continue
		}
		g.Payments = append(g.Payments, Transfer{
			Receiver:    receiver,
			Amount:      l.Amount,
			Outstanding: l.Outstanding,
			IsPaid:      l.IsPaid,
		})
	}

	out := make([]PaymentsByPayer, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}

	c := newNameCollator()
	slices.SortStableFunc(out, func(a, b PaymentsByPayer) int {
		return compareNames(c, a.Payer.Name, a.Payer.ID, b.Payer.Name, b.Payer.ID)
	})
	return out
}
