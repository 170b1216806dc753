package calculator

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/models"
)

// ReconcilePolicy decides when a settlement line counts as paid.
type ReconcilePolicy string

const (
	// PolicyPresence marks a line paid as soon as any payment exists from the
	// ower to the payer, whatever its amount.
	PolicyPresence ReconcilePolicy = "presence"

	// PolicyAmount marks a line paid once the payments from the ower to the
	// payer add up to at least the line amount.
	PolicyAmount ReconcilePolicy = "amount"
)

// ParsePolicy validates a policy name. Empty means PolicyPresence.
func ParsePolicy(s string) (ReconcilePolicy, error) {
	switch p := ReconcilePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyPresence, nil
	case PolicyPresence, PolicyAmount:
		return p, nil
	default:
		return "", fmt.Errorf("unknown reconcile policy %q", s)
	}
}

// SettlementLine is the sum of all obligations from one ower to one payer.
type SettlementLine struct {
	OwerID  string
	PayerID string

	// Amount is the sum of the pair's obligations.
	Amount decimal.Decimal

	// PaidAmount is the sum of payments from ower to payer and Payments their count.
	PaidAmount decimal.Decimal
	Payments   int

	// Outstanding is max(0, Amount - PaidAmount).
	Outstanding decimal.Decimal

	IsPaid bool

	// ExpenseIDs lists the expenses that contributed, in derivation order.
	ExpenseIDs []string
}

type pair struct {
	from, to string
}

type paidTotal struct {
	count  int
	amount decimal.Decimal
}

// Reconcile merges obligations per (ower, payer) pair and matches them
// against the payments made in that direction.
//
// Payments in the opposite direction (payer to ower) do not count. Pairs
// whose obligations sum to zero produce no line. Lines keep the order in
// which their pair first appears in obligations.
func Reconcile(obligations []Obligation, payments []models.Payment, policy ReconcilePolicy) []SettlementLine {
	paid := make(map[pair]paidTotal)
	for _, p := range payments {
		k := pair{p.PayerID, p.ReceiverID}
		t := paid[k]
		t.count++
		t.amount = t.amount.Add(p.Amount)
		paid[k] = t
	}

	index := make(map[pair]int)
	var lines []SettlementLine
	for _, o := range obligations {
		k := pair{o.OwerID, o.PayerID}
		i, ok := index[k]
		if !ok {
			i = len(lines)
			index[k] = i
			lines = append(lines, SettlementLine{OwerID: o.OwerID, PayerID: o.PayerID})
		}
		lines[i].Amount = lines[i].Amount.Add(o.Amount)
		lines[i].ExpenseIDs = append(lines[i].ExpenseIDs, o.ExpenseID)
	}

	out := lines[:0]
	for _, l := range lines {
		if l.Amount.IsZero() {
			continue
		}
		t := paid[pair{l.OwerID, l.PayerID}]
		l.Payments = t.count
		l.PaidAmount = t.amount
		l.Outstanding = decimal.Max(decimal.Zero, l.Amount.Sub(t.amount))
		switch policy {
		case PolicyAmount:
			l.IsPaid = t.amount.GreaterThanOrEqual(l.Amount)
		default:
			l.IsPaid = t.count > 0
		}
		out = append(out, l)
	}
	return out
}
