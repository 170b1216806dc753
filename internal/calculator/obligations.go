package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/models"
)

// Obligation is a single directed debt: the ower's share of one expense,
// owed to that expense's payer.
type Obligation struct {
	OwerID             string
	PayerID            string
	Amount             decimal.Decimal
	ExpenseID          string
	ExpenseDescription string
}

// DetailedPayment is an obligation with both names resolved, for the
// per-expense report.
type DetailedPayment struct {
	FromID             string
	FromName           string
	ToID               string
	ToName             string
	Amount             decimal.Decimal
	ExpenseID          string
	ExpenseDescription string
}

// ExpenseDetail groups the detailed payments of one expense.
type ExpenseDetail struct {
	Expense   models.Expense
	PayerName string
	Payments  []DetailedPayment
}

// DeriveObligations emits one obligation per share whose participant is not
// the expense payer. Nothing is netted: an ower with shares in two expenses
// of the same payer gets two obligations.
//
// Expenses whose payer is not on the roster are skipped, as are shares of
// participants missing from the roster. Output follows expense order, then
// share order within each expense.
func DeriveObligations(roster Roster, expenses []models.Expense, shares []models.ExpenseShare) []Obligation {
	byExpense := make(map[string][]models.ExpenseShare)
	for _, s := range shares {
		byExpense[s.ExpenseID] = append(byExpense[s.ExpenseID], s)
	}

	var obligations []Obligation
	for _, e := range expenses {
		if e.PayerID == "" || !roster.Has(e.PayerID) {
			continue
		}
		for _, s := range byExpense[e.ID] {
			if s.ParticipantID == e.PayerID || !roster.Has(s.ParticipantID) {
				continue
			}
			obligations = append(obligations, Obligation{
				OwerID:             s.ParticipantID,
				PayerID:            e.PayerID,
				Amount:             s.Amount,
				ExpenseID:          e.ID,
				ExpenseDescription: e.Description,
			})
		}
	}
	return obligations
}

// DetailedPayments resolves the names of each obligation. Obligations whose
// ends are not on the roster are dropped.
func DetailedPayments(roster Roster, obligations []Obligation) []DetailedPayment {
	details := make([]DetailedPayment, 0, len(obligations))
	for _, o := range obligations {
		from, okFrom := roster[o.OwerID]
		to, okTo := roster[o.PayerID]
		if !okFrom || !okTo {
			continue
		}
		details = append(details, DetailedPayment{
			FromID:             from.ID,
			FromName:           from.Name,
			ToID:               to.ID,
			ToName:             to.Name,
			Amount:             o.Amount,
			ExpenseID:          o.ExpenseID,
			ExpenseDescription: o.ExpenseDescription,
		})
	}
	return details
}

// DetailByExpense lists, for every expense with a known payer, who owes the
// payer how much for it. Payments are not taken into account: an expense
// keeps showing its lines after the aggregate debt has been paid off.
func DetailByExpense(roster Roster, expenses []models.Expense, obligations []Obligation) []ExpenseDetail {
	byExpense := make(map[string][]DetailedPayment)
	for _, d := range DetailedPayments(roster, obligations) {
		byExpense[d.ExpenseID] = append(byExpense[d.ExpenseID], d)
	}

	var out []ExpenseDetail
	for _, e := range expenses {
		payer, ok := roster[e.PayerID]
		if !ok {
			continue
		}
		out = append(out, ExpenseDetail{
			Expense:   e,
			PayerName: payer.Name,
			Payments:  byExpense[e.ID],
		})
	}
	return out
}
