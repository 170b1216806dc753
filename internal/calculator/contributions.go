package calculator

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/models"
)

// ContributionTotal is everything one participant put into the fund.
type ContributionTotal struct {
	ParticipantID string
	// ParticipantName is empty when the contributor left the roster.
	ParticipantName string
	Amount          decimal.Decimal
	Count           int
}

// ContributionTotals sums contributions per participant, largest first.
// Ties are ordered by name ignoring case and accents.
func ContributionTotals(roster Roster, contributions []models.Contribution) []ContributionTotal {
	totals := make(map[string]*ContributionTotal)
	var order []string
	for _, c := range contributions {
		ct, ok := totals[c.ParticipantID]
		if !ok {
			ct = &ContributionTotal{ParticipantID: c.ParticipantID, ParticipantName: roster.Name(c.ParticipantID)}
			totals[c.ParticipantID] = ct
			order = append(order, c.ParticipantID)
		}
		ct.Amount = ct.Amount.Add(c.Amount)
		ct.Count++
	}

	out := make([]ContributionTotal, 0, len(order))
	for _, id := range order {
		out = append(out, *totals[id])
	}
	coll := newNameCollator()
	slices.SortStableFunc(out, func(a, b ContributionTotal) int {
		if n := b.Amount.Cmp(a.Amount); n != 0 {
			return n
		}
		return compareNames(coll, a.ParticipantName, a.ParticipantID, b.ParticipantName, b.ParticipantID)
	})
	return out
}

// MonthlyContributions groups the contributions of one month.
type MonthlyContributions struct {
	// Month is the first day of the month, in UTC.
	Month         time.Time
	Total         decimal.Decimal
	Contributions []models.Contribution
}

// ContributionsByMonth groups contributions by month, latest month first.
// Within a month the input order is kept.
func ContributionsByMonth(contributions []models.Contribution) []MonthlyContributions {
	index := make(map[time.Time]int)
	var out []MonthlyContributions
	for _, c := range contributions {
		month := time.Date(c.Month.Year(), c.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
		i, ok := index[month]
		if !ok {
			i = len(out)
			index[month] = i
			out = append(out, MonthlyContributions{Month: month})
		}
		out[i].Total = out[i].Total.Add(c.Amount)
		out[i].Contributions = append(out[i].Contributions, c)
	}
	slices.SortStableFunc(out, func(a, b MonthlyContributions) int {
		return b.Month.Compare(a.Month)
	})
	return out
}

// Overview is the headcount and cost-per-head view of an event.
type Overview struct {
	// Adults counts adult units: a couple is two.
	Adults   int64
	Children int

	TotalSpent decimal.Decimal

	// CostPerAdult is TotalSpent over Adults, or zero without adults.
	// CostPerCouple is twice the unrounded per-adult cost.
	CostPerAdult  decimal.Decimal
	CostPerCouple decimal.Decimal

	TotalContributed decimal.Decimal
}

// ComputeOverview counts the roster and spreads the total spent over its
// adult units. Children never count towards the cost.
func ComputeOverview(participants []models.Participant, expenses []models.Expense, contributions []models.Contribution) Overview {
	var o Overview
	for _, p := range NewRoster(participants) {
		o.Adults += p.Type.AdultUnits()
		o.Children += p.Children
	}
	for _, e := range expenses {
		o.TotalSpent = o.TotalSpent.Add(e.Amount)
	}
	for _, c := range contributions {
		o.TotalContributed = o.TotalContributed.Add(c.Amount)
	}
	if o.Adults > 0 {
		perAdult := o.TotalSpent.Div(decimal.NewFromInt(o.Adults))
		o.CostPerAdult = perAdult.Round(2)
		o.CostPerCouple = perAdult.Mul(decimal.NewFromInt(2)).Round(2)
	}
	return o
}
