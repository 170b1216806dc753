package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/models"
)

// DivisionType selects how an expense is divided among the selected participants.
type DivisionType string

const (
	// DivisionEqual divides by adult units: a couple pays twice an individual.
	DivisionEqual DivisionType = "equal"
	// DivisionExact and DivisionPercentage are accepted names with no
	// implementation yet.
	DivisionExact      DivisionType = "exact"
	DivisionPercentage DivisionType = "percentage"
)

var (
	ErrNoAdultUnits        = errors.New("no adult units selected to divide by")
	ErrNegativeAmount      = errors.New("amount cannot be negative")
	ErrUnsupportedDivision = errors.New("division type is not supported yet")
	ErrUnknownDivision     = errors.New("unknown division type")
)

// Share is one participant's computed part of an expense.
type Share struct {
	ParticipantID string
	Amount        decimal.Decimal
}

// Strategy divides an amount among participants.
type Strategy interface {
	// Type returns the division identifier for this strategy.
	Type() DivisionType

	// Split returns one share per distinct selected participant.
	Split(amount decimal.Decimal, selected []models.Participant) ([]Share, error)
}

// StrategyFor returns the strategy registered for division. An empty value
// means DivisionEqual.
func StrategyFor(division DivisionType) (Strategy, error) {
	switch division {
	case DivisionEqual, "":
		return EqualStrategy{}, nil
	case DivisionExact, DivisionPercentage:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDivision, division)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDivision, division)
	}
}

// Split divides amount among selected using the given division type.
func Split(division DivisionType, amount decimal.Decimal, selected []models.Participant) ([]Share, error) {
	strategy, err := StrategyFor(division)
	if err != nil {
		return nil, err
	}
	return strategy.Split(amount, selected)
}

// EqualStrategy divides by adult units.
//
//	per_unit = amount / Σ units
//	share    = per_unit × units(participant), rounded to cents
//
// Shares are rounded independently, so their sum may drift from amount by a
// cent or two. The drift is kept as is.
type EqualStrategy struct{}

func (EqualStrategy) Type() DivisionType { return DivisionEqual }

func (EqualStrategy) Split(amount decimal.Decimal, selected []models.Participant) ([]Share, error) {
	if amount.IsNegative() {
		return nil, ErrNegativeAmount
	}
	people := distinct(selected)

	var units int64
	for _, p := range people {
		units += p.Type.AdultUnits()
	}
	if units == 0 {
		return nil, ErrNoAdultUnits
	}

	perUnit := amount.Div(decimal.NewFromInt(units))
	shares := make([]Share, len(people))
	for i, p := range people {
		shares[i] = Share{
			ParticipantID: p.ID,
			Amount:        perUnit.Mul(decimal.NewFromInt(p.Type.AdultUnits())).Round(2),
		}
	}
	return shares, nil
}

// distinct drops repeated participant IDs, keeping the first occurrence.
func distinct(participants []models.Participant) []models.Participant {
	seen := make(map[string]bool, len(participants))
	out := make([]models.Participant, 0, len(participants))
	for _, p := range participants {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}
