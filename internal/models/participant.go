package models

import (
	"fmt"
	"strings"
)

// HouseholdType tells how many adults a participant stands for when an
// expense is divided equally.
type HouseholdType string

const (
	// Individual counts as one adult unit.
	Individual HouseholdType = "individual"
	// Couple counts as two adult units.
	Couple HouseholdType = "couple"
)

// ParseHouseholdType accepts "individual" and "couple" in any case, plus the
// legacy "casal" spelling used by older rosters.
func ParseHouseholdType(s string) (HouseholdType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "individual", "":
		return Individual, nil
	case "couple", "casal":
		return Couple, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidHousehold, s)
	}
}

// AdultUnits returns 2 for a couple and 1 otherwise.
func (h HouseholdType) AdultUnits() int64 {
	if h == Couple {
		return 2
	}
	return 1
}

// Participant is a member of the roster of one or more events.
// A couple is a single participant that carries two adult units.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string

	// Name is the display name, e.g. "Alice" or "Bob & Carol".
	Name string

	// Type is Individual or Couple.
	Type HouseholdType

	// Children is informational only; children never change the split.
	Children int

	// CreatedAt is the Unix timestamp when the participant was created.
	CreatedAt int64
}

// NewParticipant builds a participant, rejecting blank names and negative
// children counts. The ID is left empty for the store to assign.
func NewParticipant(name string, householdType HouseholdType, children int) (*Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: participant name is required", ErrMissingField)
	}
	if householdType != Individual && householdType != Couple {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHousehold, householdType)
	}
	if children < 0 {
		return nil, fmt.Errorf("%w: children cannot be negative", ErrInvalidAmount)
	}
	return &Participant{Name: name, Type: householdType, Children: children}, nil
}
