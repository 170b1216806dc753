package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MonthLayout is the format of a contribution month.
const MonthLayout = "2006-01"

// Contribution is money a participant put into the event fund for one
// month. Contributions are tracked apart from the ledger: they never move a
// balance.
type Contribution struct {
	// ID is the unique identifier for the contribution (UUID format).
	ID string

	// EventID is the event whose fund received the money.
	EventID string

	// ParticipantID is the contributor.
	ParticipantID string

	// Amount is the money contributed.
	Amount decimal.Decimal

	// Month is the first day of the reference month, in UTC.
	Month time.Time

	// Notes is an optional free-text description.
	Notes string

	// CreatedAt is the Unix timestamp when the contribution was recorded.
	CreatedAt int64
}

// ParseMonth reads a YYYY-MM month. A full YYYY-MM-DD date is accepted and
// truncated to its month.
func ParseMonth(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == len(DateLayout) {
		s = s[:len(MonthLayout)]
	}
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: month must be YYYY-MM, got %q", ErrInvalidDate, s)
	}
	return t, nil
}

// NewContribution builds a contribution with a positive amount. A zero
// month defaults to the current one.
func NewContribution(eventID, participantID string, amount decimal.Decimal, month time.Time, notes string) (*Contribution, error) {
	switch {
	case eventID == "":
		return nil, fmt.Errorf("%w: event id is required", ErrMissingField)
	case participantID == "":
		return nil, fmt.Errorf("%w: participant id is required", ErrMissingField)
	case !amount.IsPositive():
		return nil, fmt.Errorf("%w: contribution amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	if month.IsZero() {
		month = time.Now().UTC()
	}
	return &Contribution{
		EventID:       eventID,
		ParticipantID: participantID,
		Amount:        amount,
		Month:         time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC),
		Notes:         strings.TrimSpace(notes),
	}, nil
}
