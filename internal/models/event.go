package models

import (
	"fmt"
	"strings"
	"time"
)

// EventStatus is the lifecycle stage of an event.
type EventStatus string

const (
	EventPlanning  EventStatus = "planning"
	EventActive    EventStatus = "active"
	EventCompleted EventStatus = "completed"
)

// Event is a group trip (a carnival) whose expenses are shared.
// Balances are always computed per event.
type Event struct {
	// ID is the unique identifier for the event (UUID format).
	ID string

	// Name is the display name, e.g. "Carnival 2026".
	Name string

	// Year of the event.
	Year int

	// StartDate and EndDate bound the trip. Either may be zero.
	StartDate time.Time
	EndDate   time.Time

	// Status defaults to EventPlanning.
	Status EventStatus

	// CreatedAt is the Unix timestamp when the event was created.
	CreatedAt int64
}

// NewEvent builds an event, rejecting blank names and inverted date ranges.
func NewEvent(name string, year int, start, end time.Time) (*Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: event name is required", ErrMissingField)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return nil, fmt.Errorf("%w: event ends before it starts", ErrInvalidDate)
	}
	if year == 0 && !start.IsZero() {
		year = start.Year()
	}
	return &Event{
		Name:      name,
		Year:      year,
		StartDate: start,
		EndDate:   end,
		Status:    EventPlanning,
	}, nil
}

// ParseEventStatus validates a status string. Blank means planning.
func ParseEventStatus(s string) (EventStatus, error) {
	switch st := EventStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case EventPlanning, EventActive, EventCompleted:
		return st, nil
	case "":
		return EventPlanning, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
}
