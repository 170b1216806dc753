package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/carnival/internal/models"
)

// EventInput describes a new event. Year defaults to the start date's
// year, or the current year without one.
type EventInput struct {
	Name      string `validate:"required,max=120"`
	Year      int    `validate:"omitempty,gte=1900,lte=3000"`
	StartDate time.Time
	EndDate   time.Time
	// Status defaults to planning.
	Status models.EventStatus `validate:"omitempty,oneof=planning active completed"`
}

// ParticipantInput describes a new participant, optionally placed on an
// event roster right away.
type ParticipantInput struct {
	Name     string `validate:"required,max=120"`
	Type     models.HouseholdType
	Children int `validate:"gte=0"`
	EventID  string
}

// CreateEvent stores a new event, in planning status unless in says
// otherwise.
func (s *Service) CreateEvent(ctx context.Context, in EventInput) (event *models.Event, err error) {
	defer func() { s.metrics.ObserveWrite(OpCreateEvent, err) }()

	if err := s.checkStruct(in); err != nil {
		return nil, err
	}
	event, err = models.NewEvent(in.Name, in.Year, in.StartDate, in.EndDate)
	if err != nil {
		return nil, invalid(err)
	}
	if event.Year == 0 {
		event.Year = time.Now().Year()
	}
	if in.Status != "" {
		event.Status = in.Status
	}
	if err := s.store.CreateEvent(ctx, event); err != nil {
		return nil, writeErr("create event", err)
	}

	slog.Info("Event created", "event_id", event.ID, "name", event.Name, "year", event.Year, "status", string(event.Status))
	return event, nil
}

// ListEvents returns all events, most recent year first.
func (s *Service) ListEvents(ctx context.Context) ([]models.Event, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, readErr("list events", err)
	}
	return events, nil
}

// CreateParticipant stores a participant and, when EventID is set, adds
// them to that event's roster.
func (s *Service) CreateParticipant(ctx context.Context, in ParticipantInput) (participant *models.Participant, err error) {
	defer func() { s.metrics.ObserveWrite(OpCreateParticipant, err) }()

	if err := s.checkStruct(in); err != nil {
		return nil, err
	}
	if in.Type == "" {
		in.Type = models.Individual
	}
	participant, err = models.NewParticipant(in.Name, in.Type, in.Children)
	if err != nil {
		return nil, invalid(err)
	}
	if in.EventID != "" {
		if _, err := s.store.GetEvent(ctx, in.EventID); err != nil {
			return nil, readErr("get event", err)
		}
	}

	if err := s.store.CreateParticipant(ctx, participant); err != nil {
		return nil, writeErr("create participant", err)
	}
	if in.EventID != "" {
		if err := s.store.AddToRoster(ctx, in.EventID, participant.ID); err != nil {
			return nil, writeErr("add to roster", err)
		}
	}

	slog.Info("Participant created",
		"participant_id", participant.ID,
		"type", string(participant.Type),
		"event_id", in.EventID,
	)
	return participant, nil
}

// AddToRoster places an existing participant on an event roster. Adding
// someone twice is not an error.
func (s *Service) AddToRoster(ctx context.Context, eventID, participantID string) (err error) {
	defer func() { s.metrics.ObserveWrite(OpAddToRoster, err) }()

	if eventID == "" || participantID == "" {
		return fmt.Errorf("%w: event id and participant id are required", ErrValidation)
	}
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return readErr("get event", err)
	}
	if err := s.store.AddToRoster(ctx, eventID, participantID); err != nil {
		return writeErr("add to roster", err)
	}
	slog.Info("Participant added to roster", "event_id", eventID, "participant_id", participantID)
	return nil
}
