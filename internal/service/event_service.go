package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/carnival/internal/ledger"
	"github.com/mmynk/carnival/internal/models"
	pb "github.com/mmynk/carnival/pkg/proto"
	"github.com/mmynk/carnival/pkg/proto/protoconnect"
)

// EventService implements the Connect EventService: events and rosters.
type EventService struct {
	protoconnect.UnimplementedEventServiceHandler
	ledger *ledger.Service
}

// NewEventService creates a new EventService over the given ledger.
func NewEventService(l *ledger.Service) *EventService {
	return &EventService{ledger: l}
}

// CreateEvent creates a new event.
func (s *EventService) CreateEvent(ctx context.Context, req *connect.Request[pb.CreateEventRequest]) (*connect.Response[pb.CreateEventResponse], error) {
	msg := req.Msg
	slog.Info("CreateEvent request received", "name", msg.GetName(), "year", msg.GetYear(), "status", msg.GetStatus())

	status, err := models.ParseEventStatus(msg.GetStatus())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	start, err := parseDate("start_date", msg.GetStartDate())
	if err != nil {
		return nil, toConnectError(err)
	}
	end, err := parseDate("end_date", msg.GetEndDate())
	if err != nil {
		return nil, toConnectError(err)
	}

	event, err := s.ledger.CreateEvent(ctx, ledger.EventInput{
		Name:      msg.GetName(),
		Year:      int(msg.GetYear()),
		StartDate: start,
		EndDate:   end,
		Status:    status,
	})
	if err != nil {
		slog.Error("CreateEvent failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.CreateEventResponse{Event: toProtoEvent(*event)}), nil
}

// ListEvents retrieves all events.
func (s *EventService) ListEvents(ctx context.Context, req *connect.Request[pb.ListEventsRequest]) (*connect.Response[pb.ListEventsResponse], error) {
	slog.Info("ListEvents request received")

	events, err := s.ledger.ListEvents(ctx)
	if err != nil {
		slog.Error("ListEvents failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Event, len(events))
	for i, e := range events {
		out[i] = toProtoEvent(e)
	}

	slog.Info("ListEvents successful", "count", len(events))
	return connect.NewResponse(&pb.ListEventsResponse{Events: out}), nil
}

// CreateParticipant creates a participant, optionally on an event roster.
func (s *EventService) CreateParticipant(ctx context.Context, req *connect.Request[pb.CreateParticipantRequest]) (*connect.Response[pb.CreateParticipantResponse], error) {
	msg := req.Msg
	slog.Info("CreateParticipant request received",
		"type", msg.GetType(),
		"event_id", msg.GetEventId(),
	)

	householdType, err := models.ParseHouseholdType(msg.GetType())
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	participant, err := s.ledger.CreateParticipant(ctx, ledger.ParticipantInput{
		Name:     msg.GetName(),
		Type:     householdType,
		Children: int(msg.GetChildren()),
		EventID:  msg.GetEventId(),
	})
	if err != nil {
		slog.Error("CreateParticipant failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.CreateParticipantResponse{Participant: toProtoParticipant(*participant)}), nil
}

// AddParticipant puts an existing participant on an event roster and
// returns the recomputed report.
func (s *EventService) AddParticipant(ctx context.Context, req *connect.Request[pb.AddParticipantRequest]) (*connect.Response[pb.AddParticipantResponse], error) {
	eventID, participantID := req.Msg.GetEventId(), req.Msg.GetParticipantId()
	slog.Info("AddParticipant request received",
		"event_id", eventID,
		"participant_id", participantID,
	)

	if err := s.ledger.AddToRoster(ctx, eventID, participantID); err != nil {
		slog.Error("AddParticipant failed", "event_id", eventID, "error", err)
		return nil, toConnectError(err)
	}

	report, stale := reportAfterWrite(ctx, s.ledger, ledger.OpAddToRoster, eventID)
	return connect.NewResponse(&pb.AddParticipantResponse{Report: report, ReportStale: stale}), nil
}
