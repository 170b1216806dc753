package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/carnival/internal/calculator"
	"github.com/mmynk/carnival/internal/models"
)

// Contributions is the fund view of one event. It never feeds balances.
type Contributions struct {
	// Contributions is the full history, latest month first.
	Contributions []models.Contribution
	Totals        []calculator.ContributionTotal
	ByMonth       []calculator.MonthlyContributions
}

// RecordContribution stores money a roster member put into the event fund.
func (s *Service) RecordContribution(ctx context.Context, in ContributionInput) (contribution *models.Contribution, err error) {
	defer func() { s.metrics.ObserveWrite(OpRecordContribution, err) }()

	if err := s.checkStruct(in); err != nil {
		return nil, err
	}

	roster, err := s.rosterFor(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	if !roster.Has(in.ParticipantID) {
		return nil, fmt.Errorf("%w: participant %s is not on the event roster", ErrValidation, in.ParticipantID)
	}

	contribution, err = models.NewContribution(in.EventID, in.ParticipantID, in.Amount, in.Month, in.Notes)
	if err != nil {
		return nil, invalid(err)
	}
	if err := s.store.CreateContribution(ctx, contribution); err != nil {
		slog.Error("CreateContribution failed", "event_id", in.EventID, "error", err)
		return nil, writeErr("create contribution", err)
	}

	slog.Info("Contribution recorded",
		"event_id", in.EventID,
		"contribution_id", contribution.ID,
		"participant_id", contribution.ParticipantID,
		"month", contribution.Month.Format(models.MonthLayout),
		"amount", contribution.Amount.String(),
	)
	return contribution, nil
}

// DeleteContribution removes a contribution of the given event.
func (s *Service) DeleteContribution(ctx context.Context, eventID, contributionID string) (err error) {
	defer func() { s.metrics.ObserveWrite(OpDeleteContribution, err) }()

	if eventID == "" || contributionID == "" {
		return fmt.Errorf("%w: event id and contribution id are required", ErrValidation)
	}
	if err := s.store.DeleteContribution(ctx, eventID, contributionID); err != nil {
		return writeErr("delete contribution", err)
	}
	slog.Info("Contribution deleted", "event_id", eventID, "contribution_id", contributionID)
	return nil
}

// ListContributions returns the contributions of an event with their
// per-participant and per-month totals.
func (s *Service) ListContributions(ctx context.Context, eventID string) (*Contributions, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrValidation)
	}
	roster, err := s.rosterFor(ctx, eventID)
	if err != nil {
		return nil, err
	}
	contributions, err := s.store.ListContributions(ctx, eventID)
	if err != nil {
		return nil, readErr("list contributions", err)
	}
	return &Contributions{
		Contributions: contributions,
		Totals:        calculator.ContributionTotals(roster, contributions),
		ByMonth:       calculator.ContributionsByMonth(contributions),
	}, nil
}
