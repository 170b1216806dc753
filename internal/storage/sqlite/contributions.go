package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/carnival/internal/models"
)

// CreateContribution persists a new contribution. Months are stored as
// YYYY-MM.
func (s *SQLiteStore) CreateContribution(ctx context.Context, contribution *models.Contribution) error {
	if contribution.ID == "" {
		contribution.ID = uuid.New().String()
	}
	if contribution.CreatedAt == 0 {
		contribution.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contributions (id, event_id, participant_id, amount, month, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		contribution.ID, contribution.EventID, contribution.ParticipantID, contribution.Amount,
		contribution.Month.Format(models.MonthLayout), nullString(contribution.Notes), contribution.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contribution: %w", err)
	}
	return nil
}

// ListContributions retrieves the contributions of an event, latest month
// first and newest first within a month.
func (s *SQLiteStore) ListContributions(ctx context.Context, eventID string) ([]models.Contribution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, event_id, participant_id, amount, month, notes, created_at
		 FROM contributions WHERE event_id = ? ORDER BY month DESC, created_at DESC, rowid DESC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	var contributions []models.Contribution
	for rows.Next() {
		var c models.Contribution
		var month string
		var notes sql.NullString

		if err := rows.Scan(&c.ID, &c.EventID, &c.ParticipantID, &c.Amount, &month, &notes, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contribution: %w", err)
		}
		c.Month, err = time.Parse(models.MonthLayout, month)
		if err != nil {
			return nil, fmt.Errorf("failed to parse contribution month %q: %w", month, err)
		}
		c.Notes = notes.String

		contributions = append(contributions, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contributions: %w", err)
	}

	return contributions, nil
}

// DeleteContribution removes a contribution of the given event.
func (s *SQLiteStore) DeleteContribution(ctx context.Context, eventID, contributionID string) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM contributions WHERE id = ? AND event_id = ?", contributionID, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete contribution: %w", err)
	}
	return requireAffected(res, "contribution", contributionID)
}
