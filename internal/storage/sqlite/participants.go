package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/carnival/internal/models"
	"github.com/mmynk/carnival/internal/storage"
)

// CreateParticipant inserts a new participant.
func (s *SQLiteStore) CreateParticipant(ctx context.Context, participant *models.Participant) error {
	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}
	if participant.CreatedAt == 0 {
		participant.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO participants (id, name, type, children, created_at) VALUES (?, ?, ?, ?, ?)",
		participant.ID, participant.Name, string(participant.Type), participant.Children, participant.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// AddToRoster links a participant to an event. Existing links are kept.
func (s *SQLiteStore) AddToRoster(ctx context.Context, eventID, participantID string) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM participants WHERE id = ?", participantID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("participant %s: %w", participantID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to look up participant: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO event_participants (event_id, participant_id, created_at) VALUES (?, ?, ?)
		 ON CONFLICT (event_id, participant_id) DO NOTHING`,
		eventID, participantID, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to add participant to roster: %w", err)
	}
	return nil
}

// ListParticipants returns the roster of an event, ordered by name.
func (s *SQLiteStore) ListParticipants(ctx context.Context, eventID string) ([]models.Participant, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.name, p.type, p.children, p.created_at
		 FROM participants p
		 JOIN event_participants ep ON ep.participant_id = p.id
		 WHERE ep.event_id = ?
		 ORDER BY p.name`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	var participants []models.Participant
	for rows.Next() {
		var p models.Participant
		var typ string
		if err := rows.Scan(&p.ID, &p.Name, &typ, &p.Children, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		p.Type = models.HouseholdType(typ)
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}
