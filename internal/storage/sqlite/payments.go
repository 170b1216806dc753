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

// CreatePayment persists a new payment to the database.
func (s *SQLiteStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, event_id, payer_id, receiver_id, amount, note, recorded_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.EventID, payment.PayerID, payment.ReceiverID,
		payment.Amount, nullString(payment.Note), nullString(payment.RecordedBy), payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

// ListPayments retrieves all payments of an event, newest first.
func (s *SQLiteStore) ListPayments(ctx context.Context, eventID string) ([]models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, event_id, payer_id, receiver_id, amount, note, recorded_by, created_at
		 FROM payments WHERE event_id = ? ORDER BY created_at DESC, rowid DESC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var p models.Payment
		var note, recordedBy sql.NullString

		if err := rows.Scan(&p.ID, &p.EventID, &p.PayerID, &p.ReceiverID,
			&p.Amount, &note, &recordedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Note = note.String
		p.RecordedBy = recordedBy.String

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}

// DeletePayment removes a payment of the given event. A payment that belongs
// to another event is reported as not found.
func (s *SQLiteStore) DeletePayment(ctx context.Context, eventID, paymentID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM payments WHERE id = ? AND event_id = ?", paymentID, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete payment: %w", err)
	}
	return requireAffected(res, "payment", paymentID)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// requireAffected turns a delete that matched no row into storage.ErrNotFound.
func requireAffected(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted %s: %w", kind, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, storage.ErrNotFound)
	}
	return nil
}
