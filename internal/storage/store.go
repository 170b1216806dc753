// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/carnival/internal/models"
)

// ErrNotFound is returned (wrapped) when a record does not exist.
var ErrNotFound = errors.New("not found")

// Loader yields the collections a report needs for one event.
// Implementations must be safe to call concurrently.
type Loader interface {
	// ListParticipants returns the event roster.
	ListParticipants(ctx context.Context, eventID string) ([]models.Participant, error)

	// ListExpenses returns every expense of the event.
	ListExpenses(ctx context.Context, eventID string) ([]models.Expense, error)

	// ListExpenseShares returns the shares of every expense of the event.
	ListExpenseShares(ctx context.Context, eventID string) ([]models.ExpenseShare, error)

	// ListPayments returns the event's payments, newest first.
	ListPayments(ctx context.Context, eventID string) ([]models.Payment, error)

	// ListContributions returns the event's contributions, latest month
	// first and newest first within a month.
	ListContributions(ctx context.Context, eventID string) ([]models.Contribution, error)
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, in-memory, etc.)
// without changing the ledger service.
type Store interface {
	Loader

	// CreateEvent persists a new event. ID and CreatedAt are filled in.
	CreateEvent(ctx context.Context, event *models.Event) error

	// GetEvent retrieves an event by ID.
	GetEvent(ctx context.Context, eventID string) (*models.Event, error)

	// ListEvents returns all events, most recent year first.
	ListEvents(ctx context.Context) ([]models.Event, error)

	// CreateParticipant persists a participant. ID and CreatedAt are filled in.
	CreateParticipant(ctx context.Context, participant *models.Participant) error

	// AddToRoster puts an existing participant on an event roster.
	// Adding someone twice is not an error.
	AddToRoster(ctx context.Context, eventID, participantID string) error

	// CreateExpense persists an expense and its shares atomically: either
	// all rows are written or none. ID and CreatedAt are filled in and the
	// shares' ExpenseID is set.
	CreateExpense(ctx context.Context, expense *models.Expense, shares []models.ExpenseShare) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// DeleteExpense removes an expense together with its shares.
	DeleteExpense(ctx context.Context, expenseID string) error

	// CreatePayment persists a payment. ID and CreatedAt are filled in.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// DeletePayment removes a payment of the given event. A payment that
	// exists under another event is reported as ErrNotFound.
	DeletePayment(ctx context.Context, eventID, paymentID string) error

	// CreateContribution persists a contribution. ID and CreatedAt are
	// filled in.
	CreateContribution(ctx context.Context, contribution *models.Contribution) error

	// DeleteContribution removes a contribution of the given event, with
	// the same scoping as DeletePayment.
	DeleteContribution(ctx context.Context, eventID, contributionID string) error

	// Close releases any resources held by the store.
	Close() error
}
