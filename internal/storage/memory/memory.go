// Package memory provides an in-process storage.Store used by tests and
// local runs without a database file.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/carnival/internal/models"
	"github.com/mmynk/carnival/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Operation names accepted by FailOn.
const (
	OpListParticipants  = "ListParticipants"
	OpListExpenses      = "ListExpenses"
	OpListExpenseShares = "ListExpenseShares"
	OpListPayments      = "ListPayments"
	OpCreateExpense     = "CreateExpense"
	OpCreatePayment     = "CreatePayment"
	OpListContributions = "ListContributions"
)

// Store keeps every record in maps guarded by a single mutex. Sort orders
// match the SQLite store.
type Store struct {
	mu            sync.Mutex
	events        map[string]models.Event
	participants  map[string]models.Participant
	rosters       map[string][]string
	expenses      map[string]models.Expense
	shares        map[string][]models.ExpenseShare
	payments      map[string]models.Payment
	contributions map[string]models.Contribution
	seq           int64
	failures      map[string]error
	calls         map[string]int
}

// New returns an empty store.
func New() *Store {
	return &Store{
		events:        make(map[string]models.Event),
		participants:  make(map[string]models.Participant),
		rosters:       make(map[string][]string),
		expenses:      make(map[string]models.Expense),
		shares:        make(map[string][]models.ExpenseShare),
		payments:      make(map[string]models.Payment),
		contributions: make(map[string]models.Contribution),
		failures:      make(map[string]error),
		calls:         make(map[string]int),
	}
}

// FailOn makes every later call of op return err. A nil err clears it.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// Calls reports how many times op was invoked.
func (s *Store) Calls(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// enter records a call and returns the injected failure, if any.
// Callers must hold s.mu.
func (s *Store) enter(op string) error {
	s.calls[op]++
	return s.failures[op]
}

// stamp returns a strictly increasing creation time so that records made
// within the same second still order deterministically.
func (s *Store) stamp() int64 {
	now := time.Now().Unix()
	if now <= s.seq {
		now = s.seq + 1
	}
	s.seq = now
	return now
}

func (s *Store) CreateEvent(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt == 0 {
		event.CreatedAt = s.stamp()
	}
	if event.Status == "" {
		event.Status = models.EventPlanning
	}
	s.events[event.ID] = *event
	return nil
}

func (s *Store) GetEvent(_ context.Context, eventID string) (*models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, ok := s.events[eventID]
	if !ok {
		return nil, fmt.Errorf("event %s: %w", eventID, storage.ErrNotFound)
	}
	return &event, nil
}

func (s *Store) ListEvents(_ context.Context) ([]models.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := make([]models.Event, 0, len(s.events))
	for _, e := range s.events {
		events = append(events, e)
	}
	slices.SortFunc(events, func(a, b models.Event) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return int(b.CreatedAt - a.CreatedAt)
	})
	return events, nil
}

func (s *Store) CreateParticipant(_ context.Context, participant *models.Participant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if participant.ID == "" {
		participant.ID = uuid.New().String()
	}
	if participant.CreatedAt == 0 {
		participant.CreatedAt = s.stamp()
	}
	s.participants[participant.ID] = *participant
	return nil
}

func (s *Store) AddToRoster(_ context.Context, eventID, participantID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[eventID]; !ok {
		return fmt.Errorf("event %s: %w", eventID, storage.ErrNotFound)
	}
	if _, ok := s.participants[participantID]; !ok {
		return fmt.Errorf("participant %s: %w", participantID, storage.ErrNotFound)
	}
	if slices.Contains(s.rosters[eventID], participantID) {
		return nil
	}
	s.rosters[eventID] = append(s.rosters[eventID], participantID)
	return nil
}

// RemoveParticipant deletes a participant everywhere except from the
// records that reference it, mirroring a row removed behind the ledger's
// back. Tests use it to produce dangling references.
func (s *Store) RemoveParticipant(participantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.participants, participantID)
	for eventID, ids := range s.rosters {
		s.rosters[eventID] = slices.DeleteFunc(ids, func(id string) bool { return id == participantID })
	}
}

func (s *Store) ListParticipants(_ context.Context, eventID string) ([]models.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpListParticipants); err != nil {
		return nil, err
	}
	var participants []models.Participant
	for _, id := range s.rosters[eventID] {
		if p, ok := s.participants[id]; ok {
			participants = append(participants, p)
		}
	}
	slices.SortFunc(participants, func(a, b models.Participant) int {
		return strings.Compare(a.Name, b.Name)
	})
	return participants, nil
}

func (s *Store) CreateExpense(_ context.Context, expense *models.Expense, shares []models.ExpenseShare) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpCreateExpense); err != nil {
		return err
	}
	if _, ok := s.events[expense.EventID]; !ok {
		return fmt.Errorf("failed to insert expense: event %s: %w", expense.EventID, storage.ErrNotFound)
	}
	for _, sh := range shares {
		if _, ok := s.participants[sh.ParticipantID]; !ok {
			return fmt.Errorf("failed to insert expense share: participant %s: %w", sh.ParticipantID, storage.ErrNotFound)
		}
	}

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = s.stamp()
	}
	stored := make([]models.ExpenseShare, len(shares))
	for i := range shares {
		shares[i].ExpenseID = expense.ID
		stored[i] = shares[i]
	}
	s.expenses[expense.ID] = *expense
	s.shares[expense.ID] = stored
	return nil
}

// PutExpense stores an expense and shares without any checks, so tests can
// reference payers or participants that do not exist.
func (s *Store) PutExpense(expense models.Expense, shares ...models.ExpenseShare) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = s.stamp()
	}
	for i := range shares {
		shares[i].ExpenseID = expense.ID
	}
	s.expenses[expense.ID] = expense
	s.shares[expense.ID] = shares
}

func (s *Store) GetExpense(_ context.Context, expenseID string) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.expenses[expenseID]
	if !ok {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	return &e, nil
}

func (s *Store) sortedExpenses(eventID string) []models.Expense {
	var expenses []models.Expense
	for _, e := range s.expenses {
		if e.EventID == eventID {
			expenses = append(expenses, e)
		}
	}
	slices.SortFunc(expenses, func(a, b models.Expense) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return int(a.CreatedAt - b.CreatedAt)
	})
	return expenses
}

func (s *Store) ListExpenses(_ context.Context, eventID string) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpListExpenses); err != nil {
		return nil, err
	}
	return s.sortedExpenses(eventID), nil
}

func (s *Store) ListExpenseShares(_ context.Context, eventID string) ([]models.ExpenseShare, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpListExpenseShares); err != nil {
		return nil, err
	}
	var shares []models.ExpenseShare
	for _, e := range s.sortedExpenses(eventID) {
		shares = append(shares, s.shares[e.ID]...)
	}
	return shares, nil
}

func (s *Store) DeleteExpense(_ context.Context, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.expenses[expenseID]; !ok {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	delete(s.expenses, expenseID)
	delete(s.shares, expenseID)
	return nil
}

func (s *Store) CreatePayment(_ context.Context, payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpCreatePayment); err != nil {
		return err
	}
	if _, ok := s.events[payment.EventID]; !ok {
		return fmt.Errorf("failed to insert payment: event %s: %w", payment.EventID, storage.ErrNotFound)
	}
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = s.stamp()
	}
	s.payments[payment.ID] = *payment
	return nil
}

func (s *Store) ListPayments(_ context.Context, eventID string) ([]models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpListPayments); err != nil {
		return nil, err
	}
	var payments []models.Payment
	for _, p := range s.payments {
		if p.EventID == eventID {
			payments = append(payments, p)
		}
	}
	slices.SortFunc(payments, func(a, b models.Payment) int {
		return int(b.CreatedAt - a.CreatedAt)
	})
	return payments, nil
}

func (s *Store) DeletePayment(_ context.Context, eventID, paymentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.payments[paymentID]; !ok || p.EventID != eventID {
		return fmt.Errorf("payment %s in event %s: %w", paymentID, eventID, storage.ErrNotFound)
	}
	delete(s.payments, paymentID)
	return nil
}

func (s *Store) CreateContribution(_ context.Context, contribution *models.Contribution) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.events[contribution.EventID]; !ok {
		return fmt.Errorf("failed to insert contribution: event %s: %w", contribution.EventID, storage.ErrNotFound)
	}
	if _, ok := s.participants[contribution.ParticipantID]; !ok {
		return fmt.Errorf("failed to insert contribution: participant %s: %w", contribution.ParticipantID, storage.ErrNotFound)
	}
	if contribution.ID == "" {
		contribution.ID = uuid.New().String()
	}
	if contribution.CreatedAt == 0 {
		contribution.CreatedAt = s.stamp()
	}
	s.contributions[contribution.ID] = *contribution
	return nil
}

func (s *Store) ListContributions(_ context.Context, eventID string) ([]models.Contribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.enter(OpListContributions); err != nil {
		return nil, err
	}
	var contributions []models.Contribution
	for _, c := range s.contributions {
		if c.EventID == eventID {
			contributions = append(contributions, c)
		}
	}
	slices.SortFunc(contributions, func(a, b models.Contribution) int {
		if c := b.Month.Compare(a.Month); c != 0 {
			return c
		}
		return int(b.CreatedAt - a.CreatedAt)
	})
	return contributions, nil
}

func (s *Store) DeleteContribution(_ context.Context, eventID, contributionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.contributions[contributionID]; !ok || c.EventID != eventID {
		return fmt.Errorf("contribution %s in event %s: %w", contributionID, eventID, storage.ErrNotFound)
	}
	delete(s.contributions, contributionID)
	return nil
}

func (s *Store) Close() error { return nil }
