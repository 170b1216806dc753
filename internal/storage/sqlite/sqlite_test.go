package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/carnival/internal/models"
	"github.com/mmynk/carnival/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "carnival-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustEvent(t *testing.T, store *SQLiteStore, name string, year int) *models.Event {
	t.Helper()
	event := &models.Event{Name: name, Year: year}
	if err := store.CreateEvent(context.Background(), event); err != nil {
		t.Fatalf("CreateEvent failed: %v", err)
	}
	return event
}

func mustParticipant(t *testing.T, store *SQLiteStore, eventID, name string, typ models.HouseholdType) *models.Participant {
	t.Helper()
	ctx := context.Background()
	p := &models.Participant{Name: name, Type: typ}
	if err := store.CreateParticipant(ctx, p); err != nil {
		t.Fatalf("CreateParticipant failed: %v", err)
	}
	if err := store.AddToRoster(ctx, eventID, p.ID); err != nil {
		t.Fatalf("AddToRoster failed: %v", err)
	}
	return p
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	event := mustEvent(t, store, "Carnival 2026", 2026)
	alice := mustParticipant(t, store, event.ID, "Alice", models.Individual)
	bobCarol := mustParticipant(t, store, event.ID, "Bob & Carol", models.Couple)

	t.Run("CreateEvent generates ID and status", func(t *testing.T) {
		if event.ID == "" {
			t.Error("Expected event ID to be generated")
		}
		if event.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		got, err := store.GetEvent(ctx, event.ID)
		if err != nil {
			t.Fatalf("GetEvent failed: %v", err)
		}
		if got.Name != "Carnival 2026" || got.Status != models.EventPlanning {
			t.Errorf("GetEvent = %+v", got)
		}
	})

	t.Run("GetEvent returns ErrNotFound", func(t *testing.T) {
		_, err := store.GetEvent(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("AddToRoster is idempotent", func(t *testing.T) {
		if err := store.AddToRoster(ctx, event.ID, alice.ID); err != nil {
			t.Fatalf("AddToRoster failed: %v", err)
		}
		roster, err := store.ListParticipants(ctx, event.ID)
		if err != nil {
			t.Fatalf("ListParticipants failed: %v", err)
		}
		if len(roster) != 2 {
			t.Fatalf("Expected 2 participants, got %d", len(roster))
		}
		if roster[0].Name != "Alice" || roster[1].Type != models.Couple {
			t.Errorf("Unexpected roster: %+v", roster)
		}
	})

	t.Run("AddToRoster rejects unknown participant", func(t *testing.T) {
		err := store.AddToRoster(ctx, event.ID, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("CreateExpense stores expense and shares", func(t *testing.T) {
		expense := &models.Expense{
			EventID:     event.ID,
			Description: "Rent",
			Amount:      decimal.RequireFromString("300.00"),
			Category:    "Rent",
			Date:        time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC),
			PayerID:     alice.ID,
		}
		shares := []models.ExpenseShare{
			{ParticipantID: alice.ID, Amount: decimal.RequireFromString("100.00")},
			{ParticipantID: bobCarol.ID, Amount: decimal.RequireFromString("200.00")},
		}
		if err := store.CreateExpense(ctx, expense, shares); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" {
			t.Fatal("Expected expense ID to be generated")
		}
		if shares[0].ExpenseID != expense.ID {
			t.Errorf("Share expense ID = %q, want %q", shares[0].ExpenseID, expense.ID)
		}

		got, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if !got.Amount.Equal(expense.Amount) {
			t.Errorf("Amount mismatch: got %s, want %s", got.Amount, expense.Amount)
		}
		if got.Date.Format(models.DateLayout) != "2026-02-13" {
			t.Errorf("Date mismatch: got %s", got.Date)
		}

		stored, err := store.ListExpenseShares(ctx, event.ID)
		if err != nil {
			t.Fatalf("ListExpenseShares failed: %v", err)
		}
		if len(stored) != 2 {
			t.Fatalf("Expected 2 shares, got %d", len(stored))
		}
		if !stored[1].Amount.Equal(decimal.NewFromInt(200)) {
			t.Errorf("Share amount mismatch: got %s", stored[1].Amount)
		}
	})

	t.Run("CreateExpense rolls back when a share fails", func(t *testing.T) {
		before, _ := store.ListExpenses(ctx, event.ID)

		expense := &models.Expense{
			EventID:     event.ID,
			Description: "Broken",
			Amount:      decimal.NewFromInt(10),
			Category:    "Other",
			Date:        time.Now(),
			PayerID:     alice.ID,
		}
		shares := []models.ExpenseShare{
			{ParticipantID: alice.ID, Amount: decimal.NewFromInt(5)},
			{ParticipantID: "no-such-participant", Amount: decimal.NewFromInt(5)},
		}
		if err := store.CreateExpense(ctx, expense, shares); err == nil {
			t.Fatal("Expected foreign key failure")
		}

		after, err := store.ListExpenses(ctx, event.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(after) != len(before) {
			t.Errorf("Expense count changed from %d to %d after a failed create", len(before), len(after))
		}
		if _, err := store.GetExpense(ctx, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected rolled back expense to be missing, got %v", err)
		}
	})

	t.Run("DeleteExpense removes shares", func(t *testing.T) {
		expense := &models.Expense{
			EventID:     event.ID,
			Description: "Beer",
			Amount:      decimal.NewFromInt(30),
			Category:    "Food",
			Date:        time.Now(),
			PayerID:     bobCarol.ID,
		}
		shares := []models.ExpenseShare{{ParticipantID: alice.ID, Amount: decimal.NewFromInt(30)}}
		if err := store.CreateExpense(ctx, expense, shares); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if err := store.DeleteExpense(ctx, expense.ID); err != nil {
			t.Fatalf("DeleteExpense failed: %v", err)
		}

		all, err := store.ListExpenseShares(ctx, event.ID)
		if err != nil {
			t.Fatalf("ListExpenseShares failed: %v", err)
		}
		for _, s := range all {
			if s.ExpenseID == expense.ID {
				t.Errorf("Share of deleted expense still present: %+v", s)
			}
		}

		if err := store.DeleteExpense(ctx, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
		}
	})

	t.Run("Payments are listed newest first and deletable", func(t *testing.T) {
		first := &models.Payment{
			EventID:    event.ID,
			PayerID:    bobCarol.ID,
			ReceiverID: alice.ID,
			Amount:     decimal.NewFromInt(150),
			CreatedAt:  1000,
		}
		second := &models.Payment{
			EventID:    event.ID,
			PayerID:    bobCarol.ID,
			ReceiverID: alice.ID,
			Amount:     decimal.NewFromInt(50),
			Note:       "rest of the rent",
			RecordedBy: "carol",
			CreatedAt:  2000,
		}
		for _, p := range []*models.Payment{first, second} {
			if err := store.CreatePayment(ctx, p); err != nil {
				t.Fatalf("CreatePayment failed: %v", err)
			}
		}

		payments, err := store.ListPayments(ctx, event.ID)
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		if len(payments) != 2 {
			t.Fatalf("Expected 2 payments, got %d", len(payments))
		}
		if payments[0].ID != second.ID {
			t.Errorf("Expected newest payment first, got %s", payments[0].ID)
		}
		if payments[0].Note != "rest of the rent" || payments[0].RecordedBy != "carol" {
			t.Errorf("Optional fields lost: %+v", payments[0])
		}
		if payments[1].Note != "" {
			t.Errorf("Expected empty note, got %q", payments[1].Note)
		}

		other := mustEvent(t, store, "Other Trip", 2025)
		if err := store.DeletePayment(ctx, other.ID, first.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound deleting through another event, got %v", err)
		}
		if err := store.DeletePayment(ctx, event.ID, first.ID); err != nil {
			t.Fatalf("DeletePayment failed: %v", err)
		}
		if err := store.DeletePayment(ctx, event.ID, first.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Contributions are listed latest month first", func(t *testing.T) {
		jan := &models.Contribution{
			EventID:       event.ID,
			ParticipantID: alice.ID,
			Amount:        decimal.RequireFromString("120.50"),
			Month:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			Notes:         "first installment",
			CreatedAt:     3000,
		}
		mar := &models.Contribution{
			EventID:       event.ID,
			ParticipantID: bobCarol.ID,
			Amount:        decimal.NewFromInt(80),
			Month:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			CreatedAt:     1000,
		}
		for _, c := range []*models.Contribution{jan, mar} {
			if err := store.CreateContribution(ctx, c); err != nil {
				t.Fatalf("CreateContribution failed: %v", err)
			}
		}

		contributions, err := store.ListContributions(ctx, event.ID)
		if err != nil {
			t.Fatalf("ListContributions failed: %v", err)
		}
		if len(contributions) != 2 {
			t.Fatalf("Expected 2 contributions, got %d", len(contributions))
		}
		if contributions[0].ID != mar.ID {
			t.Errorf("Expected March first, got %s", contributions[0].Month.Format(models.MonthLayout))
		}
		got := contributions[1]
		if !got.Amount.Equal(jan.Amount) || got.Notes != "first installment" || !got.Month.Equal(jan.Month) {
			t.Errorf("Contribution round trip mismatch: %+v", got)
		}

		other := mustEvent(t, store, "Elsewhere", 2024)
		if err := store.DeleteContribution(ctx, other.ID, jan.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound deleting through another event, got %v", err)
		}
		if err := store.DeleteContribution(ctx, event.ID, jan.ID); err != nil {
			t.Fatalf("DeleteContribution failed: %v", err)
		}
		if err := store.DeleteContribution(ctx, event.ID, jan.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("CreateContribution rejects unknown participant", func(t *testing.T) {
		err := store.CreateContribution(ctx, &models.Contribution{
			EventID:       event.ID,
			ParticipantID: "no-such-participant",
			Amount:        decimal.NewFromInt(10),
			Month:         time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		})
		if err == nil {
			t.Fatal("Expected foreign key failure")
		}
	})

	t.Run("Events do not share ledgers", func(t *testing.T) {
		other := mustEvent(t, store, "Carnival 2027", 2027)
		expenses, err := store.ListExpenses(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListExpenses failed: %v", err)
		}
		if len(expenses) != 0 {
			t.Errorf("Expected no expenses for a new event, got %d", len(expenses))
		}
		payments, err := store.ListPayments(ctx, other.ID)
		if err != nil {
			t.Fatalf("ListPayments failed: %v", err)
		}
		if len(payments) != 0 {
			t.Errorf("Expected no payments for a new event, got %d", len(payments))
		}

		events, err := store.ListEvents(ctx)
		if err != nil {
			t.Fatalf("ListEvents failed: %v", err)
		}
		if len(events) != 4 || events[0].ID != other.ID {
			t.Errorf("Expected newest event first, got %+v", events)
		}
	})
}

func TestNew_ConcurrentMigrations(t *testing.T) {
	tempDir := t.TempDir()

	var g errgroup.Group
	stores := make([]*SQLiteStore, 8)
	for i := range stores {
		g.Go(func() error {
			store, err := New(filepath.Join(tempDir, fmt.Sprintf("store-%d.db", i)))
			if err != nil {
				return err
			}
			stores[i] = store
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Concurrent New failed: %v", err)
	}

	for i, store := range stores {
		t.Cleanup(func() { store.Close() })
		if _, err := store.ListContributions(context.Background(), "none"); err != nil {
			t.Errorf("store %d not migrated: %v", i, err)
		}
	}
}
