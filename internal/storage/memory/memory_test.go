package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/carnival/internal/models"
	"github.com/mmynk/carnival/internal/storage"
)

func TestStoreExpenseIsAtomic(t *testing.T) {
	ctx := context.Background()
	s := New()

	event := &models.Event{Name: "Carnival", Year: 2026}
	require.NoError(t, s.CreateEvent(ctx, event))
	alice := &models.Participant{Name: "Alice", Type: models.Individual}
	require.NoError(t, s.CreateParticipant(ctx, alice))
	require.NoError(t, s.AddToRoster(ctx, event.ID, alice.ID))

	expense := &models.Expense{EventID: event.ID, Description: "Rent", Amount: decimal.NewFromInt(10), Date: time.Now(), PayerID: alice.ID}
	err := s.CreateExpense(ctx, expense, []models.ExpenseShare{
		{ParticipantID: alice.ID, Amount: decimal.NewFromInt(5)},
		{ParticipantID: "ghost", Amount: decimal.NewFromInt(5)},
	})
	require.ErrorIs(t, err, storage.ErrNotFound)

	expenses, err := s.ListExpenses(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestStoreOrdering(t *testing.T) {
	ctx := context.Background()
	s := New()

	event := &models.Event{Name: "Carnival", Year: 2026}
	require.NoError(t, s.CreateEvent(ctx, event))
	for _, name := range []string{"Zé", "Ana"} {
		p := &models.Participant{Name: name, Type: models.Individual}
		require.NoError(t, s.CreateParticipant(ctx, p))
		require.NoError(t, s.AddToRoster(ctx, event.ID, p.ID))
	}

	roster, err := s.ListParticipants(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Ana", roster[0].Name)

	for _, amount := range []int64{1, 2} {
		require.NoError(t, s.CreatePayment(ctx, &models.Payment{
			EventID: event.ID, PayerID: roster[0].ID, ReceiverID: roster[1].ID, Amount: decimal.NewFromInt(amount),
		}))
	}
	payments, err := s.ListPayments(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.True(t, payments[0].Amount.Equal(decimal.NewFromInt(2)), "newest payment first")
}

func TestStoreFailOn(t *testing.T) {
	ctx := context.Background()
	s := New()
	boom := errors.New("disk on fire")

	s.FailOn(OpListPayments, boom)
	_, err := s.ListPayments(ctx, "ev")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s.Calls(OpListPayments))

	s.FailOn(OpListPayments, nil)
	_, err = s.ListPayments(ctx, "ev")
	assert.NoError(t, err)
}
