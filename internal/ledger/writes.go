package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmynk/carnival/internal/calculator"
	"github.com/mmynk/carnival/internal/models"
)

// Write operation names, used as metric labels.
const (
	OpCreateExpense      = "create_expense"
	OpDeleteExpense      = "delete_expense"
	OpRecordPayment      = "record_payment"
	OpDeletePayment      = "delete_payment"
	OpRecordContribution = "record_contribution"
	OpDeleteContribution = "delete_contribution"
	OpCreateEvent        = "create_event"
	OpCreateParticipant  = "create_participant"
	OpAddToRoster        = "add_to_roster"
)

// ExpenseInput is an expense as submitted by a user.
type ExpenseInput struct {
	EventID     string          `validate:"required"`
	Description string          `validate:"required,max=200"`
	Amount      decimal.Decimal `validate:"gt=0"`
	Category    string          `validate:"max=60"`
	// Date defaults to today.
	Date     time.Time
	PayerID  string                  `validate:"required"`
	Division calculator.DivisionType `validate:"omitempty,oneof=equal exact percentage"`
	// ParticipantIDs selects who shares the expense. The payer may be
	// among them.
	ParticipantIDs []string `validate:"required,min=1,dive,required"`
}

// PaymentInput is a payment as submitted by a user.
type PaymentInput struct {
	EventID    string          `validate:"required"`
	PayerID    string          `validate:"required"`
	ReceiverID string          `validate:"required,nefield=PayerID"`
	Amount     decimal.Decimal `validate:"gt=0"`
	Note       string          `validate:"max=500"`
	RecordedBy string
}

// ContributionInput is a contribution to the event fund as submitted by a
// user.
type ContributionInput struct {
	EventID       string          `validate:"required"`
	ParticipantID string          `validate:"required"`
	Amount        decimal.Decimal `validate:"gt=0"`
	// Month defaults to the current month.
	Month time.Time
	Notes string `validate:"max=500"`
}

// checkStruct runs the struct validator and folds field errors into one
// ErrValidation.
func (s *Service) checkStruct(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return invalid(err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrValidation, strings.Join(msgs, "; "))
}

// rosterFor loads the event roster after checking the event exists.
func (s *Service) rosterFor(ctx context.Context, eventID string) (calculator.Roster, error) {
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, readErr("get event", err)
	}
	participants, err := s.store.ListParticipants(ctx, eventID)
	if err != nil {
		return nil, readErr("list participants", err)
	}
	return calculator.NewRoster(participants), nil
}

// RecordExpense validates the input, splits the amount among the selected
// participants and stores the expense with its shares atomically. A
// selection with no adult units is rejected before anything is written.
func (s *Service) RecordExpense(ctx context.Context, in ExpenseInput) (expense *models.Expense, shares []models.ExpenseShare, err error) {
	defer func() { s.metrics.ObserveWrite(OpCreateExpense, err) }()

	if err := s.checkStruct(in); err != nil {
		return nil, nil, err
	}

	roster, err := s.rosterFor(ctx, in.EventID)
	if err != nil {
		return nil, nil, err
	}
	if !roster.Has(in.PayerID) {
		return nil, nil, fmt.Errorf("%w: payer %s is not on the event roster", ErrValidation, in.PayerID)
	}
	selected := make([]models.Participant, 0, len(in.ParticipantIDs))
	for _, id := range in.ParticipantIDs {
		p, ok := roster[id]
		if !ok {
			return nil, nil, fmt.Errorf("%w: participant %s is not on the event roster", ErrValidation, id)
		}
		selected = append(selected, p)
	}

	expense, err = models.NewExpense(in.EventID, in.Description, in.Amount, in.Category, in.Date, in.PayerID)
	if err != nil {
		return nil, nil, invalid(err)
	}

	split, err := calculator.Split(in.Division, in.Amount, selected)
	if err != nil {
		return nil, nil, invalid(err)
	}
	shares = make([]models.ExpenseShare, 0, len(split))
	for _, sh := range split {
		share, err := models.NewExpenseShare("", sh.ParticipantID, sh.Amount)
		if err != nil {
			return nil, nil, invalid(err)
		}
		shares = append(shares, share)
	}

	if err := s.store.CreateExpense(ctx, expense, shares); err != nil {
		slog.Error("CreateExpense failed", "event_id", in.EventID, "error", err)
		return nil, nil, writeErr("create expense", err)
	}

	slog.Info("Expense recorded",
		"event_id", in.EventID,
		"expense_id", expense.ID,
		"amount", expense.Amount.String(),
		"shares", len(shares),
	)
	return expense, shares, nil
}

// DeleteExpense removes an expense together with its shares.
func (s *Service) DeleteExpense(ctx context.Context, expenseID string) (expense *models.Expense, err error) {
	defer func() { s.metrics.ObserveWrite(OpDeleteExpense, err) }()

	if expenseID == "" {
		return nil, fmt.Errorf("%w: expense id is required", ErrValidation)
	}
	expense, err = s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, readErr("get expense", err)
	}
	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		return nil, writeErr("delete expense", err)
	}

	slog.Info("Expense deleted", "event_id", expense.EventID, "expense_id", expenseID)
	return expense, nil
}

// RecordPayment stores a payment between two roster members. A blank note
// is replaced by "Payment from <payer> to <receiver>".
func (s *Service) RecordPayment(ctx context.Context, in PaymentInput) (payment *models.Payment, err error) {
	defer func() { s.metrics.ObserveWrite(OpRecordPayment, err) }()

	if err := s.checkStruct(in); err != nil {
		return nil, err
	}

	roster, err := s.rosterFor(ctx, in.EventID)
	if err != nil {
		return nil, err
	}
	for _, id := range []string{in.PayerID, in.ReceiverID} {
		if !roster.Has(id) {
			return nil, fmt.Errorf("%w: participant %s is not on the event roster", ErrValidation, id)
		}
	}

	payment, err = models.NewPayment(in.EventID, in.PayerID, in.ReceiverID, in.Amount, in.Note)
	if err != nil {
		return nil, invalid(err)
	}
	if payment.Note == "" {
		payment.Note = DefaultPaymentNote(roster.Name(in.PayerID), roster.Name(in.ReceiverID))
	}
	payment.RecordedBy = in.RecordedBy

	if err := s.store.CreatePayment(ctx, payment); err != nil {
		slog.Error("CreatePayment failed", "event_id", in.EventID, "error", err)
		return nil, writeErr("create payment", err)
	}

	slog.Info("Payment recorded",
		"event_id", in.EventID,
		"payment_id", payment.ID,
		"payer_id", payment.PayerID,
		"receiver_id", payment.ReceiverID,
		"amount", payment.Amount.String(),
		"recorded_by", payment.RecordedBy,
	)
	return payment, nil
}

// DefaultPaymentNote is the note stored when the user leaves it blank.
func DefaultPaymentNote(payerName, receiverName string) string {
	return fmt.Sprintf("Payment from %s to %s", payerName, receiverName)
}

// DeletePayment removes a payment of the given event. A payment recorded
// under another event is not found.
func (s *Service) DeletePayment(ctx context.Context, eventID, paymentID string) (err error) {
	defer func() { s.metrics.ObserveWrite(OpDeletePayment, err) }()

	if eventID == "" || paymentID == "" {
		return fmt.Errorf("%w: event id and payment id are required", ErrValidation)
	}
	if err := s.store.DeletePayment(ctx, eventID, paymentID); err != nil {
		return writeErr("delete payment", err)
	}
	slog.Info("Payment deleted", "event_id", eventID, "payment_id", paymentID)
	return nil
}

// ListPayments returns the payment history of an event, newest first.
func (s *Service) ListPayments(ctx context.Context, eventID string) ([]models.Payment, error) {
	if eventID == "" {
		return nil, fmt.Errorf("%w: event id is required", ErrValidation)
	}
	if _, err := s.store.GetEvent(ctx, eventID); err != nil {
		return nil, readErr("get event", err)
	}
	payments, err := s.store.ListPayments(ctx, eventID)
	if err != nil {
		return nil, readErr("list payments", err)
	}
	return payments, nil
}
