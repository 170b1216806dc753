package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCategory is used for expenses logged without a category.
const DefaultCategory = "Other"

// DateLayout is the calendar-date format used for expense dates.
const DateLayout = "2006-01-02"

// Expense is money fronted by one participant on behalf of several.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// EventID is the event this expense belongs to.
	EventID string

	// Description is the human-readable label, e.g. "Rent" or "Groceries".
	Description string

	// Amount is the total money spent. It should equal the sum of the
	// expense's shares, give or take cent rounding.
	Amount decimal.Decimal

	// Category is a free-form tag used by the category report.
	Category string

	// Date is the calendar day of the expense (time part is ignored).
	Date time.Time

	// PayerID is the participant who paid. It may point to a participant
	// that no longer exists, in which case the expense is ignored by the
	// balance computation.
	PayerID string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// ExpenseShare is what one participant owes for one expense.
type ExpenseShare struct {
	ExpenseID     string
	ParticipantID string
	Amount        decimal.Decimal
}

// NewExpense builds an expense with a positive amount and a payer.
func NewExpense(eventID, description string, amount decimal.Decimal, category string, date time.Time, payerID string) (*Expense, error) {
	description = strings.TrimSpace(description)
	switch {
	case eventID == "":
		return nil, fmt.Errorf("%w: event id is required", ErrMissingField)
	case description == "":
		return nil, fmt.Errorf("%w: description is required", ErrMissingField)
	case payerID == "":
		return nil, fmt.Errorf("%w: payer is required", ErrMissingField)
	case !amount.IsPositive():
		return nil, fmt.Errorf("%w: expense amount must be positive, got %s", ErrInvalidAmount, amount)
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = DefaultCategory
	}
	if date.IsZero() {
		date = time.Now()
	}
	y, m, d := date.Date()

	return &Expense{
		EventID:     eventID,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		PayerID:     payerID,
	}, nil
}

// NewExpenseShare builds a share row. Zero is allowed, negative is not.
func NewExpenseShare(expenseID, participantID string, amount decimal.Decimal) (ExpenseShare, error) {
	if participantID == "" {
		return ExpenseShare{}, fmt.Errorf("%w: share participant is required", ErrMissingField)
	}
	if amount.IsNegative() {
		return ExpenseShare{}, fmt.Errorf("%w: share amount cannot be negative, got %s", ErrInvalidAmount, amount)
	}
	return ExpenseShare{ExpenseID: expenseID, ParticipantID: participantID, Amount: amount}, nil
}
