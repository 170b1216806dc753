package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Payment is money handed from one participant to another to settle debts.
// It is not tied to any expense: it reduces the aggregate debt between the
// two participants.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// EventID is the event whose ledger this payment settles.
	EventID string

	// PayerID is the participant handing over the money (the debtor).
	PayerID string

	// ReceiverID is the participant receiving the money (the creditor).
	ReceiverID string

	// Amount is the money transferred.
	Amount decimal.Decimal

	// Note is an optional free-text description.
	Note string

	// RecordedBy identifies who registered the payment, when known.
	RecordedBy string

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64
}

// NewPayment builds a payment between two distinct participants.
func NewPayment(eventID, payerID, receiverID string, amount decimal.Decimal, note string) (*Payment, error) {
	switch {
	case eventID == "":
		return nil, fmt.Errorf("%w: event id is required", ErrMissingField)
	case payerID == "" || receiverID == "":
		return nil, fmt.Errorf("%w: payer and receiver are required", ErrMissingField)
	case payerID == receiverID:
		return nil, ErrSelfPayment
	case !amount.IsPositive():
		return nil, fmt.Errorf("%w: payment amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	return &Payment{
		EventID:    eventID,
		PayerID:    payerID,
		ReceiverID: receiverID,
		Amount:     amount,
		Note:       strings.TrimSpace(note),
	}, nil
}
