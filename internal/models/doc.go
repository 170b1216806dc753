// Package models defines the record types of the carnival ledger.
//
// # Stored records
//
//   - Event: a group trip whose expenses are shared
//   - Participant: an individual or a couple on an event roster
//   - Expense: money fronted by one payer
//   - ExpenseShare: what one participant owes for one expense
//   - Payment: money handed from one participant to another to settle up
//   - Contribution: money put into the event fund for one month
//
// Derived values (balances, obligations, settlement lines) are never stored;
// they live in package calculator and are recomputed on every read.
//
// Relationships use ID strings instead of pointers. Monetary amounts use
// decimal.Decimal so that cent arithmetic is exact.
package models

import "errors"

var (
	ErrMissingField     = errors.New("missing required field")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidHousehold = errors.New("invalid household type")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidStatus    = errors.New("invalid event status")
	ErrSelfPayment      = errors.New("payer and receiver must be different participants")
)
