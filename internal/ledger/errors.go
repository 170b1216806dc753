package ledger

import (
	"errors"
	"fmt"

	"github.com/mmynk/carnival/internal/storage"
)

// ErrValidation marks input rejected at the write boundary. Check it with
// errors.Is; the wrapped message names the offending field.
var ErrValidation = errors.New("validation failed")

// User-displayable messages carried by DataSourceError.
const (
	MsgLoadFailed  = "could not load the ledger, please try again"
	MsgWriteFailed = "could not save your changes, please try again"
)

// DataSourceError reports a storage failure. The computation that hit it
// is abandoned; no partial report is returned.
type DataSourceError struct {
	// Op names the storage call that failed, e.g. "list payments".
	Op string

	// Message is safe to show to the end user.
	Message string

	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source: %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// readErr classifies a failed read. Not-found passes through unchanged.
func readErr(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return &DataSourceError{Op: op, Message: MsgLoadFailed, Err: err}
}

// writeErr classifies a failed write. Not-found passes through unchanged.
func writeErr(op string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return &DataSourceError{Op: op, Message: MsgWriteFailed, Err: err}
}

// invalid wraps err so that errors.Is(err, ErrValidation) holds while the
// original sentinel stays reachable.
func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
