package store

import (
	"context"
	"errors"
	"fmt"
)

// The error taxonomy every backend driver translates its native failures
// into. Callers branch on these with errors.Is.
var (
	// ErrValidation: a required field is missing or malformed. Not retryable.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthenticated: no active session. The caller must re-authenticate.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound covers both "no such record" and "record belongs to another
	// owner". The two are deliberately indistinguishable so that probing ids
	// cannot reveal whether a foreign record exists.
	ErrNotFound = errors.New("record not found")

	// ErrTransient: network failure or timeout. The caller may retry.
	ErrTransient = errors.New("backend temporarily unavailable")

	// ErrBusy: a mutation for the same owner and entity class is already in
	// flight. The request is rejected, not queued.
	ErrBusy = errors.New("operation already in flight")
)

func validationErr(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func transientErr(err error) error {
	return fmt.Errorf("%w: %v", ErrTransient, err)
}

// ctxErr maps a context cancellation or deadline to the taxonomy.
func ctxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return transientErr(err)
	}
	return err
}
