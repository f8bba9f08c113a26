package futures

import (
	"errors"
	"fmt"
)

var (
	// ErrCanceled is the error reported when a future is settled by calling Cancel
	ErrCanceled = errors.New("future canceled")
)

// RejectionError is returned by Get when a Future was rejected with a reason that is not an error.
// Try never produces one; it hands the reason over unchanged.
type RejectionError struct {
	Reason any
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("future rejected: %v", e.Reason)
}

func asError(reason any) error {
	if err, ok := reason.(error); ok {
		return err
	}
	return &RejectionError{Reason: reason}
}
