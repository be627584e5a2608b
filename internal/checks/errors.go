package checks

import (
	"errors"
	"fmt"
)

// OperationalError reports that a required external tool could not be
// invoked at all. A tool that runs and exits non-zero is not an
// OperationalError; that outcome is recorded as a false fact.
type OperationalError struct {
	// Op describes what was being attempted, e.g. "failed to run cargo test".
	Op  string
	Err error
}

func (e *OperationalError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperationalError) Unwrap() error { return e.Err }

// Operational wraps err as an [*OperationalError] describing op.
func Operational(op string, err error) error {
	return &OperationalError{Op: op, Err: err}
}

// IsOperational reports whether err is, or wraps, an [*OperationalError].
func IsOperational(err error) bool {
	var opErr *OperationalError
	return errors.As(err, &opErr)
}
