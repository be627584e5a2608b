package orchestration

import "fmt"

// UsageError rejects a run before any check is started.
type UsageError struct {
	Message string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UsageError) Unwrap() error { return e.Err }

// ExitStatus carries a non-zero evaluator verdict that the process should
// exit with unchanged.
type ExitStatus struct {
	Code int
}

func (e *ExitStatus) Error() string {
	return fmt.Sprintf("evaluator exited with status %d", e.Code)
}
