// Package checks runs the external commands behind repository quality facts
// and reduces each one to a pass/fail outcome.
package checks

//go:generate go tool mockgen -source=checker.go -destination=mock_runner.go -package=checks

import "context"

// Check pairs an external command with the fact key its outcome populates.
type Check struct {
	// Name identifies the check in log records and error messages.
	Name string
	// Fact is the facts key populated with the command's outcome.
	Fact string
	// Command is the executable to run, resolved through PATH.
	Command string
	// Args are passed to Command verbatim.
	Args []string
}

// Runner executes a single check in a working directory.
//
// Run returns true when the command exits with status 0 and false for any
// other termination, signals included. An error is returned only when the
// command could not be started at all, and it is always an [*OperationalError].
type Runner interface {
	Run(ctx context.Context, dir string, check Check) (bool, error)
}
