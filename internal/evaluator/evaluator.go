// Package evaluator hands a facts file to the external contract evaluator and
// reports its verdict as a process exit status.
package evaluator

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"

	"github.com/llmdp/llmdp/internal/checks"
)

// Evaluator invokes the contract evaluator as a child process. The
// evaluator's own output goes straight to the configured writers.
type Evaluator struct {
	Command string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// Evaluate runs the evaluator against contractPath and factsPath and returns
// its exit status without interpreting it. An [*checks.OperationalError] is
// returned when the evaluator cannot be started or ends without an exit
// status, e.g. when killed by a signal.
func (e *Evaluator) Evaluate(ctx context.Context, contractPath, factsPath string) (int, error) {
	//nolint:gosec // evaluator command comes from operator configuration
	cmd := exec.CommandContext(ctx, e.Command, "--contract", contractPath, "--output", factsPath)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	slog.Debug("Invoking evaluator", "command", e.Command, "contract", contractPath, "facts", factsPath)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return 0, checks.Operational("failed to invoke "+e.Command, err)
	}

	code := exitErr.ExitCode()
	if code < 0 {
		return 0, checks.Operational(e.Command+" exited without a status code", err)
	}

	slog.Debug("Evaluator finished", "command", e.Command, "status", code)
	return code, nil
}
