package checks

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"time"
)

// ExecRunner runs checks as child processes. Output is streamed straight to
// the configured writers and never inspected; only the exit status counts.
// Nil streams are connected to the null device.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var _ Runner = (*ExecRunner)(nil)

func (r *ExecRunner) Run(ctx context.Context, dir string, check Check) (bool, error) {
	//nolint:gosec // commands are fixed per adapter, not user input
	cmd := exec.CommandContext(ctx, check.Command, check.Args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	slog.Debug("Running check", "check", check.Name, "command", commandLine(check), "dir", dir)

	start := time.Now()
	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// not found, permission denied, bad working directory
			return false, Operational("failed to run "+commandLine(check), err)
		}
	}

	ok := err == nil
	slog.Debug("Check finished", "check", check.Name, "ok", ok, "duration", time.Since(start))
	return ok, nil
}

func commandLine(check Check) string {
	if len(check.Args) == 0 {
		return check.Command
	}
	return check.Command + " " + strings.Join(check.Args, " ")
}
