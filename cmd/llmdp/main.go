package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/llmdp/llmdp/internal/orchestration"
)

// ExitError is used for usage and operational errors. Any other status is
// the evaluator's own.
const ExitError = 3

func main() {
	if err := execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error returned by the command tree to a process status,
// reporting it on stderr unless it only carries the evaluator's verdict.
func exitCode(err error) int {
	var status *orchestration.ExitStatus
	if errors.As(err, &status) {
		return status.Code
	}

	fmt.Fprintln(os.Stderr, "llmdp:", err) //nolint:errcheck
	return ExitError
}
