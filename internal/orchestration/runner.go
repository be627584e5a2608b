// Package orchestration drives a single llmdp run: dispatch to a language
// adapter, persist the collected facts and hand them to the contract
// evaluator.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/llmdp/llmdp/internal/adapters"
	"github.com/llmdp/llmdp/internal/checks"
	"github.com/llmdp/llmdp/internal/evaluator"
	"github.com/llmdp/llmdp/internal/facts"
	"github.com/llmdp/llmdp/internal/projectconfig"
	"github.com/llmdp/llmdp/internal/reporting"
	"github.com/llmdp/llmdp/internal/validation"
)

// Options describes one run.
type Options struct {
	Repo     string
	Language string
	Contract string

	// FactsPath overrides the configured facts file location.
	FactsPath string

	// JUnitPath, when set, receives a JUnit XML rendering of the facts.
	JUnitPath string
}

// Result is what a run produced. It is returned alongside an *ExitStatus
// when the evaluator reports a non-zero status.
type Result struct {
	RunID     string
	Language  string
	Facts     facts.Facts
	FactsPath string
	Status    int
}

// Runner executes runs. The zero value is not usable; call NewRunner.
type Runner struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	checks checks.Runner

	progressMu sync.Mutex
	listeners  []ProgressListener
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithStreams sets the streams inherited by checks and the evaluator.
func WithStreams(stdin io.Reader, stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithCheckRunner replaces the process-backed check runner.
func WithCheckRunner(cr checks.Runner) RunnerOption {
	return func(r *Runner) {
		r.checks = cr
	}
}

// NewRunner creates a Runner wired to the process's standard streams.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		listeners: []ProgressListener{},
	}
	for _, o := range opts {
		o(r)
	}
	if r.checks == nil {
		r.checks = &checks.ExecRunner{Stdin: r.stdin, Stdout: r.stdout, Stderr: r.stderr}
	}
	return r
}

// OnProgress registers a progress listener.
func (r *Runner) OnProgress(listener ProgressListener) {
	r.progressMu.Lock()
	defer r.progressMu.Unlock()
	r.listeners = append(r.listeners, listener)
}

func (r *Runner) notifyProgress(event ProgressEvent) {
	r.progressMu.Lock()
	listeners := make([]ProgressListener, len(r.listeners))
	copy(listeners, r.listeners)
	r.progressMu.Unlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// Run collects facts for opts.Repo, writes them and invokes the evaluator.
//
// Errors are a *UsageError when the inputs are rejected before any check
// runs, a *checks.OperationalError when a check, the facts file or the
// evaluator could not be handled, or an *ExitStatus carrying the
// evaluator's non-zero verdict.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	runID := uuid.NewString()
	logger := slog.Default().With("run_id", runID)

	if err := requirePath("repository", opts.Repo); err != nil {
		return nil, err
	}
	if err := requirePath("contract", opts.Contract); err != nil {
		return nil, err
	}

	cfg, err := projectconfig.Load(opts.Repo)
	if err != nil {
		return nil, &UsageError{Message: "invalid project configuration", Err: err}
	}

	adapter, err := adapters.ForLanguage(opts.Language, r.checks)
	if err != nil {
		return nil, &UsageError{Message: "cannot collect facts", Err: err}
	}

	factsPath := opts.FactsPath
	if factsPath == "" {
		factsPath = cfg.FactsPath(opts.Repo)
	}

	logger.Debug("Collecting facts", "language", opts.Language, "repo", opts.Repo)
	r.notifyProgress(ProgressEvent{
		EventType: EventCollectStart,
		RunID:     runID,
		Language:  opts.Language,
		Repo:      opts.Repo,
	})

	started := time.Now()
	collected, err := adapter.Collect(ctx, opts.Repo)
	if err != nil {
		logger.Debug("Fact collection aborted", "error", err)
		return nil, err
	}
	duration := time.Since(started)

	data, err := encodeFacts(collected)
	if err != nil {
		return nil, err
	}

	// The report goes first so that a facts file on disk always reaches
	// the evaluator.
	if opts.JUnitPath != "" {
		report := &reporting.Run{
			RunID:      runID,
			Language:   opts.Language,
			Repo:       opts.Repo,
			Vocabulary: adapter.Vocabulary(),
			Facts:      collected,
			Started:    started,
			Duration:   duration,
		}
		if err := reporting.WriteJUnitXML(report, opts.JUnitPath); err != nil {
			return nil, checks.Operational("failed to write JUnit report", err)
		}
		logger.Debug("JUnit report written", "path", opts.JUnitPath)
	}

	if err := facts.WriteFile(factsPath, data); err != nil {
		return nil, checks.Operational("failed to persist facts", err)
	}
	logger.Debug("Facts written", "path", factsPath, "facts", collected.Keys())

	r.notifyProgress(ProgressEvent{
		EventType:  EventFactsWritten,
		RunID:      runID,
		Language:   opts.Language,
		Repo:       opts.Repo,
		Facts:      collected,
		Vocabulary: adapter.Vocabulary(),
		FactsPath:  factsPath,
		DurationMs: duration.Milliseconds(),
	})

	result := &Result{
		RunID:     runID,
		Language:  opts.Language,
		Facts:     collected,
		FactsPath: factsPath,
	}

	ev := &evaluator.Evaluator{
		Command: cfg.Evaluator.Command,
		Stdin:   r.stdin,
		Stdout:  r.stdout,
		Stderr:  r.stderr,
	}
	status, err := ev.Evaluate(ctx, opts.Contract, factsPath)
	if err != nil {
		return result, err
	}
	result.Status = status
	logger.Debug("Evaluator finished", "status", status)

	r.notifyProgress(ProgressEvent{
		EventType: EventEvaluated,
		RunID:     runID,
		Language:  opts.Language,
		Repo:      opts.Repo,
		FactsPath: factsPath,
		Status:    status,
	})

	if status != 0 {
		return result, &ExitStatus{Code: status}
	}
	return result, nil
}

// encodeFacts returns the canonical form of f, rejecting anything the facts
// schema does not accept.
func encodeFacts(f facts.Facts) ([]byte, error) {
	data, err := facts.Encode(f)
	if err != nil {
		return nil, checks.Operational("failed to serialize facts", err)
	}
	if problems := validation.ValidateFactsBytes(data); len(problems) > 0 {
		return nil, checks.Operational(fmt.Sprintf("facts failed schema validation: %s", strings.Join(problems, "; ")), nil)
	}
	return data, nil
}

func requirePath(what, path string) error {
	if path == "" {
		return &UsageError{Message: fmt.Sprintf("%s path is required", what)}
	}
	if _, err := os.Stat(path); err != nil {
		return &UsageError{Message: fmt.Sprintf("%s path %q does not exist", what, path), Err: err}
	}
	return nil
}
