package adapters

import (
	"context"
	"log/slog"

	"github.com/llmdp/llmdp/internal/checks"
	"github.com/llmdp/llmdp/internal/facts"
)

// rustChecks always run, in this order.
var rustChecks = []checks.Check{
	{Name: "fmt", Fact: facts.FmtOK, Command: "cargo", Args: []string{"fmt", "--", "--check"}},
	{Name: "clippy", Fact: facts.ClippyOK, Command: "cargo", Args: []string{"clippy", "--", "-D", "warnings"}},
	{Name: "test", Fact: facts.TestsOK, Command: "cargo", Args: []string{"test"}},
}

// RustAdapter checks a cargo project: formatting, clippy with warnings
// denied, and the test suite. All three facts are produced on every
// successful run.
type RustAdapter struct {
	runner checks.Runner
}

var _ Adapter = (*RustAdapter)(nil)

// NewRustAdapter creates a [RustAdapter] that runs cargo through runner.
func NewRustAdapter(runner checks.Runner) *RustAdapter {
	return &RustAdapter{runner: runner}
}

func (a *RustAdapter) Language() Language { return LanguageRust }

func (a *RustAdapter) Vocabulary() []string {
	return []string{facts.FmtOK, facts.ClippyOK, facts.TestsOK}
}

func (a *RustAdapter) Collect(ctx context.Context, repo string) (facts.Facts, error) {
	slog.Debug("Collecting rust facts", "repo", repo)

	agg := facts.NewAggregator()
	if err := runChecks(ctx, a.runner, repo, rustChecks, agg); err != nil {
		return nil, err
	}
	return agg.Facts(), nil
}
