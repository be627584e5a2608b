// Package adapters maps each supported language to the checks that describe
// a repository's quality in that ecosystem.
//
// The adapter set is closed: [ForLanguage] is the only way to obtain one and
// it knows every variant statically.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/llmdp/llmdp/internal/checks"
	"github.com/llmdp/llmdp/internal/facts"
)

// Language identifies an ecosystem on the command line.
type Language string

const (
	LanguageNode Language = "node"
	LanguageRust Language = "rust"
)

// ErrUnsupportedLanguage is returned by [ForLanguage] for identifiers with no adapter.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Adapter collects facts for one language.
type Adapter interface {
	// Language returns the identifier the adapter is selected by.
	Language() Language

	// Vocabulary lists every fact key the adapter can produce.
	Vocabulary() []string

	// Collect runs the applicable checks against the repository at repo.
	// On error the returned Facts is nil; facts gathered before the failure
	// are discarded.
	Collect(ctx context.Context, repo string) (facts.Facts, error)
}

// Languages returns the supported language identifiers.
func Languages() []Language {
	return []Language{LanguageNode, LanguageRust}
}

// ForLanguage returns the adapter for lang, running its checks with runner.
func ForLanguage(lang string, runner checks.Runner) (Adapter, error) {
	switch Language(lang) {
	case LanguageNode:
		return NewNodeAdapter(runner), nil
	case LanguageRust:
		return NewRustAdapter(runner), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, lang)
	}
}

// runChecks runs each check in order, recording its outcome. The first
// operational error stops the sequence.
func runChecks(ctx context.Context, runner checks.Runner, repo string, cs []checks.Check, agg *facts.Aggregator) error {
	for _, c := range cs {
		ok, err := runner.Run(ctx, repo, c)
		if err != nil {
			return err
		}
		if err := agg.Record(c.Fact, ok); err != nil {
			return err
		}
	}
	return nil
}
