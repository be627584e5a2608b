package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/llmdp/llmdp/internal/facts"
	"github.com/llmdp/llmdp/internal/orchestration"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestPrintFactsSummary(t *testing.T) {
	event := orchestration.ProgressEvent{
		EventType:  orchestration.EventFactsWritten,
		Language:   "node",
		Repo:       "/src/app",
		FactsPath:  "/src/app/.llmdp_facts.json",
		Vocabulary: []string{facts.LintOK, facts.TestsOK, facts.AuditOK},
		Facts:      facts.Facts{facts.LintOK: false, facts.TestsOK: true},
	}

	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)
	renderer.SetColorProfile(termenv.Ascii)
	printFactsSummary(&buf, event, newSummaryStyles(renderer))

	want := strings.Join([]string{
		"",
		"Facts for /src/app (node) -> /src/app/.llmdp_facts.json",
		"Fact      Result",
		strings.Repeat("─", 16),
		"lint_ok   fail",
		"tests_ok  pass",
		"audit_ok  n/a",
		"",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrintFactsSummary_Color(t *testing.T) {
	event := orchestration.ProgressEvent{
		Vocabulary: []string{facts.TestsOK},
		Facts:      facts.Facts{facts.TestsOK: true},
	}

	var buf bytes.Buffer
	renderer := lipgloss.NewRenderer(&buf)
	renderer.SetColorProfile(termenv.ANSI)
	printFactsSummary(&buf, event, newSummaryStyles(renderer))

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "pass")
	assert.NotContains(t, out, "fail")
}

func TestSummaryListener_IgnoresOtherEvents(t *testing.T) {
	var buf bytes.Buffer
	listener := newSummaryListener(&buf)

	listener(orchestration.ProgressEvent{EventType: orchestration.EventCollectStart})
	listener(orchestration.ProgressEvent{EventType: orchestration.EventEvaluated})
	assert.Empty(t, buf.String())
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab  ", padRight("ab", 4))
	assert.Equal(t, "abcdef", padRight("abcdef", 4))
	assert.Equal(t, "日本 ", padRight("日本", 5))
}
