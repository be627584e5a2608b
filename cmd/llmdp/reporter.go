package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/llmdp/llmdp/internal/orchestration"
	"github.com/mattn/go-runewidth"
)

// summaryStyles colours the result column. The renderer drops the colours
// when the output is not a terminal.
type summaryStyles struct {
	pass lipgloss.Style
	fail lipgloss.Style
	na   lipgloss.Style
}

func newSummaryStyles(r *lipgloss.Renderer) summaryStyles {
	return summaryStyles{
		pass: r.NewStyle().Foreground(lipgloss.Color("2")),
		fail: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		na:   r.NewStyle().Faint(true),
	}
}

// newSummaryListener prints a table of the collected facts once they are on
// disk.
func newSummaryListener(w io.Writer) orchestration.ProgressListener {
	styles := newSummaryStyles(lipgloss.NewRenderer(w))
	return func(event orchestration.ProgressEvent) {
		if event.EventType != orchestration.EventFactsWritten {
			return
		}
		printFactsSummary(w, event, styles)
	}
}

func printFactsSummary(w io.Writer, event orchestration.ProgressEvent, styles summaryStyles) {
	factWidth := runewidth.StringWidth("Fact")
	for _, key := range event.Vocabulary {
		factWidth = max(factWidth, runewidth.StringWidth(key))
	}
	factWidth += 2

	var b strings.Builder
	fmt.Fprintf(&b, "\nFacts for %s (%s) -> %s\n", event.Repo, event.Language, event.FactsPath)
	b.WriteString(padRight("Fact", factWidth) + "Result\n")
	b.WriteString(strings.Repeat("─", factWidth+6) + "\n")
	for _, key := range event.Vocabulary {
		b.WriteString(padRight(key, factWidth) + factResult(event, key, styles) + "\n")
	}
	b.WriteString("\n")

	fmt.Fprint(w, b.String()) //nolint:errcheck
}

func factResult(event orchestration.ProgressEvent, key string, styles summaryStyles) string {
	ok, present := event.Facts[key]
	switch {
	case !present:
		return styles.na.Render("n/a")
	case ok:
		return styles.pass.Render("pass")
	default:
		return styles.fail.Render("fail")
	}
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
