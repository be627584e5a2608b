package orchestration

import "github.com/llmdp/llmdp/internal/facts"

// ProgressListener receives progress updates.
type ProgressListener func(event ProgressEvent)

// EventType represents the type of progress event.
type EventType string

const (
	EventCollectStart EventType = "collect_start"
	EventFactsWritten EventType = "facts_written"
	EventEvaluated    EventType = "evaluated"
)

// ProgressEvent represents a progress update. Facts and Vocabulary are only
// set on EventFactsWritten; Status only on EventEvaluated.
type ProgressEvent struct {
	EventType  EventType
	RunID      string
	Language   string
	Repo       string
	Facts      facts.Facts
	Vocabulary []string
	FactsPath  string
	Status     int
	DurationMs int64
}
