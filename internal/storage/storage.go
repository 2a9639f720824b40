package storage

import "time"

// Event represents a single prompt/response interaction.
// Events are appended in chronological order and never rewritten or deleted
// by this tool; the history file only ever grows.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	User      string    `json:"user"`
	Model     string    `json:"model"`
	Prompt    string    `json:"prompt"`
	Response  string    `json:"response"`
}

// Recorder abstracts persistence of interaction events.
// AppendInteraction must append atomically at line granularity so that
// concurrent invocations never interleave within a record.
// LoadInteractions should return events in chronological order.
type Recorder interface {
	AppendInteraction(event Event) error
	LoadInteractions() ([]Event, error)
}
