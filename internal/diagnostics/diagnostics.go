// Package diagnostics records fallback events: points where a recognizer
// degraded gracefully instead of producing the node its input shape
// suggested it was reaching for. The block scanner records one whenever a
// block-level embedded element is malformed or followed by trailing
// content and falls back to paragraph text; nothing else records events.
// The compiler itself never consults these; they exist for tooling (the
// build CLI command's -diagnostics flag) to report on, the way the
// teacher's playground logs loader/render events with the stdlib log
// package rather than a structured logging framework.
package diagnostics

import (
	"log"

	ulid "github.com/oklog/ulid/v2"
)

// Event is one recorded fallback, tagged with a ULID so a batch of events
// from one Parse call can be correlated even if interleaved with others.
type Event struct {
	ID      ulid.ULID
	Stage   string // "block", "inline", "jsx"
	Reason  string
	Offset  int
}

// Recorder collects Events during a single Parse call.
type Recorder struct {
	id     ulid.ULID
	Events []Event
	Log    bool // when true, each Record also goes to log.Printf
}

// NewRecorder starts a fresh recorder with its own correlation id.
func NewRecorder() *Recorder {
	return &Recorder{id: ulid.Make()}
}

// Record appends a fallback event, optionally echoing it to the standard
// logger.
func (r *Recorder) Record(stage, reason string, offset int) {
	ev := Event{ID: r.id, Stage: stage, Reason: reason, Offset: offset}
	r.Events = append(r.Events, ev)
	if r.Log {
		log.Printf("mdxc[%s]: %s fallback at offset %d: %s", r.id, stage, offset, reason)
	}
}

// Empty reports whether no fallbacks were recorded.
func (r *Recorder) Empty() bool { return len(r.Events) == 0 }
