package checker

import "github.com/lukemcguire/sitecheck/result"

// EventKind discriminates Event payloads.
type EventKind int

const (
	// EventFinding reports a finding the moment it is produced.
	EventFinding EventKind = iota
	// EventDiagnostic carries a free-form diagnostic line.
	EventDiagnostic
	// EventPageChecked reports per-page progress from the collector.
	EventPageChecked
)

// Event is one notification from the verification pipeline. Events flow
// through a single channel to exactly one consumer (the plain printer or
// the TUI), which keeps diagnostic output serialized across workers.
type Event struct {
	Kind     EventKind
	Finding  result.Finding // valid for EventFinding
	Message  string         // valid for EventDiagnostic
	Page     string         // page involved
	Checked  int            // pages completed so far (EventPageChecked)
	Total    int            // pages in this run (EventPageChecked)
	Findings int            // findings so far (EventPageChecked)
}
