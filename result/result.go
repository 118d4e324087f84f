// Package result defines the finding type produced by link verification and
// the writers that render findings for the console and machine consumers.
package result

import (
	"fmt"
	"strconv"
	"time"
)

// Status is the outcome of a single link check: either an HTTP status code
// or an outright request failure (the request never completed).
type Status struct {
	code   int
	failed bool
}

// HTTPStatus returns a Status carrying an HTTP status code.
func HTTPStatus(code int) Status {
	return Status{code: code}
}

// RequestFailed returns the Status for a request that failed before
// producing a response.
func RequestFailed() Status {
	return Status{failed: true}
}

// Code returns the HTTP status code. The second return is false when the
// request failed outright and no code exists.
func (s Status) Code() (int, bool) {
	return s.code, !s.failed
}

// IsFailure reports whether the request failed before completing.
func (s Status) IsFailure() bool {
	return s.failed
}

// OK reports whether the check got an HTTP 200 response.
func (s Status) OK() bool {
	return !s.failed && s.code == 200
}

// String renders the status as it appears in report lines: the numeric code,
// or "ERR" for an outright failure.
func (s Status) String() string {
	if s.failed {
		return "ERR"
	}
	return strconv.Itoa(s.code)
}

// Finding is one reported problem: a link that did not return 200 OK or
// responded too slowly. Findings are immutable once created.
type Finding struct {
	Status  Status        // HTTP status or request failure
	Page    string        // page the link was found on
	Link    string        // absolute URL that was checked
	Elapsed time.Duration // response time of the check
	Timed   bool          // false when the request failed before completing
}

// Line renders the finding in the report format:
// "{status} {page} -> {link}" with a " (1.23s)" suffix when timed.
func (f Finding) Line() string {
	line := fmt.Sprintf("%s %s -> %s", f.Status, f.Page, f.Link)
	if f.Timed {
		line += fmt.Sprintf(" (%.2fs)", f.Elapsed.Seconds())
	}
	return line
}
