package result

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// findingRecord is the machine-readable form of a Finding.
// response_time is omitted when the request failed before completing.
type findingRecord struct {
	Status       string   `json:"status"`
	Page         string   `json:"page"`
	Link         string   `json:"link"`
	ResponseTime *float64 `json:"response_time,omitempty"`
}

func toRecord(f Finding) findingRecord {
	rec := findingRecord{
		Status: f.Status.String(),
		Page:   f.Page,
		Link:   f.Link,
	}
	if f.Timed {
		secs := f.Elapsed.Seconds()
		rec.ResponseTime = &secs
	}
	return rec
}

// WriteJSON writes the findings as a formatted JSON array to the writer.
// Uses flat array format (not wrapped with metadata) for simpler CI integration.
func WriteJSON(w io.Writer, findings []Finding) error {
	records := make([]findingRecord, 0, len(findings))
	for _, f := range findings {
		records = append(records, toRecord(f))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write json output: %w", err)
	}
	return nil
}

// WriteCSV writes the findings as CSV to the writer.
// Always includes a header row, even when there are no findings.
// Column order: status, page, link, response_time
func WriteCSV(w io.Writer, findings []Finding) error {
	cw := csv.NewWriter(w)

	header := []string{"status", "page", "link", "response_time"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, f := range findings {
		elapsed := ""
		if f.Timed {
			elapsed = strconv.FormatFloat(f.Elapsed.Seconds(), 'f', 2, 64)
		}
		record := []string{f.Status.String(), f.Page, f.Link, elapsed}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv record for %s: %w", f.Link, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv output: %w", err)
	}
	return nil
}
