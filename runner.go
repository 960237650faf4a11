package sheetscrape

import (
	"context"
	"fmt"
)

// Status is the terminal state of a run.
type Status string

// Status constants for Outcome.
const (
	StatusDone          Status = "done"
	StatusSkippedExport Status = "skipped_export"
	StatusFetchFailed   Status = "fetch_failed"
)

// Outcome reports how a run ended.
type Outcome struct {
	RunID  string
	Status Status

	// Count is the number of fragments extracted. Set for StatusDone.
	Count int

	// Err is the fetch failure. Set for StatusFetchFailed.
	Err error

	// ExportErr records a failed export on an otherwise completed run.
	ExportErr error
}

// String returns a short human readable summary.
func (o *Outcome) String() string {
	switch o.Status {
	case StatusDone:
		return fmt.Sprintf("done (%d items)", o.Count)
	case StatusSkippedExport:
		return "skipped export (no items)"
	case StatusFetchFailed:
		return fmt.Sprintf("fetch failed: %v", o.Err)
	}
	return string(o.Status)
}

// Runner executes one complete fetch, extract, export run.
type Runner interface {
	Run(ctx context.Context, target Target) *Outcome
}
