// Package scrape orchestrates a single fetch, extract, export run and the
// retry policy that may wrap it.
package scrape

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/sheetscrape"
	"github.com/google/uuid"
)

// State is a step of the run state machine.
type State string

// Run states. FetchFailed, SkippedExport and Done are terminal.
const (
	StateIdle          State = "idle"
	StateFetching      State = "fetching"
	StateFetchFailed   State = "fetch_failed"
	StateExtracting    State = "extracting"
	StateSkippedExport State = "skipped_export"
	StateExporting     State = "exporting"
	StateDone          State = "done"
)

// Ensure Pipeline implements sheetscrape.Runner at compile time.
var _ sheetscrape.Runner = (*Pipeline)(nil)

// Pipeline runs fetch, extract and export for one target at a time.
// It holds no per-run state, so one Pipeline may serve concurrent runs as
// long as they do not share an OutputPath.
type Pipeline struct {
	Fetcher   sheetscrape.Fetcher
	Extractor sheetscrape.Extractor
	Exporter  sheetscrape.Exporter
	Logger    *slog.Logger

	// OutputPath is the export destination. Defaults to
	// sheetscrape.DefaultOutputPath.
	OutputPath string

	// Now stamps the export metadata. Defaults to time.Now.
	Now func() time.Time

	// NewRunID names each run in logs and outcomes. Defaults to a random UUID.
	NewRunID func() string
}

// Run executes one run for target and reports how it ended.
func (p *Pipeline) Run(ctx context.Context, target sheetscrape.Target) *sheetscrape.Outcome {
	outcome := &sheetscrape.Outcome{RunID: p.newRunID()}
	logger := p.logger().With("run", outcome.RunID)

	logger.Info("starting web scraping process", "url", target.URL, "selector", target.Selector)
	transition(logger, StateIdle, StateFetching)

	if err := target.Validate(); err != nil {
		transition(logger, StateFetching, StateFetchFailed)
		logger.Error("invalid target", "err", err)
		outcome.Status = sheetscrape.StatusFetchFailed
		outcome.Err = err
		return outcome
	}

	content, err := p.Fetcher.Fetch(ctx, target.URL)
	if err != nil {
		transition(logger, StateFetching, StateFetchFailed)
		logger.Error("failed to fetch webpage", "url", target.URL, "err", err)
		outcome.Status = sheetscrape.StatusFetchFailed
		outcome.Err = err
		return outcome
	}

	transition(logger, StateFetching, StateExtracting)
	fragments := p.Extractor.Extract(content, target.Selector)
	if len(fragments) == 0 {
		transition(logger, StateExtracting, StateSkippedExport)
		logger.Warn("no data extracted, check the selector", "selector", target.Selector)
		outcome.Status = sheetscrape.StatusSkippedExport
		return outcome
	}

	transition(logger, StateExtracting, StateExporting)
	outcome.Status = sheetscrape.StatusDone
	outcome.Count = len(fragments)

	meta := sheetscrape.RunMetadata{
		Timestamp: p.now(),
		SourceURL: target.URL,
	}
	if err := p.Exporter.Export(ctx, p.outputPath(), fragments, meta); err != nil {
		// Export is best effort: the run still completed.
		logger.Error("error exporting results", "path", p.outputPath(), "err", err)
		outcome.ExportErr = err
	}

	transition(logger, StateExporting, StateDone)
	logger.Info("scraping completed", "count", outcome.Count)
	return outcome
}

func transition(logger *slog.Logger, from, to State) {
	logger.Debug("state transition", "from", from, "to", to)
}

func (p *Pipeline) outputPath() string {
	if p.OutputPath == "" {
		return sheetscrape.DefaultOutputPath
	}
	return p.OutputPath
}

func (p *Pipeline) now() time.Time {
	if p.Now == nil {
		return time.Now()
	}
	return p.Now()
}

func (p *Pipeline) newRunID() string {
	if p.NewRunID == nil {
		return uuid.NewString()
	}
	return p.NewRunID()
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}
