package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/sheetscrape"
)

// Ensure LoggingExporter implements sheetscrape.Exporter.
var _ sheetscrape.Exporter = (*LoggingExporter)(nil)

// LoggingExporter wraps an Exporter and logs the destination or failure.
type LoggingExporter struct {
	next   sheetscrape.Exporter
	logger *slog.Logger
}

// NewLoggingExporter creates a new LoggingExporter.
func NewLoggingExporter(next sheetscrape.Exporter, logger *slog.Logger) *LoggingExporter {
	return &LoggingExporter{next: next, logger: logger}
}

// Export delegates to the wrapped exporter and logs the result.
func (e *LoggingExporter) Export(ctx context.Context, path string, fragments []sheetscrape.Fragment, meta sheetscrape.RunMetadata) (err error) {
	defer func(begin time.Time) {
		if err != nil {
			e.logger.Error("export failed",
				"path", path,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		e.logger.Info("export",
			"path", path,
			"rows", len(fragments),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Export(ctx, path, fragments, meta)
}
