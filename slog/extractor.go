package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/sheetscrape"
)

// Ensure LoggingExtractor implements sheetscrape.Extractor.
var _ sheetscrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs how many items it found.
type LoggingExtractor struct {
	next   sheetscrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sheetscrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the item count.
func (e *LoggingExtractor) Extract(content *sheetscrape.Content, selector string) (fragments []sheetscrape.Fragment) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"selector", selector,
			"count", len(fragments),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(content, selector)
}
