package sheetscrape

import (
	"context"
	"time"
)

// DefaultOutputPath is where exports are written unless configured.
const DefaultOutputPath = "scraped_data.xlsx"

// RunMetadata describes the run that produced an export.
type RunMetadata struct {
	Timestamp time.Time
	SourceURL string
}

// Exporter persists fragments as a tabular document.
type Exporter interface {
	// Export writes fragments and metadata to path. The write is atomic:
	// on error, path is left as it was and an EEXPORT error is returned.
	// An empty fragments slice is valid.
	Export(ctx context.Context, path string, fragments []Fragment, meta RunMetadata) error
}
