package mock

import (
	"context"

	"github.com/fwojciec/sheetscrape"
)

var _ sheetscrape.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of sheetscrape.Exporter.
type Exporter struct {
	ExportFn func(ctx context.Context, path string, fragments []sheetscrape.Fragment, meta sheetscrape.RunMetadata) error
}

func (e *Exporter) Export(ctx context.Context, path string, fragments []sheetscrape.Fragment, meta sheetscrape.RunMetadata) error {
	return e.ExportFn(ctx, path, fragments, meta)
}
