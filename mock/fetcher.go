package mock

import (
	"context"

	"github.com/fwojciec/sheetscrape"
)

var _ sheetscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of sheetscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*sheetscrape.Content, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*sheetscrape.Content, error) {
	return f.FetchFn(ctx, url)
}
