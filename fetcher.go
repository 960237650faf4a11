package sheetscrape

import (
	"context"
	"time"
)

// Content is a fully read page, decoded to UTF-8.
type Content struct {
	URL       string
	HTML      string
	FetchedAt time.Time
}

// Fetcher retrieves page content for a URL.
type Fetcher interface {
	// Fetch issues a single request for url. Any transport failure or
	// non-2xx status is returned as an EFETCH error; content is never
	// partial. The context controls cancellation.
	Fetch(ctx context.Context, url string) (*Content, error)
}
