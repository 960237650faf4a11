// Package http provides an HTTP-based implementation of sheetscrape.Fetcher.
package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/sheetscrape"
	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

const (
	// DefaultFetchTimeout is the default timeout for HTTP requests.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultMaxBodySize caps how much of a response body is read.
	DefaultMaxBodySize = int64(10 << 20)

	// DefaultUserAgent identifies the scraper to remote servers.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// Ensure Fetcher implements sheetscrape.Fetcher at compile time.
var _ sheetscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP GET requests.
// It does not execute JavaScript and never retries.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodySize  int64
	requestDelay time.Duration
	limiter      *rate.Limiter
	now          func() time.Time
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Non-positive values keep DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithUserAgent overrides DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBodySize sets the largest response body accepted, in bytes.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxBodySize = n
		}
	}
}

// WithRequestDelay enforces a minimum interval between consecutive requests
// made by this Fetcher. Zero disables the limit.
func WithRequestDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.requestDelay = d
	}
}

// WithNow sets the clock used for Content.FetchedAt.
func WithNow(now func() time.Time) Option {
	return func(f *Fetcher) {
		f.now = now
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}
	if f.requestDelay > 0 {
		f.limiter = rate.NewLimiter(rate.Every(f.requestDelay), 1)
	}

	return f
}

// Fetch retrieves the page at url and decodes it to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*sheetscrape.Content, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, sheetscrape.WrapError(sheetscrape.EFETCH, err, "waiting to fetch %s", url)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, sheetscrape.WrapError(sheetscrape.EFETCH, err, "build request for %s", url)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, sheetscrape.WrapError(sheetscrape.EFETCH, err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, sheetscrape.Errorf(sheetscrape.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, sheetscrape.WrapError(sheetscrape.EFETCH, err, "read body of %s", url)
	}
	if int64(len(body)) > f.maxBodySize {
		return nil, sheetscrape.Errorf(sheetscrape.EFETCH, "body of %s exceeds %d bytes", url, f.maxBodySize)
	}

	html, err := decode(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, sheetscrape.WrapError(sheetscrape.EFETCH, err, "decode body of %s", url)
	}

	return &sheetscrape.Content{
		URL:       url,
		HTML:      html,
		FetchedAt: f.now(),
	}, nil
}

// decode converts body to UTF-8 using the Content-Type header and, failing
// that, any <meta charset> in the first bytes of the document.
func decode(body []byte, contentType string) (string, error) {
	r, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return "", err
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
