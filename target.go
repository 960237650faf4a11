package sheetscrape

import "net/url"

// DefaultSelector is used when no selector is given.
const DefaultSelector = ".data-item"

// Target identifies what a single run scrapes.
type Target struct {
	URL      string
	Selector string
}

// Validate returns an error if the target cannot be scraped.
func (t Target) Validate() error {
	if t.URL == "" {
		return Errorf(EINVALID, "target URL required")
	}
	u, err := url.Parse(t.URL)
	if err != nil {
		return WrapError(EINVALID, err, "malformed target URL %q", t.URL)
	}
	if !u.IsAbs() || u.Host == "" {
		return Errorf(EINVALID, "target URL %q must be absolute", t.URL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "unsupported URL scheme %q", u.Scheme)
	}
	if t.Selector == "" {
		return Errorf(EINVALID, "target selector required")
	}
	return nil
}
