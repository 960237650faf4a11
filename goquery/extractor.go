// Package goquery implements sheetscrape.Extractor on top of goquery and
// the cascadia CSS selector engine.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/sheetscrape"
)

// Ensure Extractor implements sheetscrape.Extractor at compile time.
var _ sheetscrape.Extractor = (*Extractor)(nil)

// DefaultMinLength is the shortest fragment kept, in characters.
const DefaultMinLength = 1

// Extractor selects element text with CSS selectors.
// It is stateless and safe for concurrent use.
type Extractor struct {
	minLength int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinLength drops fragments shorter than n characters after trimming.
// Values below DefaultMinLength keep the default.
func WithMinLength(n int) Option {
	return func(e *Extractor) {
		if n > DefaultMinLength {
			e.minLength = n
		}
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{minLength: DefaultMinLength}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the trimmed text of every element matching selector, in
// document order, skipping elements whose text is empty or shorter than
// the minimum length.
func (e *Extractor) Extract(content *sheetscrape.Content, selector string) []sheetscrape.Fragment {
	if content == nil {
		return nil
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		return nil
	}

	var fragments []sheetscrape.Fragment
	doc.FindMatcher(matcher).Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if text == "" || utf8.RuneCountInString(text) < e.minLength {
			return
		}
		fragments = append(fragments, sheetscrape.Fragment(text))
	})
	return fragments
}

// ValidSelector reports whether selector compiles.
func ValidSelector(selector string) bool {
	_, err := cascadia.Compile(selector)
	return err == nil
}
