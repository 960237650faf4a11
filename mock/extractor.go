package mock

import "github.com/fwojciec/sheetscrape"

var _ sheetscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of sheetscrape.Extractor.
type Extractor struct {
	ExtractFn func(content *sheetscrape.Content, selector string) []sheetscrape.Fragment
}

func (e *Extractor) Extract(content *sheetscrape.Content, selector string) []sheetscrape.Fragment {
	return e.ExtractFn(content, selector)
}
