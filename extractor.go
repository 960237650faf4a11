package sheetscrape

// Fragment is the trimmed, non-empty text of one matched element.
type Fragment string

// Extractor selects text fragments from page content.
type Extractor interface {
	// Extract returns the text of every element matching selector, in
	// document order. Empty texts are skipped. A selector that matches
	// nothing or cannot be compiled yields an empty result.
	Extract(content *Content, selector string) []Fragment
}
