package readable

// TextExtractor derives the plain body text of an HTML document.
type TextExtractor interface {
	// BodyText returns the text content of the document body with markup
	// stripped. The text is returned as parsed, without whitespace
	// normalization.
	BodyText(html string) (string, error)
}
