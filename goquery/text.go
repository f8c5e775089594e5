// Package goquery provides goquery-based helpers for deriving plain text
// from HTML documents.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readable"
)

// Ensure TextExtractor implements readable.TextExtractor at compile time.
var _ readable.TextExtractor = (*TextExtractor)(nil)

// TextExtractor derives plain body text from HTML using goquery.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// BodyText returns the text content of the document body with markup
// stripped. The text is returned as parsed, without whitespace
// normalization.
func (t *TextExtractor) BodyText(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", readable.Errorf(readable.EINVALID, "parse HTML: %v", err)
	}
	return doc.Find("body").Text(), nil
}
