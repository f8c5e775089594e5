package mock

import "github.com/fwojciec/readable"

var _ readable.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of readable.TextExtractor.
type TextExtractor struct {
	BodyTextFn func(html string) (string, error)
}

func (t *TextExtractor) BodyText(html string) (string, error) {
	return t.BodyTextFn(html)
}
