package mock

import "github.com/fwojciec/readable"

var _ readable.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readable.Extractor.
type Extractor struct {
	ExtractFn func(html, pageURL string) (*readable.Article, error)
}

func (e *Extractor) Extract(html, pageURL string) (*readable.Article, error) {
	return e.ExtractFn(html, pageURL)
}

var _ readable.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of readable.Classifier.
type Classifier struct {
	IsArticleFn func(html string) bool
}

func (c *Classifier) IsArticle(html string) bool {
	return c.IsArticleFn(html)
}
