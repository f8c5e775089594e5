package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/readable"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements readable.Extractor at compile time.
var _ readable.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract runs the readability engine over the document. pageURL seeds the
// engine's base URL so relative links and images resolve against it.
func (e *Extractor) Extract(rawHTML, pageURL string) (*readable.Article, error) {
	if rawHTML == "" {
		return nil, readable.Errorf(readable.EINVALID, "empty HTML input")
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, readable.Errorf(readable.EINVALID, "invalid page URL %q", pageURL)
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), base)
	if err != nil {
		return nil, readable.Errorf(readable.ENOTFOUND, "no extractable content: %v", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return nil, readable.Errorf(readable.ENOTFOUND, "no extractable content")
	}

	return &readable.Article{
		Title:       article.Title,
		Byline:      article.Byline,
		Excerpt:     article.Excerpt,
		SiteName:    article.SiteName,
		Lang:        article.Language,
		Content:     article.Content,
		TextContent: article.TextContent,
	}, nil
}
