// Package scrape orchestrates the extraction pipeline: fetch, classify,
// extract or fall back, normalize.
package scrape

import (
	"context"

	"github.com/fwojciec/readable"
)

// Ensure Pipeline implements readable.Scraper at compile time.
var _ readable.Scraper = (*Pipeline)(nil)

// Pipeline implements readable.Scraper by wiring the pipeline stages
// together. Each call is independent and holds no cross-call state, so a
// Pipeline is safe for concurrent use when its collaborators are.
type Pipeline struct {
	Fetcher    readable.Fetcher
	Classifier readable.Classifier
	Extractor  readable.Extractor
	Metadata   readable.MetadataScraper
	Text       readable.TextExtractor
	Converter  readable.Converter
}

// Scrape fetches the URL and extracts its primary content. Pages the
// classifier judges article-like go through full readability extraction;
// everything else falls back to Open Graph metadata. A nil result with a
// nil error means the page yielded no extractable content. There are no
// retries; a failed fetch or extraction is terminal for the call.
func (p *Pipeline) Scrape(ctx context.Context, url string, mode readable.Mode) (readable.Result, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if !p.Classifier.IsArticle(html) {
		return p.fallback(ctx, html)
	}

	article, err := p.Extractor.Extract(html, url)
	if err != nil {
		// The classifier is a cheap pre-filter, not a guarantee; the
		// engine finding nothing is an expected outcome, not an error.
		if readable.ErrorCode(err) == readable.ENOTFOUND {
			return nil, nil
		}
		return nil, err
	}

	return p.normalize(article, mode)
}

// fallback synthesizes a markdown document from the page's social metadata.
// The markdown is final as synthesized and bypasses output normalization;
// the plain-text companion is the raw body text, unprocessed.
func (p *Pipeline) fallback(ctx context.Context, html string) (readable.Result, error) {
	meta, err := p.Metadata.Scrape(ctx, html)
	if err != nil {
		return nil, err
	}

	text, err := p.Text.BodyText(html)
	if err != nil {
		return nil, err
	}

	return &readable.Fallback{
		Markdown:    readable.FormatMetadata(meta),
		TextContent: text,
	}, nil
}

// normalize applies the requested output pass to an article result. The
// passes are mutually exclusive: markdown conversion replaces the content
// HTML and leaves the plain text untouched, while text mode cleans
// whitespace in both fields.
func (p *Pipeline) normalize(article *readable.Article, mode readable.Mode) (readable.Result, error) {
	switch mode {
	case readable.ModeMarkdown:
		markdown, err := p.Converter.Convert(article.Content)
		if err != nil {
			return nil, err
		}
		article.Content = markdown
	default:
		article.Content = readable.CleanString(article.Content)
		article.TextContent = readable.CleanString(article.TextContent)
	}
	return article, nil
}
