// Package opengraph wraps go-opengraph to scrape social metadata tags from
// HTML pages, with a goquery fallback for pages that declare no Open Graph
// tags.
package opengraph

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dyatlov/go-opengraph/opengraph"
	"github.com/fwojciec/readable"
)

// DefaultParseTimeout bounds tag parsing so a malformed document cannot
// hang a scrape indefinitely.
const DefaultParseTimeout = 10 * time.Second

// Ensure Scraper implements readable.MetadataScraper at compile time.
var _ readable.MetadataScraper = (*Scraper)(nil)

// Scraper extracts Open Graph metadata from raw HTML.
type Scraper struct {
	timeout time.Duration
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithTimeout sets the parse timeout.
// Defaults to DefaultParseTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		s.timeout = d
	}
}

// NewScraper creates a new Scraper.
func NewScraper(opts ...Option) *Scraper {
	s := &Scraper{
		timeout: DefaultParseTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scrape parses social metadata tags from the HTML. Title and description
// fall back to the <title> element and the meta description when the page
// declares no Open Graph tags. The published time is kept as the raw string
// declared by the page. Parse failures and timeouts propagate to the caller.
func (s *Scraper) Scrape(ctx context.Context, rawHTML string) (*readable.Metadata, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := ctx.Err(); err != nil {
		return nil, ctxError(err)
	}

	type outcome struct {
		meta *readable.Metadata
		err  error
	}
	ch := make(chan outcome, 1)
	go func() {
		meta, err := parseTags(rawHTML)
		ch <- outcome{meta: meta, err: err}
	}()

	select {
	case o := <-ch:
		return o.meta, o.err
	case <-ctx.Done():
		return nil, ctxError(ctx.Err())
	}
}

// ctxError maps a context error to an application error: deadline expiry
// means the parse timed out, cancellation was the caller's decision.
func ctxError(err error) error {
	if errors.Is(err, context.Canceled) {
		return readable.Errorf(readable.EINTERNAL, "metadata parse canceled: %v", err)
	}
	return readable.Errorf(readable.ETIMEOUT, "metadata parse timed out: %v", err)
}

func parseTags(rawHTML string) (*readable.Metadata, error) {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(rawHTML)); err != nil {
		return nil, readable.Errorf(readable.EINTERNAL, "parse Open Graph tags: %v", err)
	}

	meta := &readable.Metadata{
		Title:       og.Title,
		Description: og.Description,
	}
	if len(og.Images) > 0 {
		meta.ImageURL = og.Images[0].URL
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// Open Graph parsing already succeeded; serve what it found.
		return meta, nil
	}
	if meta.Title == "" {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	}
	if meta.Description == "" {
		if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
			meta.Description = strings.TrimSpace(desc)
		}
	}
	if date, ok := doc.Find(`meta[property="article:published_time"]`).First().Attr("content"); ok {
		meta.Date = strings.TrimSpace(date)
	}

	return meta, nil
}
