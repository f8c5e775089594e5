package mock

import (
	"context"

	"github.com/fwojciec/readable"
)

var _ readable.MetadataScraper = (*MetadataScraper)(nil)

// MetadataScraper is a mock implementation of readable.MetadataScraper.
type MetadataScraper struct {
	ScrapeFn func(ctx context.Context, html string) (*readable.Metadata, error)
}

func (m *MetadataScraper) Scrape(ctx context.Context, html string) (*readable.Metadata, error) {
	return m.ScrapeFn(ctx, html)
}
