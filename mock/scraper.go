package mock

import (
	"context"

	"github.com/fwojciec/readable"
)

var _ readable.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of readable.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, url string, mode readable.Mode) (readable.Result, error)
}

func (s *Scraper) Scrape(ctx context.Context, url string, mode readable.Mode) (readable.Result, error) {
	return s.ScrapeFn(ctx, url, mode)
}
