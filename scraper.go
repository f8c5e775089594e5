package readable

import "context"

// Scraper extracts readable content from a URL.
type Scraper interface {
	// Scrape fetches the URL and extracts its primary content. The mode
	// selects the output normalization applied to article results.
	// A nil Result with a nil error means the page yielded no extractable
	// content; this is an expected outcome, not an error.
	Scrape(ctx context.Context, url string, mode Mode) (Result, error)
}
