package readable

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations apply the host rewrite policy before issuing the request,
// so the page actually fetched may live on a mirror of the requested host.
type Fetcher interface {
	// Fetch retrieves the raw HTML at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
