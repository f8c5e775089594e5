// Package http provides an HTTP-based implementation of readable.Fetcher.
// Requests are routed through the host rewrite policy, which may swap the
// host for an extraction-friendly mirror and disable automatic redirects.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/readable"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements readable.Fetcher at compile time.
var _ readable.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw HTML from URLs using HTTP requests. Every request
// carries the fixed bot user agent from the fetch plan; redirect handling
// follows the plan's policy.
type Fetcher struct {
	timeout time.Duration
	limiter *rate.Limiter
	follow  *http.Client
	manual  *http.Client
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRateLimit bounds outgoing requests to rps requests per second with no
// bursting. Unset means no rate limiting.
func WithRateLimit(rps float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.follow = &http.Client{Timeout: f.timeout}
	f.manual = &http.Client{
		Timeout: f.timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return f
}

// Fetch retrieves the HTML content for the given URL after applying the
// host rewrite policy.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	plan, err := readable.RewriteForFetch(url)
	if err != nil {
		return "", err
	}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, plan.URL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", plan.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	client := f.follow
	if plan.Redirects == readable.ManualRedirects {
		client = f.manual
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, plan.URL)
	}

	if ct := resp.Header.Get("Content-Type"); ct != "" &&
		!strings.Contains(ct, "text/html") && !strings.Contains(ct, "application/xhtml") {
		return "", readable.Errorf(readable.EINVALID, "unsupported content type %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}
