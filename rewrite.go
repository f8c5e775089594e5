package readable

import (
	"net/url"
	"strings"
)

// UserAgent identifies the scraper to origin servers. Some sites serve
// script-heavy, non-extractable markup to browser user agents.
const UserAgent = "Mozilla/5.0 (compatible; ReadableBot/1.0; +https://github.com/fwojciec/readable)"

// RedirectPolicy controls how a fetcher handles HTTP redirect responses.
type RedirectPolicy int

const (
	// FollowRedirects follows redirect responses automatically.
	FollowRedirects RedirectPolicy = iota

	// ManualRedirects returns redirect responses to the caller without
	// following them. Rewritten hosts may redirect in ways that would
	// silently undo the rewrite.
	ManualRedirects
)

// FetchPlan describes how a URL should be fetched.
type FetchPlan struct {
	URL       string
	Redirects RedirectPolicy
	UserAgent string
}

// rewriteRule maps a host family to an extraction-friendly mirror host.
// Apex domains match with or without a subdomain.
type rewriteRule struct {
	hosts     []string
	mirror    string
	redirects RedirectPolicy
}

// rewriteRules is evaluated top to bottom; the first match wins. The table
// is read-only and safe for unsynchronized concurrent reads.
var rewriteRules = []rewriteRule{
	{
		hosts:     []string{"twitter.com", "x.com"},
		mirror:    "nitter.net",
		redirects: ManualRedirects,
	},
	{
		hosts:     []string{"reddit.com", "redd.it"},
		mirror:    "old.reddit.com",
		redirects: ManualRedirects,
	},
}

func (r rewriteRule) matches(host string) bool {
	for _, h := range r.hosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// RewriteForFetch maps known hosts to extraction-friendly mirrors and
// decides the redirect policy for the request. URLs with no matching host
// pass through unchanged with automatic redirects. All plans carry the
// fixed bot user agent. The function is pure and performs no I/O.
func RewriteForFetch(rawURL string) (FetchPlan, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Hostname() == "" {
		return FetchPlan{}, Errorf(EINVALID, "invalid URL %q", rawURL)
	}

	host := strings.ToLower(u.Hostname())
	for _, rule := range rewriteRules {
		if rule.matches(host) {
			u.Host = rule.mirror
			return FetchPlan{
				URL:       u.String(),
				Redirects: rule.redirects,
				UserAgent: UserAgent,
			}, nil
		}
	}

	return FetchPlan{
		URL:       rawURL,
		Redirects: FollowRedirects,
		UserAgent: UserAgent,
	}, nil
}
