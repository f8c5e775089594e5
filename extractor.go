package readable

// Extractor extracts the main article content from HTML pages.
type Extractor interface {
	// Extract processes raw HTML and returns structured article content
	// with boilerplate (nav, footer, sidebar, ads) removed. pageURL is the
	// document's base URL, used to resolve relative links and images.
	// Returns an ENOTFOUND error when the page yields no extractable
	// content; this is possible even for pages a Classifier approved.
	Extract(html, pageURL string) (*Article, error)
}

// Classifier decides whether a page holds enough structured article content
// to justify full article extraction.
type Classifier interface {
	// IsArticle reports whether the document is article-like. It never
	// fails: malformed or empty input is simply not article-like.
	IsArticle(html string) bool
}
