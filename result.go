package readable

// Mode selects which output normalization pass runs on a scrape result.
type Mode int

const (
	// ModeText cleans whitespace in the extracted content and text.
	ModeText Mode = iota

	// ModeMarkdown converts the extracted article HTML to markdown.
	ModeMarkdown
)

// Result is the outcome of a scrape: either an *Article or a *Fallback.
// Exactly one variant is produced per call; "nothing extractable" is a nil
// Result, never a partial one.
type Result interface {
	// Text returns the plain-text companion of the result.
	Text() string

	result()
}

// Article is the result of full readability extraction. All metadata
// fields are optional; an empty string means the page did not declare the
// value.
type Article struct {
	Title    string
	Byline   string
	Excerpt  string
	SiteName string
	Lang     string

	// Content holds the extracted main content. It is an HTML fragment
	// unless the scrape ran in ModeMarkdown, in which case it is markdown.
	Content string

	// TextContent is the plain text of the extracted content.
	TextContent string
}

// Text returns the plain text of the extracted content.
func (a *Article) Text() string { return a.TextContent }

func (a *Article) result() {}

// Fallback is the result of Open Graph fallback extraction for pages that
// are not article-like. Markdown is final as synthesized; it does not go
// through output normalization.
type Fallback struct {
	// Markdown is the synthesized markdown document.
	Markdown string

	// TextContent is the raw body text of the page, unprocessed.
	TextContent string
}

// Text returns the raw body text of the page.
func (f *Fallback) Text() string { return f.TextContent }

func (f *Fallback) result() {}
