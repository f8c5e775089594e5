package readable

import (
	"context"
	"strings"

	"github.com/araddon/dateparse"
)

// Metadata holds social-metadata tags scraped from a page. Every field is
// optional; an empty string means the tag was absent.
type Metadata struct {
	Title       string
	Description string

	// Date is the raw published-time value as declared by the page,
	// typically an ISO-8601 timestamp. It is parsed only at render time.
	Date string

	// ImageURL is the first declared preview image.
	ImageURL string
}

// MetadataScraper extracts social metadata tags from raw HTML.
type MetadataScraper interface {
	// Scrape parses metadata tags from the HTML. Parsing is bounded by an
	// implementation-fixed timeout; on timeout or parse failure the error
	// propagates to the caller.
	Scrape(ctx context.Context, html string) (*Metadata, error)
}

// FormatMetadata renders metadata as a minimal markdown document in a fixed
// field order: title heading, italicized date, thumbnail image, description.
// Absent fields are omitted entirely; consecutive populated fields are
// separated by a single blank line.
func FormatMetadata(m *Metadata) string {
	if m == nil {
		return ""
	}

	var parts []string
	if m.Title != "" {
		parts = append(parts, "# "+m.Title)
	}
	if date := formatDate(m.Date); date != "" {
		parts = append(parts, "*"+date+"*")
	}
	if m.ImageURL != "" {
		parts = append(parts, "![Thumbnail]("+m.ImageURL+")")
	}
	if m.Description != "" {
		parts = append(parts, m.Description)
	}

	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n\n"
}

// formatDate renders a raw date value as "January 2, 2006". The value is
// formatted in UTC so output does not depend on the server timezone.
// Unparseable values render as empty so they are omitted from the output.
func formatDate(raw string) string {
	if raw == "" {
		return ""
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		return ""
	}
	return t.UTC().Format("January 2, 2006")
}
