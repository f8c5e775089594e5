package readable

import "regexp"

var (
	// spaceRun matches runs of horizontal whitespace, zero-width characters
	// and BOMs. Newlines are handled separately so line structure survives.
	spaceRun = regexp.MustCompile("[ \t\v\f\r\u00a0\u200b\u200c\u200d\ufeff]+")

	// lineLead matches spaces at the start of a line, after spaceRun has
	// collapsed every other kind of horizontal whitespace to a space.
	lineLead = regexp.MustCompile(`(?m)^ +`)

	// newlineRun matches runs of blank lines.
	newlineRun = regexp.MustCompile(`\n{2,}`)
)

// CleanString normalizes whitespace for display: runs of horizontal
// whitespace, zero-width characters and BOMs collapse to a single space,
// leading whitespace is stripped from every line, and runs of newlines
// collapse to one. The transform is deterministic and idempotent.
func CleanString(s string) string {
	s = spaceRun.ReplaceAllString(s, " ")
	s = lineLead.ReplaceAllString(s, "")
	s = newlineRun.ReplaceAllString(s, "\n")
	return s
}
