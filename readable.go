// Package readable extracts a readable, canonical representation of a web
// page's primary content from raw HTML. Pages with enough structured
// article content go through full readability extraction; everything else
// falls back to a minimal markdown document synthesized from the page's
// Open Graph tags. Extracted content can optionally be converted to
// markdown.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., readability/, opengraph/,
// htmltomarkdown/).
package readable
