// Package readability wraps go-readability to classify and extract article
// content from HTML pages.
package readability

import (
	"strings"

	"github.com/fwojciec/readable"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Ensure Classifier implements readable.Classifier at compile time.
var _ readable.Classifier = (*Classifier)(nil)

// Classifier decides whether a document carries enough structured article
// content to justify full extraction.
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// IsArticle reports whether the document is article-like. The decision
// combines go-readability's readerability heuristic with a per-document
// minimum content length of one third of the total body text, so the
// classifier is proportionally stricter for short pages and proportionally
// lenient for long ones. Malformed or empty input is not article-like.
func (c *Classifier) IsArticle(rawHTML string) bool {
	if strings.TrimSpace(rawHTML) == "" {
		return false
	}

	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return false
	}

	total := textLength(findBody(doc))
	if total == 0 {
		return false
	}
	if contentTextLength(doc)*3 < total {
		return false
	}

	return readability.CheckDocument(doc)
}

// findBody returns the body element node, or nil if the tree has none.
func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if body := findBody(child); body != nil {
			return body
		}
	}
	return nil
}

// textLength sums the length of all text nodes under n.
func textLength(n *html.Node) int {
	if n == nil {
		return 0
	}
	if n.Type == html.TextNode {
		return len(strings.TrimSpace(n.Data))
	}
	total := 0
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		total += textLength(child)
	}
	return total
}

// contentTextLength sums the text length of paragraph-like elements.
// Matched subtrees are counted once and not descended into, so a paragraph
// inside an article does not count twice.
func contentTextLength(n *html.Node) int {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "pre", "article":
			return textLength(n)
		}
	}
	total := 0
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		total += contentTextLength(child)
	}
	return total
}
