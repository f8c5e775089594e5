package scrape_test

import (
	"context"
	"strings"
	"testing"

	"github.com/fwojciec/readable"
	"github.com/fwojciec/readable/mock"
	"github.com/fwojciec/readable/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Compile-time verification that Pipeline implements readable.Scraper.
var _ readable.Scraper = (*scrape.Pipeline)(nil)

func articlePipeline(article *readable.Article) *scrape.Pipeline {
	return &scrape.Pipeline{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><article><p>long form content</p></article></body></html>", nil
			},
		},
		Classifier: &mock.Classifier{
			IsArticleFn: func(html string) bool { return true },
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html, pageURL string) (*readable.Article, error) {
				return article, nil
			},
		},
	}
}

func TestPipeline_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("article page in text mode returns cleaned article", func(t *testing.T) {
		t.Parallel()

		p := articlePipeline(&readable.Article{
			Title:       "Post",
			Content:     "<p>some   extracted\n\n\ncontent</p>",
			TextContent: "some   extracted\n\n\ncontent",
		})

		result, err := p.Scrape(context.Background(), "https://example.com/post", readable.ModeText)

		require.NoError(t, err)
		article, ok := result.(*readable.Article)
		require.True(t, ok)
		assert.Equal(t, "<p>some extracted\ncontent</p>", article.Content)
		assert.Equal(t, "some extracted\ncontent", article.TextContent)
	})

	t.Run("article page in markdown mode converts content and keeps text", func(t *testing.T) {
		t.Parallel()

		p := articlePipeline(&readable.Article{
			Content:     "<h1>Title</h1><p>body</p>",
			TextContent: "Title\n\n\nbody",
		})
		p.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				assert.Equal(t, "<h1>Title</h1><p>body</p>", html)
				return "# Title\n\nbody", nil
			},
		}

		result, err := p.Scrape(context.Background(), "https://example.com/post", readable.ModeMarkdown)

		require.NoError(t, err)
		article, ok := result.(*readable.Article)
		require.True(t, ok)
		assert.Equal(t, "# Title\n\nbody", article.Content)
		// Plain text passes through unchanged in markdown mode.
		assert.Equal(t, "Title\n\n\nbody", article.TextContent)
	})

	t.Run("non-article page falls back to social metadata", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html><body>landing page</body></html>", nil
				},
			},
			Classifier: &mock.Classifier{
				IsArticleFn: func(html string) bool { return false },
			},
			Metadata: &mock.MetadataScraper{
				ScrapeFn: func(ctx context.Context, html string) (*readable.Metadata, error) {
					return &readable.Metadata{Title: "Foo", Description: "Bar"}, nil
				},
			},
			Text: &mock.TextExtractor{
				BodyTextFn: func(html string) (string, error) {
					return "landing page", nil
				},
			},
		}

		result, err := p.Scrape(context.Background(), "https://example.com/", readable.ModeText)

		require.NoError(t, err)
		fallback, ok := result.(*readable.Fallback)
		require.True(t, ok)
		assert.Equal(t, "# Foo\n\nBar\n\n", fallback.Markdown)
		assert.Equal(t, "landing page", fallback.TextContent)
	})

	t.Run("fallback output bypasses whitespace cleanup", func(t *testing.T) {
		t.Parallel()

		rawText := "raw   body\n\n\n\ttext"
		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html></html>", nil
				},
			},
			Classifier: &mock.Classifier{
				IsArticleFn: func(html string) bool { return false },
			},
			Metadata: &mock.MetadataScraper{
				ScrapeFn: func(ctx context.Context, html string) (*readable.Metadata, error) {
					return &readable.Metadata{}, nil
				},
			},
			Text: &mock.TextExtractor{
				BodyTextFn: func(html string) (string, error) {
					return rawText, nil
				},
			},
		}

		result, err := p.Scrape(context.Background(), "https://example.com/", readable.ModeText)

		require.NoError(t, err)
		fallback, ok := result.(*readable.Fallback)
		require.True(t, ok)
		assert.Equal(t, rawText, fallback.TextContent)
	})

	t.Run("returns nil result when the extraction engine finds nothing", func(t *testing.T) {
		t.Parallel()

		p := articlePipeline(nil)
		p.Extractor = &mock.Extractor{
			ExtractFn: func(html, pageURL string) (*readable.Article, error) {
				return nil, readable.Errorf(readable.ENOTFOUND, "no extractable content")
			},
		}

		result, err := p.Scrape(context.Background(), "https://example.com/post", readable.ModeText)

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("propagates fetch failures", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", readable.Errorf(readable.EINTERNAL, "connection refused")
				},
			},
		}

		_, err := p.Scrape(context.Background(), "https://example.com/", readable.ModeText)

		require.Error(t, err)
		assert.Equal(t, readable.EINTERNAL, readable.ErrorCode(err))
	})

	t.Run("propagates metadata scrape failures from the fallback path", func(t *testing.T) {
		t.Parallel()

		p := &scrape.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html></html>", nil
				},
			},
			Classifier: &mock.Classifier{
				IsArticleFn: func(html string) bool { return false },
			},
			Metadata: &mock.MetadataScraper{
				ScrapeFn: func(ctx context.Context, html string) (*readable.Metadata, error) {
					return nil, readable.Errorf(readable.ETIMEOUT, "metadata parse timed out")
				},
			},
		}

		_, err := p.Scrape(context.Background(), "https://example.com/", readable.ModeText)

		require.Error(t, err)
		assert.Equal(t, readable.ETIMEOUT, readable.ErrorCode(err))
	})

	t.Run("propagates converter failures in markdown mode", func(t *testing.T) {
		t.Parallel()

		p := articlePipeline(&readable.Article{Content: "<p>x</p>", TextContent: "x"})
		p.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", readable.Errorf(readable.EINTERNAL, "conversion failed")
			},
		}

		_, err := p.Scrape(context.Background(), "https://example.com/post", readable.ModeMarkdown)

		require.Error(t, err)
	})

	t.Run("passes the page URL to the extractor for link resolution", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		p := articlePipeline(nil)
		p.Extractor = &mock.Extractor{
			ExtractFn: func(html, pageURL string) (*readable.Article, error) {
				gotURL = pageURL
				return &readable.Article{Content: "<p>c</p>", TextContent: "c"}, nil
			},
		}

		_, err := p.Scrape(context.Background(), "https://example.com/post", readable.ModeText)

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/post", gotURL)
	})

	t.Run("handles a long article end to end in text mode", func(t *testing.T) {
		t.Parallel()

		body := strings.Repeat("Substantial article text. ", 120)
		p := articlePipeline(&readable.Article{
			Title:       "Long Post",
			Content:     "<p>" + body + "</p>",
			TextContent: body,
		})

		result, err := p.Scrape(context.Background(), "https://example.com/post", readable.ModeText)

		require.NoError(t, err)
		article, ok := result.(*readable.Article)
		require.True(t, ok)
		assert.NotEmpty(t, article.Content)
		assert.NotEmpty(t, article.TextContent)
	})
}
