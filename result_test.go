package readable_test

import (
	"testing"

	"github.com/fwojciec/readable"
	"github.com/stretchr/testify/assert"
)

func TestResultVariants(t *testing.T) {
	t.Parallel()

	t.Run("article text companion is the extracted plain text", func(t *testing.T) {
		t.Parallel()

		var result readable.Result = &readable.Article{
			Content:     "<p>body</p>",
			TextContent: "body",
		}

		assert.Equal(t, "body", result.Text())
	})

	t.Run("fallback text companion is the raw body text", func(t *testing.T) {
		t.Parallel()

		var result readable.Result = &readable.Fallback{
			Markdown:    "# Title\n\n",
			TextContent: "raw body",
		}

		assert.Equal(t, "raw body", result.Text())
	})
}
