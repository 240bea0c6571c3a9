package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	t.Run("renders basic markdown", func(t *testing.T) {
		html, err := r.Render("# Title\n\nsome *emphasis* here")
		assert.NoError(t, err)
		assert.Contains(t, html, "<h1")
		assert.Contains(t, html, "<em>emphasis</em>")
	})

	t.Run("renders GFM tables", func(t *testing.T) {
		html, err := r.Render("| a | b |\n|---|---|\n| 1 | 2 |")
		assert.NoError(t, err)
		assert.Contains(t, html, "<table>")
	})

	t.Run("strips script tags", func(t *testing.T) {
		html, err := r.Render("hello <script>alert('x')</script> world")
		assert.NoError(t, err)
		assert.NotContains(t, html, "<script>")
		assert.NotContains(t, html, "alert")
	})

	t.Run("strips inline event handlers", func(t *testing.T) {
		html, err := r.Render(`<a href="https://example.com" onclick="steal()">link</a>`)
		assert.NoError(t, err)
		assert.NotContains(t, html, "onclick")
	})

	t.Run("empty content renders empty", func(t *testing.T) {
		html, err := r.Render("")
		assert.NoError(t, err)
		assert.Equal(t, "", html)
	})
}
