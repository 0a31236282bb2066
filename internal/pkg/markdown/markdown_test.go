package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBasicMarkdown(t *testing.T) {
	html := Render("# Welcome\n\nSome **bold** text.")
	assert.Contains(t, html, "<h1>Welcome</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
}

func TestRenderTable(t *testing.T) {
	html := Render("| a | b |\n|---|---|\n| 1 | 2 |")
	assert.Contains(t, html, "<table>")
}

func TestRenderStripsScripts(t *testing.T) {
	html := Render("hello <script>alert('x')</script> world")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "hello")
}

func TestRenderAutolinks(t *testing.T) {
	html := Render("visit https://example.org today")
	assert.Contains(t, html, `href="https://example.org"`)
}

func TestRenderEmptyInput(t *testing.T) {
	assert.Equal(t, "", Render(""))
}
