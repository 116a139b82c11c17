package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/leluso/ghost-digest/internal/domain"
)

// Converter renders digest markdown into HTML.
type Converter struct {
	engine goldmark.Markdown
}

var _ domain.MarkupConverter = (*Converter)(nil)

// NewConverter builds a GFM-flavored converter. Raw HTML passes through
// unchanged because digest bodies embed article HTML as-is.
func NewConverter() *Converter {
	return &Converter{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Convert renders markdown into HTML.
func (c *Converter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.engine.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown: convert: %w", err)
	}
	return buf.String(), nil
}
