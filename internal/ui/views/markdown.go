package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders section bodies with glamour, caching by width
// and source. The fixed dark style avoids querying the terminal while the
// presenter owns it.
type MarkdownRenderer struct {
	renderers map[int]*glamour.TermRenderer
	cache     map[string]string
}

// NewMarkdownRenderer creates an empty renderer cache
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{
		renderers: make(map[int]*glamour.TermRenderer),
		cache:     make(map[string]string),
	}
}

// Render returns src rendered for width columns. Failures fall back to the
// raw markdown.
func (m *MarkdownRenderer) Render(src string, width int) string {
	if width < 20 {
		width = 20
	}
	key := fmt.Sprintf("%d\x00%s", width, src)
	if out, ok := m.cache[key]; ok {
		return out
	}

	out := src
	if r, err := m.renderer(width); err == nil {
		if rendered, err := r.Render(src); err == nil {
			out = strings.Trim(rendered, "\n")
		}
	}
	m.cache[key] = out
	return out
}

func (m *MarkdownRenderer) renderer(width int) (*glamour.TermRenderer, error) {
	if r, ok := m.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	m.renderers[width] = r
	return r, nil
}
