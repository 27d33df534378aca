package transcript

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mitchellh/go-wordwrap"
)

// MarkdownRenderer turns answer text into terminal output at a given width.
type MarkdownRenderer interface {
	Render(text string, width int) (string, error)
}

// PlainRenderer only wraps text.
type PlainRenderer struct{}

func (PlainRenderer) Render(text string, width int) (string, error) {
	if width <= 0 {
		return text, nil
	}
	return wordwrap.WrapString(text, uint(width)), nil
}

// GlamourRenderer renders markdown with glamour, keeping one renderer per width.
type GlamourRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewGlamourRenderer uses a standard glamour style such as "dark" or "light".
func NewGlamourRenderer(style string) *GlamourRenderer {
	if style == "" {
		style = "dark"
	}
	return &GlamourRenderer{style: style, renderers: map[int]*glamour.TermRenderer{}}
}

func (g *GlamourRenderer) Render(text string, width int) (string, error) {
	r, ok := g.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(g.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", err
		}
		g.renderers[width] = r
	}
	out, err := r.Render(text)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}
