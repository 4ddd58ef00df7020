package markdown

import (
	"github.com/charmbracelet/glamour"
)

const defaultWidth = 100

// Renderer renders markdown to ANSI styled text with glamour.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewRenderer creates a markdown renderer with the given options.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{width: defaultWidth}
	for _, opt := range opts {
		opt(r)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylesFromJSONBytes(DefaultStyle),
		glamour.WithWordWrap(r.width),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, err
	}

	r.renderer = renderer
	return r, nil
}

// Render renders markdown content.
func (r *Renderer) Render(content string) (string, error) {
	return r.renderer.Render(content)
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the word wrap width.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}
