package tui

import (
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a markdown renderer matched to the terminal background.
// Output wraps at width columns; a nonpositive width keeps glamour's default.
func NewRenderer(width int) (func(string) (string, error), error) {
	opts := []glamour.TermRendererOption{
		glamour.WithAutoStyle(),
	}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return r.Render, nil
}
