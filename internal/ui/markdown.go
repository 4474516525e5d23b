package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders md for the terminal. In headless or no-color mode
// the markdown source is returned unchanged.
func RenderMarkdown(theme *Theme, hm *HeadlessManager, md string) (string, error) {
	if hm.IsHeadless() || theme.NoColor {
		return md, nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(theme.Mode),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
