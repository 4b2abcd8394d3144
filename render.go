package main

import (
	"github.com/charmbracelet/glamour"
)

// Cached glamour renderer. WithAutoStyle() performs OS I/O to detect the
// terminal theme, so it is built once per width.
var (
	cachedRenderer      *glamour.TermRenderer
	cachedRendererWidth int
)

// renderMarkdown renders Markdown as terminal-formatted text using glamour.
// If rendering fails, the raw input text is returned as a fallback.
func renderMarkdown(s string, width int) string {
	if cachedRenderer == nil || cachedRendererWidth != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return s
		}
		cachedRenderer = r
		cachedRendererWidth = width
	}

	rendered, err := cachedRenderer.Render(s)
	if err != nil {
		return s
	}
	return rendered
}
