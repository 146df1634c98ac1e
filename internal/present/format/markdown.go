package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"

	"github.com/mithrel/readmegen/internal/theme"
)

// GlamourStyle maps a theme to one of glamour's standard styles.
func GlamourStyle(t theme.Theme) string {
	switch t {
	case theme.Light:
		return "light"
	case theme.Colorful:
		return "dracula"
	default:
		return "dark"
	}
}

// NewRenderer builds a glamour renderer for the theme and wrap width.
func NewRenderer(t theme.Theme, wrap int) (*glamour.TermRenderer, error) {
	if wrap <= 0 {
		wrap = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(GlamourStyle(t)),
		glamour.WithWordWrap(wrap),
		glamour.WithEmoji(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}
	return r, nil
}

// Pretty renders README markdown for a terminal.
func Pretty(md string, t theme.Theme, wrap int) (string, error) {
	r, err := NewRenderer(t, wrap)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// WritePretty renders README markdown with glamour and writes it to w.
func WritePretty(w io.Writer, md string, t theme.Theme, wrap int) error {
	out, err := Pretty(md, t, wrap)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// WriteRaw writes the markdown unchanged, ready to paste into README.md.
func WriteRaw(w io.Writer, md string) error {
	_, err := io.WriteString(w, md)
	return err
}
