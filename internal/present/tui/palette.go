package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mithrel/readmegen/internal/theme"
)

// palette holds the editor chrome colors for one theme. Values are ANSI 256 codes
// so the lipgloss v1 and v2 styles can share them.
type palette struct {
	accent string
	muted  string
	border string
	ok     string
	warn   string
	errc   string
}

func paletteFor(t theme.Theme) palette {
	switch t {
	case theme.Light:
		return palette{accent: "25", muted: "245", border: "250", ok: "28", warn: "130", errc: "160"}
	case theme.Colorful:
		return palette{accent: "205", muted: "141", border: "99", ok: "48", warn: "214", errc: "203"}
	default:
		return palette{accent: "63", muted: "241", border: "238", ok: "42", warn: "178", errc: "196"}
	}
}

func (p palette) title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(p.accent))
}

func (p palette) label(focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted))
	if focused {
		s = s.Foreground(lipgloss.Color(p.accent)).Bold(true)
	}
	return s
}

func (p palette) faint() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted))
}

func (p palette) selected() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color(p.accent))
}

func (p palette) pane(width, height int, focused bool) lipgloss.Style {
	border := p.border
	if focused {
		border = p.accent
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		MaxHeight(height + 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border))
}

func (p palette) status(isErr bool) lipgloss.Style {
	if isErr {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.errc))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(p.ok))
}
