package tui

import (
	"strings"

	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

type keyHelp struct {
	keys, desc string
}

var helpKeys = []keyHelp{
	{"tab / shift+tab", "next / previous field"},
	{"ctrl+g", "generate the README"},
	{"ctrl+y", "copy the generated README"},
	{"ctrl+t", "cycle theme"},
	{"ctrl+r", "toggle raw / rendered preview"},
	{"ctrl+e", "edit the whole profile in $EDITOR"},
	{"space / enter", "toggle a stats card"},
	{"↑/↓", "move in a list"},
	{"ctrl+n / ctrl+d", "add / remove list entry"},
	{"alt+↑ / alt+↓", "reorder list entry"},
	{"enter", "edit list entry (enter saves, esc cancels)"},
	{"tab (editing)", "accept the first suggestion"},
	{"pgup / pgdown", "scroll the preview"},
	{"? / f1", "toggle this help"},
	{"q / ctrl+c", "quit (q only outside text fields)"},
}

// helpModal lists the key bindings in a bordered box drawn over the editor.
type helpModal struct {
	width  int
	height int
	box    lipglossv2.Style
}

func newHelpModal(pal palette) *helpModal {
	keyW := 0
	for _, k := range helpKeys {
		keyW = max(keyW, lipglossv2.Width(k.keys))
	}
	descW := 0
	for _, k := range helpKeys {
		descW = max(descW, lipglossv2.Width(k.desc))
	}
	m := &helpModal{}
	m.width = keyW + descW + 3 + 2 + 4 // gap, borders, padding
	m.height = len(helpKeys) + 2 + 2 + 2
	m.box = lipglossv2.NewStyle().
		Width(m.width).
		Height(m.height).
		Padding(1, 2).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color(pal.accent))
	return m
}

func (m *helpModal) View() string {
	var b strings.Builder
	b.WriteString(lipglossv2.NewStyle().Bold(true).Render("Keys") + "\n\n")
	keyW := 0
	for _, k := range helpKeys {
		keyW = max(keyW, lipglossv2.Width(k.keys))
	}
	keyStyle := lipglossv2.NewStyle().Width(keyW + 3).Bold(true)
	lines := make([]string, 0, len(helpKeys))
	for _, k := range helpKeys {
		lines = append(lines, keyStyle.Render(k.keys)+k.desc)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return m.box.Render(b.String())
}
