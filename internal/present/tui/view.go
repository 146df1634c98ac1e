package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m model) View() string {
	base := m.renderBase()
	if m.help != nil {
		return m.renderOverlay(base, m.help.View(), m.help.width, m.help.height)
	}
	return base
}

func (m model) renderBase() string {
	w, h := m.termSize()
	left := m.leftWidth()
	paneH := max(5, h-4)

	form := m.pal.pane(left-2, paneH, true).Render(m.renderForm())
	previewTitle := "Preview"
	if m.raw {
		previewTitle += " (raw)"
	}
	right := m.pal.pane(max(20, w-left-2), paneH, false).Render(
		m.pal.title().Render(previewTitle) + "  " + m.renderFreshness() + "\n" + m.preview.View(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, form, right)
	return body + "\n" + m.renderFooter(w)
}

func (m model) renderForm() string {
	p := m.sess.Profile()
	var b strings.Builder
	b.WriteString(m.pal.title().Render("Profile") + "\n\n")
	b.WriteString(m.name.View() + "\n")
	b.WriteString(m.tagline.View() + "\n")
	b.WriteString(m.github.View() + "\n\n")
	b.WriteString(m.pal.label(m.focus == fieldAbout).Render("About Me") + "\n")
	b.WriteString(m.about.View() + "\n\n")
	b.WriteString(m.renderToggle("GitHub stats card", p.ShowGitHubStats, m.focus == fieldStats) + "\n")
	b.WriteString(m.renderToggle("Top languages card", p.ShowTopLanguages, m.focus == fieldTopLangs) + "\n\n")
	b.WriteString(m.skills.view(p.Skills.Items(), m.focus == fieldSkills, m.pal) + "\n")
	b.WriteString(m.socials.view(p.Socials.Items(), m.focus == fieldSocials, m.pal))
	return b.String()
}

func (m model) renderToggle(label string, on, focused bool) string {
	box := "[ ]"
	if on {
		box = "[x]"
	}
	return m.pal.label(focused).Render(box + " " + label)
}

func (m model) renderFreshness() string {
	switch {
	case m.sess.Readme() == "":
		return m.pal.faint().Render("not generated")
	case m.sess.Stale():
		return lipgloss.NewStyle().Foreground(lipgloss.Color(m.pal.warn)).Render("changed since generate")
	default:
		return m.pal.status(false).Render("generated")
	}
}

func (m model) renderFooter(width int) string {
	left := m.pal.status(m.statusErr).Render(m.status)
	right := m.pal.faint().Render("theme: " + m.sess.Theme().String() + " • ? help • q quit ")
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return left + strings.Repeat(" ", space) + right
}
