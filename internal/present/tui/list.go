package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/readmegen/pkg/api"
)

const maxSuggestions = 5

// linkList is the cursor and inline editor over one of the profile lists.
// Social entries are edited as "Name=URL".
type linkList struct {
	title       string
	social      bool
	cursor      int
	editing     bool
	input       textinput.Model
	suggest     func(string, int) []string
	suggestions []string
}

func newLinkList(title string, social bool, suggest func(string, int) []string) linkList {
	in := textinput.New()
	in.Prompt = "› "
	if social {
		in.Placeholder = "Name=https://…"
	} else {
		in.Placeholder = "Skill name"
	}
	return linkList{title: title, social: social, input: in, suggest: suggest}
}

func (l *linkList) clamp(n int) {
	l.cursor = clamp(l.cursor, 0, n-1)
}

// editValue is what the inline editor starts with for item.
func (l *linkList) editValue(item *api.SocialLink) string {
	if l.social {
		return item.PlatformName + "=" + item.URL
	}
	return item.PlatformName
}

func (l *linkList) startEdit(item *api.SocialLink, width int) tea.Cmd {
	l.editing = true
	l.input.Width = max(10, width-4)
	l.input.SetValue(l.editValue(item))
	l.input.CursorEnd()
	l.refreshSuggestions()
	return l.input.Focus()
}

func (l *linkList) stopEdit() {
	l.editing = false
	l.suggestions = nil
	l.input.Blur()
}

// apply writes the edited value into item. Socials without "=" keep their URL.
func (l *linkList) apply(item *api.SocialLink) {
	v := strings.TrimSpace(l.input.Value())
	if !l.social {
		if v != "" {
			item.PlatformName = v
		}
		return
	}
	name, url, ok := strings.Cut(v, "=")
	if n := strings.TrimSpace(name); n != "" {
		item.PlatformName = n
	}
	if ok {
		item.URL = strings.TrimSpace(url)
	}
}

// completeFirst replaces the name being typed with the top suggestion.
func (l *linkList) completeFirst() bool {
	if len(l.suggestions) == 0 {
		return false
	}
	v := l.input.Value()
	if l.social {
		if _, url, ok := strings.Cut(v, "="); ok {
			l.input.SetValue(l.suggestions[0] + "=" + url)
		} else {
			l.input.SetValue(l.suggestions[0] + "=")
		}
	} else {
		l.input.SetValue(l.suggestions[0])
	}
	l.input.CursorEnd()
	l.refreshSuggestions()
	return true
}

func (l *linkList) refreshSuggestions() {
	l.suggestions = nil
	if l.suggest == nil {
		return
	}
	name := l.input.Value()
	if l.social {
		var hasURL bool
		name, _, hasURL = strings.Cut(name, "=")
		if hasURL {
			return
		}
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, s := range l.suggest(name, maxSuggestions) {
		if s != name {
			l.suggestions = append(l.suggestions, s)
		}
	}
}

func (l *linkList) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	l.refreshSuggestions()
	return cmd
}

func (l *linkList) view(items []*api.SocialLink, focused bool, pal palette) string {
	var b strings.Builder
	count := ""
	if len(items) > 0 {
		count = " (" + strconv.Itoa(len(items)) + ")"
	}
	b.WriteString(pal.label(focused).Render(l.title+count) + "\n")
	if len(items) == 0 {
		b.WriteString(pal.faint().Render("  (empty; ctrl+n adds one)") + "\n")
		return b.String()
	}
	for i, it := range items {
		if focused && l.editing && i == l.cursor {
			b.WriteString("  " + l.input.View() + "\n")
			if len(l.suggestions) > 0 {
				b.WriteString(pal.faint().Render("    tab: "+strings.Join(l.suggestions, " · ")) + "\n")
			}
			continue
		}
		line := it.PlatformName
		if l.social {
			line += "  " + pal.faint().Render(it.URL)
		}
		if focused && i == l.cursor {
			b.WriteString(pal.selected().Render("› "+it.PlatformName) + strings.TrimPrefix(line, it.PlatformName) + "\n")
			continue
		}
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

