package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/mithrel/readmegen/internal/editor"
	"github.com/mithrel/readmegen/internal/present/format"
	"github.com/mithrel/readmegen/internal/render"
	"github.com/mithrel/readmegen/internal/session"
	"github.com/mithrel/readmegen/internal/util"
	"github.com/mithrel/readmegen/internal/wire"
	"github.com/mithrel/readmegen/pkg/api"
)

type field int

const (
	fieldName field = iota
	fieldTagline
	fieldGitHub
	fieldAbout
	fieldStats
	fieldTopLangs
	fieldSkills
	fieldSocials
	fieldCount
)

// pending collects session notifications between two Update calls.
// It is shared by pointer so model copies see the same flags.
type pending struct {
	profile bool
	readme  bool
	theme   bool
}

func (p *pending) any() bool { return p.profile || p.readme || p.theme }

// Run opens the interactive profile editor with a live preview.
func Run(ctx context.Context, app *wire.App) error {
	m := newModel(ctx, app)
	defer m.unsubscribe()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

type model struct {
	ctx  context.Context
	sess *session.Session
	log  *slog.Logger
	wrap int

	name    textinput.Model
	tagline textinput.Model
	github  textinput.Model
	about   textarea.Model
	skills  linkList
	socials linkList
	focus   field

	preview  viewport.Model
	renderer *glamour.TermRenderer
	markdown string // last markdown shown in the preview
	raw      bool

	changes     *pending
	unsubscribe func()

	pal       palette
	help      *helpModal
	width     int
	height    int
	status    string
	statusErr bool
}

func newModel(ctx context.Context, app *wire.App) model {
	m := model{
		ctx:     ctx,
		sess:    app.Session,
		log:     app.Log,
		changes: &pending{profile: true, theme: true},
	}
	if m.log == nil {
		m.log = slog.Default()
	}
	if app.Cfg != nil {
		m.wrap = app.Cfg.GetInt("preview.word_wrap")
	}
	if m.wrap <= 0 {
		m.wrap = 80
	}

	changes := m.changes
	m.unsubscribe = m.sess.Subscribe(func(c session.Change) {
		switch c.Kind {
		case session.ProfileChanged:
			changes.profile = true
		case session.ReadmeGenerated:
			changes.readme = true
		case session.ThemeChanged:
			changes.theme = true
		}
	})

	m.name = newInput("Name:     ", "Your name")
	m.tagline = newInput("Tagline:  ", "What you do")
	m.github = newInput("GitHub:   ", "username")
	m.about = textarea.New()
	m.about.Placeholder = "A few lines about you"
	m.about.ShowLineNumbers = false
	m.about.SetHeight(4)
	m.skills = newLinkList("Skills & Tools", false, util.SuggestSkills)
	m.socials = newLinkList("Connect with Me", true, util.SuggestSocials)
	m.preview = viewport.New(40, 10)

	m.loadForm()
	m.setFocus(fieldName)
	m.applyLayout()
	m.sync()
	m.status = "ctrl+g generate • ctrl+y copy • ? help"
	return m
}

func newInput(prompt, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	return ti
}

// loadForm copies the profile into the inputs, for startup and after $EDITOR.
func (m *model) loadForm() {
	p := m.sess.Profile()
	for _, f := range []struct {
		in  *textinput.Model
		val string
	}{{&m.name, p.Name}, {&m.tagline, p.Tagline}, {&m.github, p.GitHubUsername}} {
		f.in.SetValue(f.val)
		f.in.CursorEnd()
	}
	m.about.SetValue(p.AboutMe)
	m.skills.stopEdit()
	m.socials.stopEdit()
	m.skills.clamp(p.Skills.Len())
	m.socials.clamp(p.Socials.Len())
}

func (m *model) setFocus(f field) {
	m.focus = (f + fieldCount) % fieldCount
	m.name.Blur()
	m.tagline.Blur()
	m.github.Blur()
	m.about.Blur()
	m.skills.stopEdit()
	m.socials.stopEdit()
	switch m.focus {
	case fieldName:
		m.name.Focus()
	case fieldTagline:
		m.tagline.Focus()
	case fieldGitHub:
		m.github.Focus()
	case fieldAbout:
		m.about.Focus()
	}
}

// typing reports whether keys currently go to a text field.
func (m model) typing() bool {
	switch m.focus {
	case fieldName, fieldTagline, fieldGitHub, fieldAbout:
		return true
	case fieldSkills:
		return m.skills.editing
	case fieldSocials:
		return m.socials.editing
	}
	return false
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.sync()
	return m, cmd
}

func (m model) update(msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.applyLayout()
		m.renderer = nil
		m.changes.profile = true
		return m, nil
	case copyResultMsg:
		if msg.err != nil {
			m.setError(msg.err)
			return m, nil
		}
		m.log.Debug("readme copied", "bytes", msg.bytes, "dur", msg.dur)
		m.setStatus(fmt.Sprintf("Copied README to clipboard (%d bytes)", msg.bytes))
		return m, nil
	case editorDoneMsg:
		out, err := readEditorResult(msg)
		if err != nil {
			m.setError(fmt.Errorf("editor: %w", err))
			return m, nil
		}
		if out == nil {
			m.setStatus("No edits; profile unchanged.")
			return m, nil
		}
		m.sess.Edit(func(p *api.Profile) { editor.ParseProfile(string(out), p) })
		m.loadForm()
		m.setFocus(m.focus)
		m.setStatus("Profile updated from editor.")
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.routeToFocused(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	key := msg.String()
	if m.help != nil {
		switch key {
		case "?", "f1", "esc", "q":
			m.help = nil
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+g":
		md := m.sess.Generate()
		m.setStatus(fmt.Sprintf("README generated (%d bytes)", len(md)))
		return m, nil
	case "ctrl+y":
		m.setStatus("Copying…")
		return m, copyCmd(m.ctx, m.sess)
	case "ctrl+t":
		m.sess.ChangeTheme(m.sess.Theme().Next())
		m.setStatus("Theme: " + m.sess.Theme().String())
		return m, nil
	case "ctrl+r":
		m.raw = !m.raw
		m.changes.profile = true
		return m, nil
	case "ctrl+e":
		return m, editorCmd(m.sess.Profile())
	case "f1":
		m.help = newHelpModal(m.pal)
		return m, nil
	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.preview, cmd = m.preview.Update(msg)
		return m, cmd
	}

	if lst, links, ok := m.focusedList(); ok && lst.editing {
		return m, m.handleListEdit(msg, lst, links)
	}

	switch key {
	case "tab":
		m.setFocus(m.focus + 1)
		return m, m.focusCmd()
	case "shift+tab":
		m.setFocus(m.focus - 1)
		return m, m.focusCmd()
	}

	if !m.typing() {
		switch key {
		case "q":
			return m, tea.Quit
		case "?":
			m.help = newHelpModal(m.pal)
			return m, nil
		}
	}

	switch m.focus {
	case fieldStats, fieldTopLangs:
		switch key {
		case " ", "enter", "x":
			m.toggle(m.focus)
		case "down", "j":
			m.setFocus(m.focus + 1)
		case "up", "k":
			m.setFocus(m.focus - 1)
		}
		return m, nil
	case fieldSkills, fieldSocials:
		lst, links, _ := m.focusedList()
		return m, m.handleListKey(key, lst, links)
	}
	return m.routeToFocused(msg)
}

func (m *model) toggle(f field) {
	m.sess.Edit(func(p *api.Profile) {
		if f == fieldStats {
			p.ShowGitHubStats = !p.ShowGitHubStats
		} else {
			p.ShowTopLanguages = !p.ShowTopLanguages
		}
	})
}

// focusedList returns the list under focus. The returned pointer aliases m.
func (m *model) focusedList() (*linkList, *api.Links, bool) {
	p := m.sess.Profile()
	switch m.focus {
	case fieldSkills:
		return &m.skills, &p.Skills, true
	case fieldSocials:
		return &m.socials, &p.Socials, true
	}
	return nil, nil, false
}

func (m *model) handleListKey(key string, lst *linkList, links *api.Links) tea.Cmd {
	n := links.Len()
	switch key {
	case "down", "j":
		lst.cursor = clamp(lst.cursor+1, 0, n-1)
	case "up", "k":
		lst.cursor = clamp(lst.cursor-1, 0, n-1)
	case "ctrl+n":
		var added *api.SocialLink
		if lst.social {
			added = m.sess.AddSocial()
		} else {
			added = m.sess.AddSkill()
		}
		lst.cursor = links.IndexOf(added)
		return lst.startEdit(added, m.leftWidth())
	case "ctrl+d", "delete":
		item := links.At(lst.cursor)
		if item == nil {
			return nil
		}
		if lst.social {
			m.sess.RemoveSocial(item)
		} else {
			m.sess.RemoveSkill(item)
		}
		lst.clamp(links.Len())
		m.setStatus("Removed " + item.PlatformName)
	case "alt+up", "alt+k":
		if links.Len() > 1 && lst.cursor > 0 {
			from := lst.cursor
			m.sess.Edit(func(*api.Profile) { links.Move(from, from-1) })
			lst.cursor--
		}
	case "alt+down", "alt+j":
		if lst.cursor < links.Len()-1 {
			from := lst.cursor
			m.sess.Edit(func(*api.Profile) { links.Move(from, from+1) })
			lst.cursor++
		}
	case "enter", "e":
		if item := links.At(lst.cursor); item != nil {
			return lst.startEdit(item, m.leftWidth())
		}
	}
	return nil
}

func (m *model) handleListEdit(msg tea.KeyMsg, lst *linkList, links *api.Links) tea.Cmd {
	switch msg.String() {
	case "enter":
		if item := links.At(lst.cursor); item != nil {
			m.sess.Edit(func(*api.Profile) { lst.apply(item) })
		}
		lst.stopEdit()
		return nil
	case "esc":
		lst.stopEdit()
		return nil
	case "tab":
		lst.completeFirst()
		return nil
	}
	return lst.updateInput(msg)
}

// routeToFocused feeds msg to the focused text field and pushes edits into the session.
func (m model) routeToFocused(msg tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd
	p := m.sess.Profile()
	switch m.focus {
	case fieldName:
		m.name, cmd = m.name.Update(msg)
		if v := m.name.Value(); v != p.Name {
			m.sess.Edit(func(p *api.Profile) { p.Name = v })
		}
	case fieldTagline:
		m.tagline, cmd = m.tagline.Update(msg)
		if v := m.tagline.Value(); v != p.Tagline {
			m.sess.Edit(func(p *api.Profile) { p.Tagline = v })
		}
	case fieldGitHub:
		m.github, cmd = m.github.Update(msg)
		if v := m.github.Value(); v != p.GitHubUsername {
			m.sess.Edit(func(p *api.Profile) { p.GitHubUsername = v })
		}
	case fieldAbout:
		m.about, cmd = m.about.Update(msg)
		if v := m.about.Value(); v != p.AboutMe {
			m.sess.Edit(func(p *api.Profile) { p.AboutMe = v })
		}
	case fieldSkills:
		if m.skills.editing {
			cmd = m.skills.updateInput(msg)
		}
	case fieldSocials:
		if m.socials.editing {
			cmd = m.socials.updateInput(msg)
		}
	}
	return m, cmd
}

func (m model) focusCmd() tea.Cmd {
	switch m.focus {
	case fieldName, fieldTagline, fieldGitHub:
		return textinput.Blink
	case fieldAbout:
		return textarea.Blink
	}
	return nil
}

// sync reacts to session notifications collected since the last call.
func (m *model) sync() {
	if !m.changes.any() {
		return
	}
	if m.changes.theme {
		m.pal = paletteFor(m.sess.Theme())
		m.renderer = nil
		if m.help != nil {
			m.help = newHelpModal(m.pal)
		}
	}
	m.refreshPreview()
	*m.changes = pending{}
}

func (m *model) refreshPreview() {
	m.markdown = render.Markdown(m.sess.Profile())
	if m.raw {
		m.preview.SetContent(m.markdown)
		return
	}
	if m.renderer == nil {
		r, err := format.NewRenderer(m.sess.Theme(), min(m.wrap, max(20, m.preview.Width-2)))
		if err != nil {
			m.log.Warn("preview renderer", "err", err)
			m.preview.SetContent(m.markdown)
			return
		}
		m.renderer = r
	}
	out, err := m.renderer.Render(m.markdown)
	if err != nil {
		m.log.Warn("preview render", "err", err)
		out = m.markdown
	}
	m.preview.SetContent(out)
}

func (m *model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
	m.log.Warn("action failed", "err", err)
}

func (m model) leftWidth() int {
	w, _ := m.termSize()
	return clamp(w*45/100, 36, 72)
}

func (m *model) applyLayout() {
	w, h := m.termSize()
	left := m.leftWidth()
	inner := max(20, left-4)
	for _, in := range []*textinput.Model{&m.name, &m.tagline, &m.github} {
		in.Width = max(10, inner-len(in.Prompt))
	}
	m.about.SetWidth(inner)
	m.preview.Width = max(20, w-left-4)
	m.preview.Height = max(5, h-4)
}
