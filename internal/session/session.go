package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/mithrel/readmegen/internal/clipboard"
	"github.com/mithrel/readmegen/internal/render"
	"github.com/mithrel/readmegen/internal/theme"
	"github.com/mithrel/readmegen/pkg/api"
)

const (
	DefaultSkillName  = "New Skill"
	DefaultSocialName = "Platform"
	DefaultSocialURL  = "https://example.com"
)

// ErrNothingToCopy is returned by Copy before anything has been generated.
var ErrNothingToCopy = errors.New("nothing to copy: generate the README first")

// ChangeKind tells subscribers what moved.
type ChangeKind int

const (
	ProfileChanged ChangeKind = iota
	ReadmeGenerated
	ThemeChanged
)

type Change struct {
	Kind ChangeKind
}

// Session owns the profile being edited and exposes the user actions.
// Copy may run on another goroutine; every other method belongs to the UI loop.
type Session struct {
	profile *api.Profile
	theme   theme.Theme
	clip    clipboard.Writer
	log     *slog.Logger

	mu        sync.Mutex // guards readme and readmeFor
	readme    string
	readmeFor string // profile hash at last Generate

	subs   map[int]func(Change)
	nextID int
}

// New starts a session around p. A nil clipboard disables Copy.
func New(p *api.Profile, th theme.Theme, clip clipboard.Writer, log *slog.Logger) *Session {
	if p == nil {
		p = api.NewProfile()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Session{
		profile: p,
		theme:   th,
		clip:    clip,
		log:     log,
		subs:    make(map[int]func(Change)),
	}
}

// Profile returns the live profile. Callers that mutate it directly should
// go through Edit so subscribers hear about it.
func (s *Session) Profile() *api.Profile { return s.profile }

// Subscribe registers fn for every change and returns a function that removes it.
func (s *Session) Subscribe(fn func(Change)) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Session) notify(k ChangeKind) {
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fn(Change{Kind: k})
		}
	}
}

// Edit applies a field edit to the profile.
func (s *Session) Edit(fn func(p *api.Profile)) {
	fn(s.profile)
	s.notify(ProfileChanged)
}

// Generate renders the current profile and keeps the result for Copy.
func (s *Session) Generate() string {
	md := render.Markdown(s.profile)
	hash := s.profile.Hash()
	s.mu.Lock()
	s.readme, s.readmeFor = md, hash
	s.mu.Unlock()
	s.log.Debug("readme generated", "bytes", len(md), "skills", s.profile.Skills.Len(), "socials", s.profile.Socials.Len())
	s.notify(ReadmeGenerated)
	return md
}

// Readme returns the last generated README, empty before the first Generate.
func (s *Session) Readme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readme
}

// Stale reports whether the profile changed since the last Generate.
func (s *Session) Stale() bool {
	s.mu.Lock()
	generated := s.readmeFor
	s.mu.Unlock()
	return generated == "" || generated != s.profile.Hash()
}

// CanCopy is false while the generated README is empty or whitespace only.
func (s *Session) CanCopy() bool {
	return strings.TrimSpace(s.Readme()) != ""
}

// Copy puts the generated README on the clipboard and returns its size.
func (s *Session) Copy(ctx context.Context) (int, error) {
	text := s.Readme()
	if strings.TrimSpace(text) == "" {
		return 0, ErrNothingToCopy
	}
	if s.clip == nil {
		return 0, clipboard.ErrUnavailable
	}
	if err := s.clip.WriteText(ctx, text); err != nil {
		return 0, fmt.Errorf("copy readme: %w", err)
	}
	s.log.Debug("readme copied", "bytes", len(text))
	return len(text), nil
}

// AddSkill appends a skill named name, or DefaultSkillName when omitted.
func (s *Session) AddSkill(name ...string) *api.SocialLink {
	n := DefaultSkillName
	if len(name) > 0 {
		n = name[0]
	}
	l := s.profile.AddSkill(n)
	s.log.Debug("skill added", "name", n)
	s.notify(ProfileChanged)
	return l
}

// RemoveSkill drops l; unknown entries are ignored.
func (s *Session) RemoveSkill(l *api.SocialLink) bool {
	if !s.profile.Skills.Remove(l) {
		return false
	}
	s.log.Debug("skill removed", "name", l.PlatformName)
	s.notify(ProfileChanged)
	return true
}

// AddSocial appends a social link. Arguments are name then url; missing ones
// fall back to DefaultSocialName and DefaultSocialURL.
func (s *Session) AddSocial(nameURL ...string) *api.SocialLink {
	name, url := DefaultSocialName, DefaultSocialURL
	if len(nameURL) > 0 {
		name = nameURL[0]
	}
	if len(nameURL) > 1 {
		url = nameURL[1]
	}
	l := s.profile.AddSocial(name, url)
	s.log.Debug("social added", "name", name)
	s.notify(ProfileChanged)
	return l
}

// RemoveSocial drops l; unknown entries are ignored.
func (s *Session) RemoveSocial(l *api.SocialLink) bool {
	if !s.profile.Socials.Remove(l) {
		return false
	}
	s.log.Debug("social removed", "name", l.PlatformName)
	s.notify(ProfileChanged)
	return true
}

func (s *Session) Theme() theme.Theme { return s.theme }

// ChangeTheme records the chosen theme; applying it is up to the UI.
func (s *Session) ChangeTheme(t theme.Theme) {
	if t == s.theme {
		return
	}
	s.theme = t
	s.log.Debug("theme changed", "theme", t.String())
	s.notify(ThemeChanged)
}
