package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/readmegen/internal/clipboard"
	"github.com/mithrel/readmegen/internal/render"
	"github.com/mithrel/readmegen/internal/theme"
	"github.com/mithrel/readmegen/pkg/api"
)

type failingClip struct{}

func (failingClip) WriteText(context.Context, string) error { return errors.New("boom") }

func newTestSession(t *testing.T) (*Session, *clipboard.Memory) {
	t.Helper()
	p := api.NewProfile()
	p.Name = "Octo"
	p.GitHubUsername = "octocat"
	clip := &clipboard.Memory{}
	return New(p, theme.Dark, clip, nil), clip
}

func TestGenerateMatchesRenderer(t *testing.T) {
	s, _ := newTestSession(t)
	out := s.Generate()
	assert.Equal(t, render.Markdown(s.Profile()), out)
	assert.Equal(t, out, s.Readme())
}

func TestCopyGuard(t *testing.T) {
	s, clip := newTestSession(t)
	assert.False(t, s.CanCopy())
	_, err := s.Copy(context.Background())
	assert.ErrorIs(t, err, ErrNothingToCopy)
	assert.Equal(t, 0, clip.Count())

	s.Generate()
	require.True(t, s.CanCopy())
	n, err := s.Copy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, s.Readme(), clip.Text())
	assert.Equal(t, len(s.Readme()), n)
}

func TestCopyWrapsClipboardErrors(t *testing.T) {
	s := New(nil, theme.Light, failingClip{}, nil)
	s.Generate()
	_, err := s.Copy(context.Background())
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "copy readme:"))

	noClip := New(nil, theme.Light, nil, nil)
	noClip.Generate()
	_, err = noClip.Copy(context.Background())
	assert.ErrorIs(t, err, clipboard.ErrUnavailable)
}

func TestStaleTracking(t *testing.T) {
	s, _ := newTestSession(t)
	assert.True(t, s.Stale(), "nothing generated yet")
	s.Generate()
	assert.False(t, s.Stale())
	s.Edit(func(p *api.Profile) { p.Tagline = "new" })
	assert.True(t, s.Stale())
	s.Edit(func(p *api.Profile) { p.Tagline = "" })
	assert.False(t, s.Stale(), "reverting the edit matches the generated output again")
}

func TestAddDefaults(t *testing.T) {
	s, _ := newTestSession(t)
	sk := s.AddSkill()
	assert.Equal(t, DefaultSkillName, sk.PlatformName)
	so := s.AddSocial()
	assert.Equal(t, DefaultSocialName, so.PlatformName)
	assert.Equal(t, DefaultSocialURL, so.URL)

	named := s.AddSocial("GitHub", "https://github.com/octocat")
	assert.Equal(t, "https://github.com/octocat", named.URL)
	assert.Same(t, named, s.Profile().Socials.At(1))
}

func TestRemoveNeverAdded(t *testing.T) {
	s, _ := newTestSession(t)
	s.AddSkill("Go")
	calls := 0
	s.Subscribe(func(Change) { calls++ })

	assert.False(t, s.RemoveSkill(&api.SocialLink{PlatformName: "Go"}))
	assert.False(t, s.RemoveSocial(nil))
	assert.Equal(t, 1, s.Profile().Skills.Len())
	assert.Zero(t, calls, "no-op removals do not notify")
}

func TestRemoveSkillAndSocial(t *testing.T) {
	s, _ := newTestSession(t)
	sk := s.AddSkill("Go")
	so := s.AddSocial("X", "https://x.com/o")
	assert.True(t, s.RemoveSkill(sk))
	assert.True(t, s.RemoveSocial(so))
	assert.Equal(t, 0, s.Profile().Skills.Len())
	assert.Equal(t, 0, s.Profile().Socials.Len())
	assert.False(t, s.RemoveSocial(sk), "a skill is not in socials")
}

func TestSubscribe(t *testing.T) {
	s, _ := newTestSession(t)
	var kinds []ChangeKind
	unsub := s.Subscribe(func(c Change) { kinds = append(kinds, c.Kind) })

	s.AddSkill()
	s.Generate()
	s.ChangeTheme(theme.Colorful)
	s.ChangeTheme(theme.Colorful) // unchanged, no event
	assert.Equal(t, []ChangeKind{ProfileChanged, ReadmeGenerated, ThemeChanged}, kinds)
	assert.Equal(t, theme.Colorful, s.Theme())

	unsub()
	s.AddSkill()
	assert.Len(t, kinds, 3)
}

func TestSubscribersRunInOrder(t *testing.T) {
	s, _ := newTestSession(t)
	var order []string
	s.Subscribe(func(Change) { order = append(order, "a") })
	s.Subscribe(func(Change) { order = append(order, "b") })
	s.Edit(func(*api.Profile) {})
	assert.Equal(t, []string{"a", "b"}, order)
}

func TestCopyWhileGenerating(t *testing.T) {
	s, clip := newTestSession(t)
	first := s.Generate()
	done := make(chan error)
	go func() {
		_, err := s.Copy(context.Background())
		done <- err
	}()
	s.Edit(func(p *api.Profile) { p.Tagline = "changed" })
	second := s.Generate()
	require.NoError(t, <-done)
	assert.Contains(t, []string{first, second}, clip.Text())
}
