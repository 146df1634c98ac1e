package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(ls *Links) []string {
	out := make([]string, 0, ls.Len())
	for _, l := range ls.Items() {
		out = append(out, l.PlatformName)
	}
	return out
}

func TestNewProfileDefaults(t *testing.T) {
	p := NewProfile()
	assert.True(t, p.ShowGitHubStats)
	assert.True(t, p.ShowTopLanguages)
	assert.Equal(t, 0, p.Skills.Len())
	assert.NotNil(t, p.Socials.Items())
}

func TestLinksAppendKeepsOrder(t *testing.T) {
	var ls Links
	require.True(t, ls.Append(&SocialLink{PlatformName: "a"}))
	require.True(t, ls.Append(&SocialLink{PlatformName: "b"}))
	require.True(t, ls.Append(&SocialLink{PlatformName: "c"}))
	assert.Equal(t, []string{"a", "b", "c"}, names(&ls))
	assert.Equal(t, "c", ls.At(2).PlatformName)
	assert.Nil(t, ls.At(3))
}

func TestLinksRemoveByIdentity(t *testing.T) {
	var ls Links
	a := &SocialLink{PlatformName: "a"}
	b := &SocialLink{PlatformName: "b"}
	ls.Append(a)
	ls.Append(b)

	lookalike := &SocialLink{PlatformName: "a"}
	assert.False(t, ls.Remove(lookalike), "equal value but different identity")
	assert.False(t, ls.Remove(nil))
	assert.Equal(t, []string{"a", "b"}, names(&ls))

	assert.True(t, ls.Remove(a))
	assert.Equal(t, []string{"b"}, names(&ls))
	assert.False(t, ls.Remove(a), "second removal is a no-op")
}

func TestLinksOwnershipIsExclusive(t *testing.T) {
	p1 := NewProfile()
	p2 := NewProfile()
	l := p1.AddSkill("Go")

	assert.False(t, p2.Skills.Append(l))
	assert.False(t, p1.Socials.Append(l))
	assert.Equal(t, -1, p2.Skills.IndexOf(l))

	require.True(t, p1.Skills.Remove(l))
	assert.True(t, p2.Skills.Append(l), "released entries can be adopted")
}

func TestLinksMove(t *testing.T) {
	var ls Links
	for _, n := range []string{"a", "b", "c", "d"} {
		ls.Append(&SocialLink{PlatformName: n})
	}
	require.True(t, ls.Move(0, 2))
	assert.Equal(t, []string{"b", "c", "a", "d"}, names(&ls))
	require.True(t, ls.Move(3, 0))
	assert.Equal(t, []string{"d", "b", "c", "a"}, names(&ls))
	assert.False(t, ls.Move(0, 4))
	assert.False(t, ls.Move(-1, 0))
	assert.False(t, ls.Move(1, 1))
}

func TestLinksItemsIsACopy(t *testing.T) {
	var ls Links
	ls.Append(&SocialLink{PlatformName: "a"})
	items := ls.Items()
	items[0] = &SocialLink{PlatformName: "z"}
	assert.Equal(t, "a", ls.At(0).PlatformName)
}

func TestLinksClear(t *testing.T) {
	var ls Links
	a := &SocialLink{PlatformName: "a"}
	ls.Append(a)
	ls.Clear()
	assert.Equal(t, 0, ls.Len())
	var other Links
	assert.True(t, other.Append(a))
}

func TestCloneDoesNotShareEntries(t *testing.T) {
	p := NewProfile()
	s := p.AddSkill("Go")
	p.AddSocial("GitHub", "https://github.com/x")

	c := p.Clone()
	require.Equal(t, 1, c.Skills.Len())
	assert.NotSame(t, s, c.Skills.At(0))
	c.Skills.At(0).PlatformName = "Rust"
	assert.Equal(t, "Go", s.PlatformName)
	assert.Equal(t, "https://github.com/x", c.Socials.At(0).URL)
}

func TestLinksRemoveReleasesBackingSlot(t *testing.T) {
	var ls Links
	a, b := &SocialLink{PlatformName: "a"}, &SocialLink{PlatformName: "b"}
	require.True(t, ls.Append(a))
	require.True(t, ls.Append(b))

	require.True(t, ls.Remove(a))
	assert.Equal(t, []string{"b"}, names(&ls))
	assert.Nil(t, ls.items[:2][1], "vacated slot must not keep the pointer")
}
