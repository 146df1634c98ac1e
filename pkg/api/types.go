package api

// SocialLink is a skill badge or a social profile link.
type SocialLink struct {
	PlatformName string `json:"platform_name"`
	URL          string `json:"url,omitempty"`      // socials only; skills ignore it
	BadgeURL     string `json:"badge_url,omitempty"` // reserved, not rendered

	owner *Links
}

// Links is an ordered list of entries owned by a single profile.
// The zero value is an empty list ready to use.
type Links struct {
	items []*SocialLink
}

// Append adds l as the last element. It reports false when l is nil or
// already belongs to a list.
func (ls *Links) Append(l *SocialLink) bool {
	if l == nil || l.owner != nil {
		return false
	}
	l.owner = ls
	ls.items = append(ls.items, l)
	return true
}

// Remove drops l by identity. Removing an entry that is not in the list is a no-op.
func (ls *Links) Remove(l *SocialLink) bool {
	i := ls.IndexOf(l)
	if i < 0 {
		return false
	}
	last := len(ls.items) - 1
	copy(ls.items[i:], ls.items[i+1:])
	ls.items[last] = nil
	ls.items = ls.items[:last]
	l.owner = nil
	return true
}

// IndexOf returns the position of l, or -1.
func (ls *Links) IndexOf(l *SocialLink) int {
	if l == nil || l.owner != ls {
		return -1
	}
	for i, it := range ls.items {
		if it == l {
			return i
		}
	}
	return -1
}

// Move relocates the entry at from to position to, shifting the rest.
// Out of range indexes leave the list untouched.
func (ls *Links) Move(from, to int) bool {
	n := len(ls.items)
	if from < 0 || from >= n || to < 0 || to >= n || from == to {
		return false
	}
	it := ls.items[from]
	ls.items = append(ls.items[:from], ls.items[from+1:]...)
	ls.items = append(ls.items[:to], append([]*SocialLink{it}, ls.items[to:]...)...)
	return true
}

// Clear empties the list and releases ownership of every entry.
func (ls *Links) Clear() {
	for _, it := range ls.items {
		it.owner = nil
	}
	ls.items = nil
}

func (ls *Links) Len() int { return len(ls.items) }

func (ls *Links) At(i int) *SocialLink {
	if i < 0 || i >= len(ls.items) {
		return nil
	}
	return ls.items[i]
}

// Items returns a copy of the entry slice; the entries themselves are shared.
func (ls *Links) Items() []*SocialLink {
	out := make([]*SocialLink, len(ls.items))
	copy(out, ls.items)
	return out
}

// Profile holds everything needed to produce a GitHub profile README.
type Profile struct {
	Name             string
	Tagline          string
	AboutMe          string
	GitHubUsername   string
	ShowGitHubStats  bool
	ShowTopLanguages bool
	Skills           Links
	Socials          Links
}

// NewProfile returns an empty profile with both stats cards enabled.
func NewProfile() *Profile {
	return &Profile{ShowGitHubStats: true, ShowTopLanguages: true}
}

// AddSkill appends a new skill entry and returns it.
func (p *Profile) AddSkill(name string) *SocialLink {
	l := &SocialLink{PlatformName: name}
	p.Skills.Append(l)
	return l
}

// AddSocial appends a new social entry and returns it.
func (p *Profile) AddSocial(name, url string) *SocialLink {
	l := &SocialLink{PlatformName: name, URL: url}
	p.Socials.Append(l)
	return l
}

// Clone deep-copies the profile so no entry is shared with the original.
func (p *Profile) Clone() *Profile {
	c := &Profile{
		Name:             p.Name,
		Tagline:          p.Tagline,
		AboutMe:          p.AboutMe,
		GitHubUsername:   p.GitHubUsername,
		ShowGitHubStats:  p.ShowGitHubStats,
		ShowTopLanguages: p.ShowTopLanguages,
	}
	for _, s := range p.Skills.items {
		c.Skills.Append(&SocialLink{PlatformName: s.PlatformName, URL: s.URL, BadgeURL: s.BadgeURL})
	}
	for _, s := range p.Socials.items {
		c.Socials.Append(&SocialLink{PlatformName: s.PlatformName, URL: s.URL, BadgeURL: s.BadgeURL})
	}
	return c
}
