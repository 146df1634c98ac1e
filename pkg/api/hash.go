package api

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the profile content.
// Field order is fixed; list order matters because it is the rendering order.
func (p *Profile) Hash() string {
	h := blake3.New()

	writeField(h, p.Name)
	writeField(h, p.Tagline)
	writeField(h, p.AboutMe)
	writeField(h, p.GitHubUsername)
	h.Write([]byte{boolByte(p.ShowGitHubStats), boolByte(p.ShowTopLanguages)})

	for _, l := range p.Skills.items {
		writeLink(h, l)
	}
	h.Write([]byte{1}) // end of skills

	for _, l := range p.Socials.items {
		writeLink(h, l)
	}
	h.Write([]byte{1})

	return hex.EncodeToString(h.Sum(nil))
}

func writeLink(h *blake3.Hasher, l *SocialLink) {
	writeField(h, l.PlatformName)
	writeField(h, l.URL)
	writeField(h, l.BadgeURL)
}

func writeField(h *blake3.Hasher, s string) {
	h.Write([]byte(s))
	h.Write([]byte{0})
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
