package render

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mithrel/readmegen/pkg/api"
)

const (
	shieldsBase = "https://img.shields.io/badge/"
	statsBase   = "https://github-readme-stats.vercel.app/api"
)

// Section headings, in rendering order.
const (
	HeadingAbout   = "## 🚀 About Me"
	HeadingSkills  = "## 🛠️ Skills & Tools"
	HeadingConnect = "## 🔗 Connect with Me"
	HeadingStats   = "## 📊 GitHub Stats"
)

// Logo lower-cases a platform name for the shields.io logo parameter.
// A Caser holds state, so each call gets its own.
func Logo(platform string) string {
	return cases.Lower(language.Und).String(platform)
}

// SkillBadgeURL is the blue badge used in the skills section.
func SkillBadgeURL(platform string) string {
	return shieldsBase + platform + "-blue?style=for-the-badge&logo=" + Logo(platform)
}

// SocialBadgeURL is the white badge used in the connect section.
func SocialBadgeURL(platform string) string {
	return shieldsBase + platform + "-white?style=for-the-badge&logo=" + Logo(platform)
}

func StatsCardURL(username string) string {
	return statsBase + "?username=" + username + "&show_icons=true&theme=radical"
}

func TopLanguagesCardURL(username string) string {
	return statsBase + "/top-langs/?username=" + username + "&layout=compact&theme=radical"
}

// Markdown renders the profile README. Values are interpolated as-is:
// nothing is escaped or URL-encoded.
func Markdown(p *api.Profile) string {
	var b strings.Builder

	b.WriteString("# Hi, I'm " + p.Name + " 👋\n")
	b.WriteString("### " + p.Tagline + "\n")
	b.WriteString("\n")

	b.WriteString(HeadingAbout + "\n")
	b.WriteString(p.AboutMe + "\n")
	b.WriteString("\n")

	b.WriteString(HeadingSkills + "\n")
	if p.Skills.Len() > 0 {
		for _, s := range p.Skills.Items() {
			b.WriteString("![" + s.PlatformName + "](" + SkillBadgeURL(s.PlatformName) + ") ")
		}
		b.WriteString("\n\n")
	}

	b.WriteString(HeadingConnect + "\n")
	if p.Socials.Len() > 0 {
		for _, s := range p.Socials.Items() {
			b.WriteString("<a href='" + s.URL + "' target='_blank'>")
			b.WriteString("<img src='" + SocialBadgeURL(s.PlatformName) + "' alt='" + s.PlatformName + "'/></a> ")
		}
		b.WriteString("\n\n")
	}

	if p.ShowGitHubStats || p.ShowTopLanguages {
		b.WriteString(HeadingStats + "\n")
		if p.ShowGitHubStats {
			b.WriteString("![" + p.GitHubUsername + "'s GitHub Stats](" + StatsCardURL(p.GitHubUsername) + ")\n")
		}
		if p.ShowTopLanguages {
			b.WriteString("![Top Languages](" + TopLanguagesCardURL(p.GitHubUsername) + ")\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
