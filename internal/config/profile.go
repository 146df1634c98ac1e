package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mithrel/readmegen/pkg/api"
)

// ParseSocial splits a "Name=URL" pair. The URL itself is not validated.
func ParseSocial(s string) (name, url string, err error) {
	name, url, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", "", fmt.Errorf("social %q must look like Name=URL", s)
	}
	return name, strings.TrimSpace(url), nil
}

// SampleProfile builds the startup profile from the profile.* options.
// Malformed socials are skipped; CheckConfigValidity reports them.
func SampleProfile(v *viper.Viper) *api.Profile {
	p := api.NewProfile()
	p.Name = v.GetString("profile.name")
	p.Tagline = v.GetString("profile.tagline")
	p.AboutMe = v.GetString("profile.about_me")
	p.GitHubUsername = v.GetString("profile.github_username")
	p.ShowGitHubStats = v.GetBool("profile.show_github_stats")
	p.ShowTopLanguages = v.GetBool("profile.show_top_languages")
	for _, s := range v.GetStringSlice("profile.skills") {
		p.AddSkill(s)
	}
	for _, s := range v.GetStringSlice("profile.socials") {
		name, url, err := ParseSocial(s)
		if err != nil {
			continue
		}
		p.AddSocial(name, url)
	}
	return p
}
