package config

import (
	"os"
	"path/filepath"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// Sample profile shown at startup until the user edits it.
var (
	defaultSkills  = []string{"Go", "Docker", "Git", "Linux"}
	defaultSocials = []string{"GitHub=https://github.com/octocat", "LinkedIn=https://linkedin.com/in/your-username"}
)

// GetConfigOptions returns the configuration options, their defaults and meanings.
// This is the single source of truth for viper defaults and generated TOML.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "theme", Default: "dark", Comment: "Preview and editor theme: light, dark or colorful"},
		{Key: "output", Default: "raw", Comment: "Default output for generate: raw or pretty"},

		{Key: "preview.word_wrap", Default: 80, Comment: "Column width used by the pretty preview"},

		{Key: "log.level", Default: "info", Comment: "Log level: debug, info, warn, error or off"},
		{Key: "log.format", Default: "text", Comment: "Log format: text or json"},
		{Key: "log.file", Default: "", Comment: "Log file used by the editor TUI; empty discards logs"},

		{Key: "profile.name", Default: "Octo Cat", Comment: "Display name in the README header"},
		{Key: "profile.tagline", Default: "Software Developer | Tech Enthusiast", Comment: "Line shown under the header"},
		{Key: "profile.about_me", Default: "Hi there! I'm a passionate developer who loves building amazing things.\nWelcome to my profile!", Comment: "About Me text; newlines are kept"},
		{Key: "profile.github_username", Default: "octocat", Comment: "GitHub user for the stats cards"},
		{Key: "profile.show_github_stats", Default: true, Comment: "Include the GitHub stats card"},
		{Key: "profile.show_top_languages", Default: true, Comment: "Include the top languages card"},
		{Key: "profile.skills", Default: defaultSkills, Comment: "Skill badges, in order"},
		{Key: "profile.socials", Default: defaultSocials, Comment: "Social links as Name=URL, in order"},
	}
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "readmegen", "config.toml")
}
