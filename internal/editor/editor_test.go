package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mithrel/readmegen/pkg/api"
)

func sample() *api.Profile {
	p := api.NewProfile()
	p.Name = "Octo Cat"
	p.Tagline = "Builder | Tinkerer"
	p.GitHubUsername = "octocat"
	p.ShowTopLanguages = false
	p.AboutMe = "Line 1\nLine 2"
	p.AddSkill("Go")
	p.AddSkill("Docker")
	p.AddSocial("GitHub", "https://github.com/octocat")
	return p
}

func TestComposeProfile(t *testing.T) {
	content := ComposeProfile(sample())
	for _, want := range []string{
		"Name: Octo Cat\n",
		"Tagline: Builder | Tinkerer\n",
		"Stats: yes\n",
		"TopLanguages: no\n",
		"Skills: Go, Docker\n",
		"Social: GitHub=https://github.com/octocat\n",
		"---\nLine 1\nLine 2\n",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in %q", want, content)
		}
	}
}

func TestComposeParseRoundTrip(t *testing.T) {
	orig := sample()
	got := api.NewProfile()
	ParseProfile(ComposeProfile(orig), got)
	if got.Hash() != orig.Hash() {
		t.Fatalf("round trip changed the profile:\n%s", ComposeProfile(got))
	}
}

func TestParseProfileEdits(t *testing.T) {
	input := `# comment line
Name: New Name
tagline:   spaced out
Stats: off
TopLanguages: true
Skills: Rust, , Zig
Social: Mastodon = https://fosstodon.org/@me
Social: Blog
Unknown: ignored
---
# not a comment in the body

Body line
`
	p := sample()
	ParseProfile(input, p)
	if p.Name != "New Name" || p.Tagline != "spaced out" {
		t.Fatalf("name=%q tagline=%q", p.Name, p.Tagline)
	}
	if p.GitHubUsername != "octocat" {
		t.Fatalf("missing header must keep field, got %q", p.GitHubUsername)
	}
	if p.ShowGitHubStats || !p.ShowTopLanguages {
		t.Fatalf("flags stats=%v langs=%v", p.ShowGitHubStats, p.ShowTopLanguages)
	}
	if p.Skills.Len() != 2 || p.Skills.At(0).PlatformName != "Rust" || p.Skills.At(1).PlatformName != "Zig" {
		t.Fatalf("skills=%v", p.Skills.Items())
	}
	if p.Socials.Len() != 2 {
		t.Fatalf("socials len=%d", p.Socials.Len())
	}
	if s := p.Socials.At(0); s.PlatformName != "Mastodon" || s.URL != "https://fosstodon.org/@me" {
		t.Fatalf("social[0]=%+v", s)
	}
	if s := p.Socials.At(1); s.PlatformName != "Blog" || s.URL != "" {
		t.Fatalf("social[1]=%+v", s)
	}
	if p.AboutMe != "# not a comment in the body\n\nBody line" {
		t.Fatalf("about=%q", p.AboutMe)
	}
}

func TestRoundTripSocialNameWithSpaces(t *testing.T) {
	orig := sample()
	orig.AddSocial("Stack Overflow", "https://stackoverflow.com/u/1?tab=profile")
	got := api.NewProfile()
	ParseProfile(ComposeProfile(orig), got)
	if got.Socials.Len() != 2 {
		t.Fatalf("socials len=%d", got.Socials.Len())
	}
	if s := got.Socials.At(1); s.PlatformName != "Stack Overflow" || s.URL != "https://stackoverflow.com/u/1?tab=profile" {
		t.Fatalf("social[1]=%+v", s)
	}
}

func TestParseProfileDeletingAllSocialsClearsThem(t *testing.T) {
	p := sample()
	form := strings.ReplaceAll(ComposeProfile(p), "Social: GitHub=https://github.com/octocat\n", "")
	ParseProfile(form, p)
	if p.Socials.Len() != 0 {
		t.Fatalf("socials should be cleared, got %d", p.Socials.Len())
	}
	if p.Skills.Len() != 2 {
		t.Fatalf("skills changed: %d", p.Skills.Len())
	}
}

func TestParseProfileKeepsListsWithoutHeaders(t *testing.T) {
	p := sample()
	ParseProfile("Name: Only Name\n", p)
	if p.Skills.Len() != 2 || p.Socials.Len() != 1 {
		t.Fatalf("lists should be untouched: skills=%d socials=%d", p.Skills.Len(), p.Socials.Len())
	}
	if p.AboutMe != "Line 1\nLine 2" {
		t.Fatalf("about changed without a body: %q", p.AboutMe)
	}
}

func TestParseBool(t *testing.T) {
	for in, want := range map[string]bool{"yes": true, "No": false, "on": true, "1": true, "false": false} {
		got, ok := parseBool(in)
		if !ok || got != want {
			t.Fatalf("parseBool(%q)=%v,%v", in, got, ok)
		}
	}
	if _, ok := parseBool("maybe"); ok {
		t.Fatalf("maybe should not parse")
	}
}

func TestTempPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)
	path, err := TempPath()
	if err != nil {
		t.Fatalf("TempPath error: %v", err)
	}
	if !strings.HasPrefix(path, filepath.Join(dir, "readmegen")) || !strings.HasSuffix(path, ".readmegen.md") {
		t.Fatalf("TempPath=%q", path)
	}
}

func TestOpenAtWithScriptedEditor(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "ed.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\nsed -i 's/^Name: .*/Name: Edited/' \"$1\"\n"), 0o700); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VISUAL", script)
	path := filepath.Join(dir, "form.md")
	initial := []byte(ComposeProfile(sample()))

	out, changed, err := OpenAt(path, initial)
	if err != nil {
		t.Fatalf("OpenAt: %v", err)
	}
	if !changed {
		t.Fatalf("expected change")
	}
	p := sample()
	ParseProfile(string(out), p)
	if p.Name != "Edited" {
		t.Fatalf("name=%q", p.Name)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("perm=%v", info.Mode().Perm())
	}
}

func TestCommandUsesShellForVisual(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")
	cmd, err := Command("/tmp/x.md")
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(cmd.Path) != "sh" {
		t.Fatalf("expected sh wrapper, got %q", cmd.Path)
	}
	found := false
	for _, e := range cmd.Env {
		if e == "EDITORCMD=code --wait" {
			found = true
		}
	}
	if !found {
		t.Fatalf("EDITORCMD not passed")
	}
}
