package editor

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mithrel/readmegen/pkg/api"
)

const (
	NamePrefix     = "Name: "
	TaglinePrefix  = "Tagline: "
	GitHubPrefix   = "GitHub: "
	StatsPrefix    = "Stats: "
	LanguagePrefix = "TopLanguages: "
	SkillsPrefix   = "Skills: "
	SocialPrefix   = "Social: "
	Separator      = "---"
)

// ComposeProfile creates the text presented to the editor.
func ComposeProfile(p *api.Profile) string {
	var b bytes.Buffer
	b.WriteString("# readmegen profile\n")
	b.WriteString("# Lines starting with '#' are ignored above the '---' line.\n")
	b.WriteString("# Skills are comma-separated. Add one 'Social: <name>=<url>' line per link.\n")
	b.WriteString("# Everything after '---' becomes the About Me section.\n")
	b.WriteString(NamePrefix + p.Name + "\n")
	b.WriteString(TaglinePrefix + p.Tagline + "\n")
	b.WriteString(GitHubPrefix + p.GitHubUsername + "\n")
	b.WriteString(StatsPrefix + yesNo(p.ShowGitHubStats) + "\n")
	b.WriteString(LanguagePrefix + yesNo(p.ShowTopLanguages) + "\n")

	skills := make([]string, 0, p.Skills.Len())
	for _, s := range p.Skills.Items() {
		skills = append(skills, s.PlatformName)
	}
	b.WriteString(SkillsPrefix + strings.Join(skills, ", ") + "\n")
	for _, s := range p.Socials.Items() {
		b.WriteString(SocialPrefix + s.PlatformName + "=" + s.URL + "\n")
	}
	b.WriteString(Separator + "\n")
	if p.AboutMe != "" {
		b.WriteString(p.AboutMe)
		if !strings.HasSuffix(p.AboutMe, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ParseProfile applies the edited text to p. A missing scalar header leaves
// its field alone and a Skills line replaces the skills. The Social lines of a
// form that has the separator are the complete social list, so deleting them
// all clears it. Everything after the separator becomes AboutMe.
func ParseProfile(s string, p *api.Profile) {
	lines := strings.Split(s, "\n")
	inBody := false
	var bodyLines []string
	var socials [][2]string
	sawSocial := false

	for _, line := range lines {
		if inBody {
			bodyLines = append(bodyLines, line)
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if strings.TrimSpace(line) == Separator {
			inBody = true
			continue
		}
		key, val, ok := cutHeader(line)
		if !ok {
			// ignore other header lines
			continue
		}
		switch key {
		case prefixKey(NamePrefix):
			p.Name = val
		case prefixKey(TaglinePrefix):
			p.Tagline = val
		case prefixKey(GitHubPrefix):
			p.GitHubUsername = val
		case prefixKey(StatsPrefix):
			if b, ok := parseBool(val); ok {
				p.ShowGitHubStats = b
			}
		case prefixKey(LanguagePrefix):
			if b, ok := parseBool(val); ok {
				p.ShowTopLanguages = b
			}
		case prefixKey(SkillsPrefix):
			p.Skills.Clear()
			for _, name := range strings.Split(val, ",") {
				if n := strings.TrimSpace(name); n != "" {
					p.AddSkill(n)
				}
			}
		case prefixKey(SocialPrefix):
			sawSocial = true
			name, url, _ := strings.Cut(val, "=")
			if name = strings.TrimSpace(name); name != "" {
				socials = append(socials, [2]string{name, strings.TrimSpace(url)})
			}
		}
	}
	if sawSocial || inBody {
		p.Socials.Clear()
		for _, s := range socials {
			p.AddSocial(s[0], s[1])
		}
	}
	if inBody {
		p.AboutMe = strings.TrimRight(strings.Join(bodyLines, "\n"), "\n")
	}
}

func prefixKey(prefix string) string {
	return strings.ToLower(strings.TrimSuffix(prefix, ": "))
}

func cutHeader(line string) (key, val string, ok bool) {
	k, v, found := strings.Cut(line, ":")
	if !found {
		return "", "", false
	}
	return strings.ToLower(strings.TrimSpace(k)), strings.TrimSpace(v), true
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y", "on":
		return true, true
	case "no", "n", "off":
		return false, true
	}
	b, err := strconv.ParseBool(s)
	return b, err == nil
}

// PreferredEditor finds a suitable editor from env or common defaults.
func PreferredEditor() (string, error) {
	if v := os.Getenv("VISUAL"); v != "" {
		return v, nil
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e, nil
	}
	for _, cand := range []string{"nvim", "vim", "vi"} {
		if p, err := exec.LookPath(cand); err == nil {
			return p, nil
		}
	}
	return "", errors.New("no editor found; set $EDITOR or $VISUAL")
}

// TempPath returns a per-process path for the profile form.
func TempPath() (string, error) {
	name := fmt.Sprintf("profile-%d.readmegen.md", os.Getpid())
	if xdg := os.Getenv("XDG_RUNTIME_DIR"); xdg != "" {
		return filepath.Join(xdg, "readmegen", name), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "readmegen", "edit", name), nil
}

func writeFile0600(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, fs.FileMode(0o600))
}

// PrepareAt writes the initial content to the given path with secure perms.
func PrepareAt(path string, initial []byte) error {
	return writeFile0600(path, initial)
}

// Command builds the editor process for path without starting it.
// VISUAL/EDITOR run through a shell so flags such as "--wait" work.
func Command(path string) (*exec.Cmd, error) {
	ed := os.Getenv("VISUAL")
	if ed == "" {
		ed = os.Getenv("EDITOR")
	}
	if strings.TrimSpace(ed) != "" {
		cmd := exec.Command("sh", "-c", "$EDITORCMD \"$FILEPATH\"")
		cmd.Env = append(os.Environ(), "EDITORCMD="+ed, "FILEPATH="+path)
		return cmd, nil
	}
	prog, err := PreferredEditor()
	if err != nil {
		return nil, err
	}
	return exec.Command(prog, path), nil
}

// OpenAt opens the editor at path with initial content and returns final bytes and whether it changed.
func OpenAt(path string, initial []byte) (final []byte, changed bool, err error) {
	if err := PrepareAt(path, initial); err != nil {
		return nil, false, err
	}
	cmd, err := Command(path)
	if err != nil {
		return nil, false, err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, false, err
	}
	return ReadResult(path, initial)
}

// ReadResult reads back an edited file and reports whether it differs from initial.
func ReadResult(path string, initial []byte) ([]byte, bool, error) {
	out, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	return out, !bytes.Equal(out, initial), nil
}
