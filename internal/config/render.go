package config

import (
	"fmt"
	"strings"
)

// RenderDefaultTOML renders a TOML config with defaults from GetConfigOptions.
func RenderDefaultTOML() string {
	var b strings.Builder
	b.WriteString("# readmegen configuration (TOML)\n")

	top, sections, order := splitSections(GetConfigOptions())

	for _, o := range top {
		writeTOMLOption(&b, o)
	}
	for _, section := range order {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeTOMLOption(&b, o)
		}
	}
	return b.String()
}

// UpdateTOML appends missing defaults to an existing TOML string and comments out unknown keys.
func UpdateTOML(existing string) (string, bool) {
	lines := strings.Split(existing, "\n")
	known := make(map[string]bool)
	for _, o := range GetConfigOptions() {
		known[o.Key] = true
	}

	seen := make(map[string]bool)
	currentSection := ""
	out := make([]string, 0, len(lines))
	changed := false

	for _, line := range lines {
		trim := strings.TrimSpace(line)
		if trim == "" || strings.HasPrefix(trim, "#") {
			out = append(out, line)
			continue
		}
		if isHeader(trim) {
			currentSection = strings.TrimSpace(trim[1 : len(trim)-1])
			out = append(out, line)
			continue
		}
		key, ok := parseTOMLKey(line)
		if !ok {
			out = append(out, line)
			continue
		}
		fullKey := key
		if currentSection != "" {
			fullKey = currentSection + "." + key
		}
		seen[fullKey] = true
		if !known[fullKey] {
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"# OUTDATED: option removed from config schema")
			out = append(out, indent+"# "+strings.TrimLeft(line, " \t"))
			changed = true
			continue
		}
		out = append(out, line)
	}

	missing := make([]ConfigOption, 0)
	for _, o := range GetConfigOptions() {
		if !seen[o.Key] {
			missing = append(missing, o)
		}
	}
	if len(missing) == 0 {
		return strings.Join(out, "\n"), changed
	}

	top, sections, order := splitSections(missing)
	if len(top) > 0 {
		// Top-level keys must precede the first table header.
		out = insertLines(out, firstSection(out), optionLines(top))
	}
	var appended strings.Builder
	for _, section := range order {
		if at, ok := sectionEnd(out, section); ok {
			out = insertLines(out, at, optionLines(sections[section]))
			continue
		}
		appended.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeTOMLOption(&appended, o)
		}
	}
	result := strings.Join(out, "\n")
	if appended.Len() > 0 {
		result += "\n# Added by config update\n" + appended.String()
	}
	return result, true
}

func optionLines(opts []ConfigOption) []string {
	var b strings.Builder
	for _, o := range opts {
		writeTOMLOption(&b, o)
	}
	return append(strings.Split(strings.TrimRight(b.String(), "\n"), "\n"), "")
}

func insertLines(lines []string, at int, block []string) []string {
	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:at]...)
	out = append(out, block...)
	return append(out, lines[at:]...)
}

func isHeader(line string) bool {
	trim := strings.TrimSpace(line)
	return strings.HasPrefix(trim, "[") && strings.HasSuffix(trim, "]")
}

func firstSection(lines []string) int {
	for i, line := range lines {
		if isHeader(line) {
			return i
		}
	}
	return len(lines)
}

// sectionEnd returns the index just past the body of [section].
func sectionEnd(lines []string, section string) (int, bool) {
	for i, line := range lines {
		if !isHeader(line) {
			continue
		}
		trim := strings.TrimSpace(line)
		if strings.TrimSpace(trim[1:len(trim)-1]) != section {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if isHeader(lines[j]) {
				return j, true
			}
		}
		return len(lines), true
	}
	return 0, false
}

// splitSections groups dotted keys by their first segment, keeping option order.
func splitSections(opts []ConfigOption) ([]ConfigOption, map[string][]ConfigOption, []string) {
	top := make([]ConfigOption, 0, len(opts))
	sections := make(map[string][]ConfigOption)
	order := make([]string, 0)
	for _, o := range opts {
		section, key, ok := strings.Cut(o.Key, ".")
		if !ok {
			top = append(top, o)
			continue
		}
		if _, exists := sections[section]; !exists {
			order = append(order, section)
		}
		sections[section] = append(sections[section], ConfigOption{Key: key, Default: o.Default, Comment: o.Comment})
	}
	return top, sections, order
}

func parseTOMLKey(line string) (string, bool) {
	idx := strings.Index(line, "=")
	if idx == -1 {
		return "", false
	}
	key := strings.TrimSpace(line[:idx])
	if key == "" || strings.HasPrefix(key, "[") {
		return "", false
	}
	if strings.HasPrefix(key, "\"") || strings.HasPrefix(key, "'") {
		return "", false
	}
	return key, true
}

func writeTOMLOption(b *strings.Builder, o ConfigOption) {
	if o.Comment != "" {
		b.WriteString("# " + o.Comment + "\n")
	}
	b.WriteString(o.Key + " = " + tomlValue(o.Default) + "\n\n")
}

func tomlValue(value any) string {
	switch v := value.(type) {
	case string:
		return tomlQuote(v)
	case []string:
		quoted := make([]string, len(v))
		for i, s := range v {
			quoted[i] = tomlQuote(s)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// tomlQuote renders s as a TOML basic string. Control characters without a
// short escape are written as \uXXXX.
func tomlQuote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
