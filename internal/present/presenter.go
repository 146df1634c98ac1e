package present

import (
	"io"

	"github.com/mithrel/readmegen/internal/present/format"
	"github.com/mithrel/readmegen/internal/theme"
)

type Mode int

const (
	ModeRaw Mode = iota
	ModePretty
)

type Options struct {
	Mode     Mode
	Theme    theme.Theme
	WordWrap int
}

// ParseMode parses "raw" or "pretty".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "raw", "markdown", "md":
		return ModeRaw, true
	case "pretty":
		return ModePretty, true
	default:
		return ModeRaw, false
	}
}

func (m Mode) String() string {
	if m == ModePretty {
		return "pretty"
	}
	return "raw"
}

// RenderReadme writes generated markdown according to options.
func RenderReadme(w io.Writer, md string, opts Options) error {
	switch opts.Mode {
	case ModePretty:
		return format.WritePretty(w, md, opts.Theme, opts.WordWrap)
	default:
		return format.WriteRaw(w, md)
	}
}
