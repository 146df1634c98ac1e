package theme

import (
	"errors"
	"fmt"
	"strings"
)

// Theme selects the look of the preview and the editor chrome.
type Theme int

const (
	Light Theme = iota
	Dark
	Colorful
)

var ErrUnknownTheme = errors.New("unknown theme")

var names = [...]string{"light", "dark", "colorful"}

// All returns every theme in cycling order.
func All() []Theme { return []Theme{Light, Dark, Colorful} }

func (t Theme) String() string {
	if t < Light || t > Colorful {
		return fmt.Sprintf("theme(%d)", int(t))
	}
	return names[t]
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	return Theme((int(t) + 1) % len(names))
}

// Parse accepts a theme name in any case.
func Parse(s string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == key {
			return Theme(i), nil
		}
	}
	return Light, fmt.Errorf("%w %q (want one of %s)", ErrUnknownTheme, s, strings.Join(names[:], ", "))
}
