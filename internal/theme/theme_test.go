package theme

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := map[string]Theme{
		"light":      Light,
		"Dark":       Dark,
		" COLORFUL ": Colorful,
	}
	for in, want := range cases {
		got, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("Parse(%q)=%v want %v", in, got, want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("solarized")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Fatalf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestNextWraps(t *testing.T) {
	if Light.Next() != Dark || Dark.Next() != Colorful || Colorful.Next() != Light {
		t.Fatalf("unexpected cycle")
	}
}

func TestString(t *testing.T) {
	if Colorful.String() != "colorful" {
		t.Fatalf("String=%q", Colorful.String())
	}
	if Theme(9).String() != "theme(9)" {
		t.Fatalf("String=%q", Theme(9).String())
	}
}
