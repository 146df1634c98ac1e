package clipboard

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"
)

// ErrUnavailable means neither the system clipboard nor a terminal fallback works.
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// swapped in tests
var (
	writeAll    = clipboard.WriteAll
	unsupported = func() bool { return clipboard.Unsupported }
)

// System writes through xclip/xsel/wl-copy/pbcopy/win32 and falls back to an
// OSC 52 escape sequence when a terminal is attached.
type System struct {
	// Fallback receives the OSC 52 sequence; nil disables the fallback.
	Fallback io.Writer
	// Tmux wraps the sequence in a tmux passthrough.
	Tmux bool
}

// NewSystem enables the OSC 52 fallback only when out is a terminal.
func NewSystem(out *os.File) *System {
	s := &System{Tmux: os.Getenv("TMUX") != ""}
	if out != nil && term.IsTerminal(int(out.Fd())) {
		s.Fallback = out
	}
	return s
}

func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var sysErr error
	if !unsupported() {
		if sysErr = writeAll(text); sysErr == nil {
			return nil
		}
	}
	if s.Fallback == nil {
		if sysErr != nil {
			return fmt.Errorf("%w: %v", ErrUnavailable, sysErr)
		}
		return ErrUnavailable
	}
	seq := osc52.New(text)
	if s.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(s.Fallback); err != nil {
		return fmt.Errorf("osc52 write: %w", err)
	}
	return nil
}

// Memory keeps the last copied text; used by tests and dry runs.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.n++
	return nil
}

// Text returns the last copied text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Count returns how many writes happened.
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}
