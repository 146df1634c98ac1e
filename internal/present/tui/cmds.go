package tui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/readmegen/internal/editor"
	"github.com/mithrel/readmegen/internal/session"
	"github.com/mithrel/readmegen/pkg/api"
)

// copyResultMsg conveys the outcome of a clipboard write back to Update.
type copyResultMsg struct {
	bytes int
	err   error
	dur   time.Duration
}

// editorDoneMsg is sent when the external editor exits.
type editorDoneMsg struct {
	path    string
	initial []byte
	err     error
}

// copyCmd runs the session's Copy action off the UI loop.
func copyCmd(ctx context.Context, sess *session.Session) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		n, err := sess.Copy(ctx)
		return copyResultMsg{bytes: n, err: err, dur: time.Since(start)}
	}
}

// editorCmd suspends the program and opens the profile form in $EDITOR.
func editorCmd(p *api.Profile) tea.Cmd {
	path, err := editor.TempPath()
	if err != nil {
		return func() tea.Msg { return editorDoneMsg{err: err} }
	}
	initial := []byte(editor.ComposeProfile(p))
	if err := editor.PrepareAt(path, initial); err != nil {
		return func() tea.Msg { return editorDoneMsg{err: err} }
	}
	c, err := editor.Command(path)
	if err != nil {
		_ = os.Remove(path)
		return func() tea.Msg { return editorDoneMsg{err: err} }
	}
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorDoneMsg{path: path, initial: initial, err: err}
	})
}

// readEditorResult returns the edited form, or nil when nothing changed.
// The temp file is removed either way.
func readEditorResult(msg editorDoneMsg) ([]byte, error) {
	if msg.path != "" {
		defer os.Remove(msg.path)
	}
	if msg.err != nil {
		return nil, msg.err
	}
	out, changed, err := editor.ReadResult(msg.path, msg.initial)
	if err != nil || !changed {
		return nil, err
	}
	return out, nil
}
