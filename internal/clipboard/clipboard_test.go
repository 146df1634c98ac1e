package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubSystem(t *testing.T, unsup bool, err error) *string {
	t.Helper()
	var got string
	oldWrite, oldUnsup := writeAll, unsupported
	writeAll = func(s string) error {
		if err != nil {
			return err
		}
		got = s
		return nil
	}
	unsupported = func() bool { return unsup }
	t.Cleanup(func() { writeAll, unsupported = oldWrite, oldUnsup })
	return &got
}

func TestSystemUsesClipboard(t *testing.T) {
	got := stubSystem(t, false, nil)
	var term bytes.Buffer
	s := &System{Fallback: &term}
	require.NoError(t, s.WriteText(context.Background(), "# readme"))
	assert.Equal(t, "# readme", *got)
	assert.Zero(t, term.Len(), "fallback must not fire when the clipboard works")
}

func TestSystemFallsBackToOSC52(t *testing.T) {
	stubSystem(t, true, nil)
	var term bytes.Buffer
	s := &System{Fallback: &term}
	require.NoError(t, s.WriteText(context.Background(), "hello"))
	out := term.String()
	assert.True(t, strings.HasPrefix(out, "\x1b]52;c;"), "got %q", out)
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("hello")))
}

func TestSystemFallsBackOnError(t *testing.T) {
	stubSystem(t, false, errors.New("no xclip"))
	var term bytes.Buffer
	s := &System{Fallback: &term}
	require.NoError(t, s.WriteText(context.Background(), "x"))
	assert.NotZero(t, term.Len())
}

func TestSystemUnavailable(t *testing.T) {
	stubSystem(t, false, errors.New("no xclip"))
	s := &System{}
	err := s.WriteText(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "no xclip")

	stubSystem(t, true, nil)
	assert.ErrorIs(t, s.WriteText(context.Background(), "x"), ErrUnavailable)
}

func TestSystemHonorsContext(t *testing.T) {
	stubSystem(t, false, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, (&System{}).WriteText(ctx, "x"), context.Canceled)
}

func TestMemory(t *testing.T) {
	var m Memory
	require.NoError(t, m.WriteText(context.Background(), "a"))
	require.NoError(t, m.WriteText(context.Background(), "b"))
	assert.Equal(t, "b", m.Text())
	assert.Equal(t, 2, m.Count())
}
