package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/readmegen/internal/theme"
)

const md = "# Hi, I'm Octo 👋\n### Builder\n\n## 🚀 About Me\nLine1\nLine2\n\n"

func TestWriteRawIsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRaw(&buf, md))
	assert.Equal(t, md, buf.String())
}

func TestWritePretty(t *testing.T) {
	for _, th := range theme.All() {
		var buf bytes.Buffer
		require.NoError(t, WritePretty(&buf, md, th, 60), th.String())
		out := buf.String()
		assert.Contains(t, out, "Octo", th.String())
		assert.Contains(t, out, "About", th.String())
	}
}

func TestPrettyWraps(t *testing.T) {
	long := strings.Repeat("word ", 60)
	out, err := Pretty(long, theme.Dark, 40)
	require.NoError(t, err)
	assert.Greater(t, strings.Count(strings.TrimSpace(out), "\n"), 2)
}

func TestGlamourStyle(t *testing.T) {
	assert.Equal(t, "light", GlamourStyle(theme.Light))
	assert.Equal(t, "dark", GlamourStyle(theme.Dark))
	assert.Equal(t, "dracula", GlamourStyle(theme.Colorful))
}
