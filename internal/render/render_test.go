package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/aoc2023/internal/pipes"
	"github.com/thruflo/aoc2023/internal/testutil"
)

func TestLoop_Plain(t *testing.T) {
	t.Parallel()

	loop, err := pipes.TraceLoop(pipes.Parse(testutil.Diamond))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Loop(&buf, loop, Options{}))

	want := strings.Join([]string{
		"OOOOO",
		"O┌─┐O",
		"O│I│O",
		"O└─┘O",
		"OOOOO",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestLoop_InteriorCount(t *testing.T) {
	t.Parallel()

	for _, fx := range testutil.Fixtures() {
		t.Run(fx.Name, func(t *testing.T) {
			t.Parallel()

			loop, err := pipes.TraceLoop(pipes.Parse(fx.Input))
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Loop(&buf, loop, Options{}))

			out := buf.String()
			assert.Equal(t, fx.Interior, strings.Count(out, string(InteriorGlyph)))
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			assert.Len(t, lines, loop.Grid().Height())
		})
	}
}

func TestLoop_Color(t *testing.T) {
	t.Parallel()

	loop, err := pipes.TraceLoop(pipes.Parse(testutil.Diamond))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Loop(&buf, loop, Options{Color: true}))

	out := buf.String()
	assert.Contains(t, out, ansiBold+ansiYellow+"┌"+ansiReset)
	assert.Contains(t, out, ansiBold+ansiGreen+"I"+ansiReset)
	assert.Contains(t, out, ansiDim+"O"+ansiReset)
}

func TestColorEnabled_NotTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, ColorEnabled(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, ColorEnabled(f))
}
