package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestDir creates a temporary directory with an .aoc/config.yaml holding
// test defaults. The directory is removed when the test completes.
func SetupTestDir(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()
	aocDir := filepath.Join(tmpDir, ".aoc")
	require.NoError(t, os.MkdirAll(aocDir, 0o755))

	configContent := `limits:
  pair_steps: 500
  loop_steps: 1000
solver:
  method: raycast
  workers: 2
log:
  level: error
`
	require.NoError(t, os.WriteFile(filepath.Join(aocDir, "config.yaml"), []byte(configContent), 0o644))

	return tmpDir
}

// WriteInputFile writes a puzzle input below dir and returns its path.
func WriteInputFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
