package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	aocDir := filepath.Join(tmpDir, ".aoc")
	require.NoError(t, os.MkdirAll(aocDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(aocDir, "config.yaml"), []byte(content), 0o644))
	return tmpDir
}

func TestLoadConfig_Default(t *testing.T) {
	t.Parallel()

	// Create temp directory without config file
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultPairSteps, cfg.Limits.PairSteps)
	assert.Equal(t, DefaultLoopSteps, cfg.Limits.LoopSteps)
	assert.Equal(t, MethodRaycast, cfg.Solver.Method)
	assert.Equal(t, DefaultWorkers, cfg.Solver.Workers)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig_ValidFile(t *testing.T) {
	t.Parallel()

	tmpDir := writeConfig(t, `limits:
  pair_steps: 200
  loop_steps: 400
solver:
  method: parallel
  workers: 8
log:
  level: debug
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Limits.PairSteps)
	assert.Equal(t, 400, cfg.Limits.LoopSteps)
	assert.Equal(t, MethodParallel, cfg.Solver.Method)
	assert.Equal(t, 8, cfg.Solver.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfig_PartialFile(t *testing.T) {
	t.Parallel()

	// Only set the method, rest should keep defaults
	tmpDir := writeConfig(t, `solver:
  method: area
`)

	cfg, err := LoadConfig(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, MethodArea, cfg.Solver.Method)
	assert.Equal(t, DefaultWorkers, cfg.Solver.Workers)
	assert.Equal(t, DefaultLimits(), cfg.Limits)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := writeConfig(t, `limits: [`)

	_, err := LoadConfig(tmpDir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfig_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name: "zero pair_steps",
			content: `limits:
  pair_steps: 0
`,
			field: "limits.pair_steps",
		},
		{
			name: "negative loop_steps",
			content: `limits:
  loop_steps: -5
`,
			field: "limits.loop_steps",
		},
		{
			name: "unknown method",
			content: `solver:
  method: flood
`,
			field: "solver.method",
		},
		{
			name: "negative workers",
			content: `solver:
  workers: -1
`,
			field: "solver.workers",
		},
		{
			name: "unknown log level",
			content: `log:
  level: chatty
`,
			field: "log.level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, IsValidationError(err))

			var ve ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestLoadConfigFile_NotFound(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("base", ".aoc", "config.yaml"), Path("base"))
}

func TestValidationError_Error(t *testing.T) {
	t.Parallel()

	err := ValidationError{Field: "solver.workers", Message: "must not be negative"}
	assert.Equal(t, "validation error: solver.workers: must not be negative", err.Error())
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidationError(ValidationError{Field: "x", Message: "y"}))
	assert.False(t, IsValidationError(errors.New("plain")))
	assert.False(t, IsValidationError(nil))
}
