package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/thruflo/aoc2023/internal/logging"
	"github.com/thruflo/aoc2023/internal/pipes"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultPairSteps = pipes.DefaultPairLimit
	DefaultLoopSteps = pipes.DefaultLoopLimit
	DefaultMethod    = MethodRaycast
	DefaultWorkers   = 4
	DefaultLogLevel  = "warn"
)

// DefaultLimits returns the traversal ceilings used when none are configured.
func DefaultLimits() Limits {
	return Limits{
		PairSteps: DefaultPairSteps,
		LoopSteps: DefaultLoopSteps,
	}
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		Limits: DefaultLimits(),
		Solver: Solver{
			Method:  DefaultMethod,
			Workers: DefaultWorkers,
		},
		Log: Log{Level: DefaultLogLevel},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Path returns the location of the config file below basePath.
func Path(basePath string) string {
	return filepath.Join(basePath, ".aoc", "config.yaml")
}

// LoadConfig reads .aoc/config.yaml from the given base path.
// If the file doesn't exist, returns default config.
// Applies defaults for any missing fields.
func LoadConfig(basePath string) (*Config, error) {
	cfg, err := LoadConfigFile(Path(basePath))
	if errors.Is(err, os.ErrNotExist) {
		d := DefaultConfig()
		return &d, nil
	}
	return cfg, err
}

// LoadConfigFile reads and validates the config file at path. A missing file
// is reported as an error wrapping os.ErrNotExist.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, os.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.Limits.PairSteps <= 0 {
		return ValidationError{Field: "limits.pair_steps", Message: "must be positive"}
	}
	if cfg.Limits.LoopSteps <= 0 {
		return ValidationError{Field: "limits.loop_steps", Message: "must be positive"}
	}
	if !slices.Contains(Methods, cfg.Solver.Method) {
		return ValidationError{Field: "solver.method", Message: fmt.Sprintf("must be one of %v", Methods)}
	}
	if cfg.Solver.Workers < 0 {
		return ValidationError{Field: "solver.workers", Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: err.Error()}
	}
	return nil
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
