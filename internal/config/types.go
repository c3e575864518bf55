package config

// Limits caps the loop traversals. Both walks fail once they pass their limit.
type Limits struct {
	PairSteps int `yaml:"pair_steps"`
	LoopSteps int `yaml:"loop_steps"`
}

// Solver selects how the enclosed cells are counted.
type Solver struct {
	Method  string `yaml:"method"`
	Workers int    `yaml:"workers"`
}

// Log configures the default logger.
type Log struct {
	Level string `yaml:"level"`
}

// Config represents the .aoc/config.yaml file.
type Config struct {
	Limits Limits `yaml:"limits"`
	Solver Solver `yaml:"solver"`
	Log    Log    `yaml:"log"`
}

// Interior counting methods.
const (
	MethodRaycast  = "raycast"
	MethodArea     = "area"
	MethodParallel = "parallel"
)

// Methods lists every accepted solver method.
var Methods = []string{MethodRaycast, MethodArea, MethodParallel}
