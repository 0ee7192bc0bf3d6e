// Package config loads run configuration from YAML, layered over the
// parameter package defaults. Every field is optional; an absent file means
// pure defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/nqueens/parameter"
	"github.com/lixenwraith/nqueens/solver"
)

// Config mirrors solver.Options plus driver-level settings.
type Config struct {
	Algorithm      string `yaml:"algorithm"`
	Seed           uint64 `yaml:"seed"`
	Parallelism    int    `yaml:"parallelism"`
	MaxGenerations int    `yaml:"max_generations"`
	PopulationSize int    `yaml:"population_size"`

	// GreedySeeding applies to the elitist solver only; the tournament
	// solver always seeds uniformly at random.
	GreedySeeding bool `yaml:"greedy_seeding"`

	// Crossover selects the tournament solver operator: range, pmx or ox.
	Crossover string `yaml:"crossover"`

	Mutation struct {
		Initial float64 `yaml:"initial"`
		Max     float64 `yaml:"max"`
	} `yaml:"mutation"`

	Stagnation struct {
		Low   int `yaml:"low"`
		High  int `yaml:"high"`
		Reset int `yaml:"reset"`
	} `yaml:"stagnation"`

	// CSVPath is where the sweep/export rows are appended.
	CSVPath string `yaml:"csv_path"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{
		Algorithm:      solver.AlgorithmElitist,
		MaxGenerations: parameter.MaxGenerations,
		GreedySeeding:  true,
		Crossover:      string(solver.CrossoverRange),
		CSVPath:        "summary.csv",
	}
	cfg.Mutation.Initial = parameter.InitialMutationRate
	cfg.Mutation.Max = parameter.MaxMutationRate
	cfg.Stagnation.Low = parameter.StagnationThresholdLow
	cfg.Stagnation.High = parameter.StagnationThresholdHigh
	cfg.Stagnation.Reset = parameter.StagnationFullReset
	return cfg
}

// Load reads path and unmarshals it over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the solvers cannot run with.
func (c Config) Validate() error {
	if c.Algorithm != solver.AlgorithmElitist && c.Algorithm != solver.AlgorithmTournament {
		return fmt.Errorf("config: unknown algorithm %q", c.Algorithm)
	}
	switch solver.CrossoverKind(c.Crossover) {
	case solver.CrossoverRange, solver.CrossoverPMX, solver.CrossoverOX:
	default:
		return fmt.Errorf("config: unknown crossover %q", c.Crossover)
	}
	if c.Mutation.Initial < 0 || c.Mutation.Initial > 1 {
		return fmt.Errorf("config: mutation.initial %v out of [0,1]", c.Mutation.Initial)
	}
	if c.Mutation.Max < 0 || c.Mutation.Max > 1 {
		return fmt.Errorf("config: mutation.max %v out of [0,1]", c.Mutation.Max)
	}
	if c.MaxGenerations < 0 || c.PopulationSize < 0 || c.Parallelism < 0 {
		return fmt.Errorf("config: negative run bound")
	}
	return nil
}

// Options converts the configuration into solver options.
func (c Config) Options() solver.Options {
	return solver.Options{
		Seed:                c.Seed,
		Parallelism:         c.Parallelism,
		MaxGenerations:      c.MaxGenerations,
		PopulationSize:      c.PopulationSize,
		GreedySeeding:       c.GreedySeeding,
		Crossover:           solver.CrossoverKind(c.Crossover),
		InitialMutationRate: c.Mutation.Initial,
		MaxMutationRate:     c.Mutation.Max,
		StagnationLow:       c.Stagnation.Low,
		StagnationHigh:      c.Stagnation.High,
		StagnationReset:     c.Stagnation.Reset,
	}
}
