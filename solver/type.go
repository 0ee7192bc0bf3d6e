// Package solver implements the two evolutionary N-Queens solvers: the
// elitist best-pair (Adam & Eve) genetic algorithm and the tournament
// genetic algorithm with stagnation-triggered population resets.
package solver

import (
	"context"
	"fmt"

	"github.com/lixenwraith/nqueens/parameter"
	"github.com/lixenwraith/nqueens/progress"
)

// Algorithm names as the original driver passes them on the command line.
const (
	AlgorithmElitist    = "Genetic"
	AlgorithmTournament = "Tournament"
)

// Solver is the shared capability surface of both controller variants.
type Solver interface {
	// Solve runs the evolution loop for an n×n board. The context is polled
	// once per generation; cancellation returns the best result so far
	// alongside the context error.
	Solve(ctx context.Context, n int) (*RunResult, error)
}

// CrossoverKind selects the recombination operator for the tournament
// solver. The elitist solver always alternates PMX and OX.
type CrossoverKind string

const (
	CrossoverRange CrossoverKind = "range"
	CrossoverPMX   CrossoverKind = "pmx"
	CrossoverOX    CrossoverKind = "ox"
)

// Options carries the tunables shared by both solvers. Zero values fall back
// to the parameter package defaults at Solve time.
type Options struct {
	// Seed is the master seed; 0 picks a random seed and records it in the
	// result.
	Seed uint64

	// Parallelism bounds the reproduction fan-out; 0 uses GOMAXPROCS.
	Parallelism int

	// MaxGenerations caps the run; 0 uses parameter.MaxGenerations.
	MaxGenerations int

	// PopulationSize overrides the N-scaled population when positive.
	PopulationSize int

	// GreedySeeding switches initial boards from uniform random to the
	// constraint-aware generator.
	GreedySeeding bool

	// Crossover selects the tournament solver's operator; empty keeps the
	// range-copy default.
	Crossover CrossoverKind

	// InitialMutationRate and MaxMutationRate drive the adaptive policy;
	// zero values use the parameter defaults.
	InitialMutationRate float64
	MaxMutationRate     float64

	// Stagnation thresholds; zero values use the parameter defaults.
	StagnationLow   int
	StagnationHigh  int
	StagnationReset int

	// Tracker, when non-nil, receives per-generation progress.
	Tracker *progress.Tracker
}

func (o Options) withDefaults() Options {
	if o.MaxGenerations <= 0 {
		o.MaxGenerations = parameter.MaxGenerations
	}
	if o.InitialMutationRate <= 0 {
		o.InitialMutationRate = parameter.InitialMutationRate
	}
	if o.MaxMutationRate <= 0 {
		o.MaxMutationRate = parameter.MaxMutationRate
	}
	if o.StagnationLow <= 0 {
		o.StagnationLow = parameter.StagnationThresholdLow
	}
	if o.StagnationHigh <= 0 {
		o.StagnationHigh = parameter.StagnationThresholdHigh
	}
	if o.StagnationReset <= 0 {
		o.StagnationReset = parameter.StagnationFullReset
	}
	if o.Crossover == "" {
		o.Crossover = CrossoverRange
	}
	return o
}

// New returns the solver registered under the given algorithm name.
func New(algorithm string, opts Options) (Solver, error) {
	switch algorithm {
	case AlgorithmElitist:
		return NewElitist(opts), nil
	case AlgorithmTournament:
		return NewTournament(opts), nil
	default:
		return nil, fmt.Errorf("solver: unknown algorithm %q (want %s or %s)",
			algorithm, AlgorithmElitist, AlgorithmTournament)
	}
}

func clampPopulation(n, scale, lo, hi int) int {
	size := n * scale
	if size < lo {
		size = lo
	}
	if size > hi {
		size = hi
	}
	return size
}
