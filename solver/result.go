package solver

import (
	"fmt"
	"time"
)

// RunResult is the public outcome of one solver run, consumed by the CLI
// driver, the CSV exporter, and the TUI.
type RunResult struct {
	Algorithm string
	N         int
	Seed      uint64

	// BestState is the best placement ever observed, not the final
	// generation's best.
	BestState []int
	Conflicts int

	Generations int
	Elapsed     time.Duration

	// Complexity is generations × populationSize × N, divided by the
	// parallelism degree for the elitist solver.
	Complexity float64

	PopulationSize      int
	InitialMutationRate float64
	FinalMutationRate   float64
	StagnationCount     int
	Reinitializations   int

	// Threshold columns carried through to the CSV export.
	StagnationThresholdLow  int
	StagnationThresholdHigh int
}

// Solved reports whether the best placement has zero conflicts. Anything
// else is reported as unsolved, never coerced to success.
func (r *RunResult) Solved() bool {
	return r.Conflicts == 0
}

// Summary renders the one-line human-readable report consumed by the
// console driver and the export pipeline.
func (r *RunResult) Summary() string {
	status := "solved"
	if !r.Solved() {
		status = fmt.Sprintf("unsolved (%d conflicts)", r.Conflicts)
	}
	return fmt.Sprintf(
		"%s solver: N=%d %s in %d generations, population=%d, elapsed=%s, complexity=%.0f (generations*population*N)",
		r.Algorithm, r.N, status, r.Generations, r.PopulationSize, r.Elapsed.Round(time.Microsecond), r.Complexity,
	)
}
