package parameter

// Population sizing: population size scales with board size N, clamped to
// per-solver bounds.
const (
	// ElitistPopulationScale multiplies N for the elitist solver's population
	ElitistPopulationScale = 10

	// ElitistPopulationMin is the smallest elitist population
	ElitistPopulationMin = 50

	// ElitistPopulationMax caps the elitist population for large N
	ElitistPopulationMax = 500

	// TournamentPopulationScale multiplies N for the tournament solver
	TournamentPopulationScale = 5

	// TournamentPopulationMin is the smallest tournament population
	TournamentPopulationMin = 50

	// TournamentPopulationMax caps the tournament population
	TournamentPopulationMax = 300
)

// Mutation control
const (
	// InitialMutationRate is the adaptive base rate, restored on improvement
	InitialMutationRate = 0.10

	// MaxMutationRate caps both the adaptive rate and the effective probability
	MaxMutationRate = 0.90

	// AdaptiveMutationSlope scales the log(stagnation) probability boost
	AdaptiveMutationSlope = 0.05

	// FixedMutationProbability is the tournament solver's coin-flip gate
	FixedMutationProbability = 0.50

	// MutationScaleMid multiplies the rate between the low and high thresholds
	MutationScaleMid = 1.05

	// MutationScaleHigh multiplies the rate above the high threshold
	MutationScaleHigh = 1.10
)

// Stagnation thresholds (consecutive generations without improvement)
const (
	// StagnationThresholdLow: below this the adaptive rate is untouched
	StagnationThresholdLow = 10

	// StagnationThresholdHigh: above this the stronger rate scaling applies
	StagnationThresholdHigh = 25

	// StagnationFullReset discards the elitist population entirely
	StagnationFullReset = 50

	// StagnationEveReplace swaps Eve for a heavily mutated Adam copy
	StagnationEveReplace = 15

	// TournamentResetThreshold triggers the bottom-half population refill
	TournamentResetThreshold = 30

	// TournamentSizeMin is the selection sample floor
	TournamentSizeMin = 3
)

// Run bounds
const (
	// MaxGenerations caps a solver run
	MaxGenerations = 10000

	// GreedyMaxAttempts bounds constraint-aware board generation before the
	// identity-permutation fallback
	GreedyMaxAttempts = 1000

	// SolvedFitness is the distinguished fitness of a zero-conflict board
	SolvedFitness = 1000.0

	// EveReplaceSwapDivisor: a forced Eve replacement applies N/divisor swaps
	// (minimum two) to Adam's state
	EveReplaceSwapDivisor = 4
)
