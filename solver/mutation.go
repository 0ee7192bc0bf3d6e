package solver

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/nqueens/parameter"
)

// swapMutate exchanges two distinct random rows in place. A swap keeps a
// permutation a permutation.
func swapMutate(state []int, rng *rand.Rand) {
	n := len(state)
	if n < 2 {
		return
	}
	i := rng.IntN(n)
	j := rng.IntN(n - 1)
	if j >= i {
		j++
	}
	state[i], state[j] = state[j], state[i]
}

// mutateTimes applies count independent swaps, used for the forced Eve
// replacement under deep stagnation.
func mutateTimes(state []int, count int, rng *rand.Rand) {
	for k := 0; k < count; k++ {
		swapMutate(state, rng)
	}
}

// adaptiveProbability is the elitist solver's effective mutation chance:
// the current rate plus a log-scaled stagnation boost, capped.
func adaptiveProbability(rate float64, stagnation int, max float64) float64 {
	p := rate + math.Log(float64(stagnation)+1)*parameter.AdaptiveMutationSlope
	if p > max {
		p = max
	}
	return p
}

// fixedMutationGate is the tournament solver's coin flip.
func fixedMutationGate(rng *rand.Rand) bool {
	return rng.Float64() < parameter.FixedMutationProbability
}
