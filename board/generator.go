package board

import (
	"math/rand/v2"

	"github.com/lixenwraith/nqueens/parameter"
)

// RandomPermutation returns a uniform random permutation of [0, n).
func RandomPermutation(n int, rng *rand.Rand) []int {
	return rng.Perm(n)
}

// Random builds a board from a uniform random permutation.
func Random(n int, rng *rand.Rand) Board {
	b, _ := New(n, RandomPermutation(n, rng))
	return b
}

// Greedy builds a board row by row: candidate columns are shuffled and the
// first column that attacks nothing already placed is kept. A row with no
// safe column restarts the whole attempt. After GreedyMaxAttempts the
// identity permutation is returned so the caller always gets a board.
func Greedy(n int, rng *rand.Rand) Board {
	for attempt := 0; attempt < parameter.GreedyMaxAttempts; attempt++ {
		state, ok := greedyAttempt(n, rng)
		if ok {
			b, _ := New(n, state)
			return b
		}
	}

	identity := make([]int, n)
	for i := range identity {
		identity[i] = i
	}
	b, _ := New(n, identity)
	return b
}

func greedyAttempt(n int, rng *rand.Rand) ([]int, bool) {
	state := make([]int, 0, n)
	taken := make([]bool, n)

	for row := 0; row < n; row++ {
		candidates := make([]int, 0, n)
		for col := 0; col < n; col++ {
			if !taken[col] {
				candidates = append(candidates, col)
			}
		}
		rng.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})

		placed := false
		for _, col := range candidates {
			if safePlacement(state, row, col) {
				state = append(state, col)
				taken[col] = true
				placed = true
				break
			}
		}
		if !placed {
			return nil, false
		}
	}
	return state, true
}

// safePlacement checks col against every previously placed row. Column
// reuse is excluded by the caller, so only diagonals matter here.
func safePlacement(state []int, row, col int) bool {
	for r, c := range state {
		diff := c - col
		if diff < 0 {
			diff = -diff
		}
		if diff == row-r {
			return false
		}
	}
	return true
}
