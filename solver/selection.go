package solver

import (
	"math/rand/v2"
	"sort"

	"github.com/lixenwraith/nqueens/board"
	"github.com/lixenwraith/nqueens/parameter"
)

// bestPair extracts Adam (best) and Eve (second best) from the population.
// Degenerate populations are recovered by synthesis: a missing Adam becomes
// a fresh random board, a missing Eve a mutated copy of Adam. Past the
// StagnationEveReplace threshold Eve is force-replaced with a heavily
// mutated Adam copy to escape local optima.
func bestPair(pop *Population, n, stagnation int, rng *rand.Rand) (board.Board, board.Board) {
	adam, ok := pop.Best()
	if !ok {
		adam = board.Random(n, rng)
	}

	eve, ok := pop.SecondBest()
	if !ok || stagnation > parameter.StagnationEveReplace {
		eve = heavyMutant(adam, rng)
	}
	return adam, eve
}

// heavyMutant applies N/EveReplaceSwapDivisor swaps (at least two) to a copy
// of the source board.
func heavyMutant(src board.Board, rng *rand.Rand) board.Board {
	state := src.State()
	swaps := len(state) / parameter.EveReplaceSwapDivisor
	if swaps < 2 {
		swaps = 2
	}
	mutateTimes(state, swaps, rng)
	b, _ := board.New(len(state), state)
	return b
}

// tournamentSize shrinks the selection sample as stagnation grows, loosening
// pressure, with a floor of TournamentSizeMin.
func tournamentSize(populationSize, stagnation int) int {
	size := populationSize / (10 + stagnation)
	if size < parameter.TournamentSizeMin {
		size = parameter.TournamentSizeMin
	}
	return size
}

// tournamentPair samples size boards uniformly with replacement and returns
// two parents with validity-aware tie-breaking: two solved boards win
// outright; a single solved board pairs with the best of the rest; otherwise
// the two best by (conflicts ascending, fitness descending) are taken. A
// solved or improving candidate in the sample is therefore always
// propagated.
func tournamentPair(pop *Population, size int, rng *rand.Rand) (board.Board, board.Board) {
	sample := make([]board.Board, size)
	for i := range sample {
		sample[i] = pop.At(rng.IntN(pop.Len()))
	}
	return pairFromSample(sample)
}

// pairFromSample applies the tie-breaking rules to one tournament sample.
func pairFromSample(sample []board.Board) (board.Board, board.Board) {
	var solved, rest []board.Board
	for _, b := range sample {
		if b.Solved() {
			solved = append(solved, b)
		} else {
			rest = append(rest, b)
		}
	}
	sortByQuality(solved)
	sortByQuality(rest)

	switch {
	case len(solved) >= 2:
		return solved[0], solved[1]
	case len(solved) == 1:
		if len(rest) == 0 {
			return solved[0], solved[0]
		}
		return solved[0], rest[0]
	default:
		if len(rest) == 1 {
			return rest[0], rest[0]
		}
		return rest[0], rest[1]
	}
}

// sortByQuality orders by ascending conflicts, breaking ties on descending
// fitness. Stable so equal boards keep their sample order.
func sortByQuality(boards []board.Board) {
	sort.SliceStable(boards, func(i, j int) bool {
		if boards[i].Conflicts() != boards[j].Conflicts() {
			return boards[i].Conflicts() < boards[j].Conflicts()
		}
		return boards[i].Fitness() > boards[j].Fitness()
	})
}
