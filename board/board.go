// Package board holds the immutable candidate representation shared by the
// solvers: a row-to-column placement with its conflict count and fitness
// precomputed at construction.
package board

import (
	"fmt"

	"github.com/lixenwraith/nqueens/parameter"
)

// Board is one candidate placement of N queens. Index is the row, value is
// the column of the queen in that row. Conflicts and fitness are computed
// once at construction; a Board never changes afterwards.
type Board struct {
	state     []int
	conflicts int
	fitness   float64
}

// New constructs a Board from state, which must have exactly n entries.
// A length mismatch is a programmer error and fails immediately.
func New(n int, state []int) (Board, error) {
	if len(state) != n {
		return Board{}, fmt.Errorf("board: state length %d does not match n %d", len(state), n)
	}
	s := make([]int, n)
	copy(s, state)
	c := countConflicts(s)
	return Board{
		state:     s,
		conflicts: c,
		fitness:   fitnessFor(c),
	}, nil
}

// countConflicts counts attacking queen pairs. With the row-to-column
// encoding no two queens share a row, so only diagonals and shared columns
// can attack. Counting shared columns keeps non-permutation states (possible
// under range-copy crossover) from ever scoring as solved; for a true
// permutation the column term is always zero.
func countConflicts(state []int) int {
	count := 0
	for i := 0; i < len(state); i++ {
		for j := i + 1; j < len(state); j++ {
			if state[i] == state[j] {
				count++
				continue
			}
			diff := state[i] - state[j]
			if diff < 0 {
				diff = -diff
			}
			if diff == j-i {
				count++
			}
		}
	}
	return count
}

func fitnessFor(conflicts int) float64 {
	if conflicts == 0 {
		return parameter.SolvedFitness
	}
	return 1.0 / (1.0 + float64(conflicts))
}

// N returns the board size.
func (b Board) N() int {
	return len(b.state)
}

// State returns a defensive copy of the placement.
func (b Board) State() []int {
	s := make([]int, len(b.state))
	copy(s, b.state)
	return s
}

// Conflicts returns the cached attacking-pair count.
func (b Board) Conflicts() int {
	return b.conflicts
}

// Fitness returns the cached fitness: SolvedFitness for a zero-conflict
// board, otherwise 1/(1+conflicts).
func (b Board) Fitness() float64 {
	return b.fitness
}

// Solved reports whether the board has no attacking pairs.
func (b Board) Solved() bool {
	return b.conflicts == 0
}

// Compare orders boards by ascending conflicts, then lexicographically by
// state. Returns a negative value when b ranks before other, positive when
// after, zero when equal.
func (b Board) Compare(other Board) int {
	if b.conflicts != other.conflicts {
		return b.conflicts - other.conflicts
	}
	for i := 0; i < len(b.state) && i < len(other.state); i++ {
		if b.state[i] != other.state[i] {
			return b.state[i] - other.state[i]
		}
	}
	return len(b.state) - len(other.state)
}

// Less reports whether a ranks strictly before b.
func Less(a, b Board) bool {
	return a.Compare(b) < 0
}

// IsPermutation reports whether state holds every value in [0, len) exactly
// once.
func IsPermutation(state []int) bool {
	seen := make([]bool, len(state))
	for _, v := range state {
		if v < 0 || v >= len(state) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func (b Board) String() string {
	return fmt.Sprintf("Board(conflicts=%d state=%v)", b.conflicts, b.state)
}
