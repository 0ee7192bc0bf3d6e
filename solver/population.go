package solver

import (
	"sort"

	"github.com/lixenwraith/nqueens/board"
)

// Population is a ranked, slice-backed set of boards. It is re-sorted on
// every rebuild instead of being maintained as an ordered container, so
// boards with equal fitness are never silently dropped.
type Population struct {
	members []board.Board
}

// NewPopulation ranks members by the board ordering and wraps them.
func NewPopulation(members []board.Board) *Population {
	p := &Population{members: members}
	p.rank()
	return p
}

func (p *Population) rank() {
	sort.Slice(p.members, func(i, j int) bool {
		return board.Less(p.members[i], p.members[j])
	})
}

// Len returns the current population size.
func (p *Population) Len() int {
	return len(p.members)
}

// At returns the board at rank i (0 is best).
func (p *Population) At(i int) board.Board {
	return p.members[i]
}

// Best returns the top-ranked board; ok is false for an empty population.
func (p *Population) Best() (board.Board, bool) {
	if len(p.members) == 0 {
		return board.Board{}, false
	}
	return p.members[0], true
}

// SecondBest returns the second-ranked board; ok is false when the
// population has fewer than two members.
func (p *Population) SecondBest() (board.Board, bool) {
	if len(p.members) < 2 {
		return board.Board{}, false
	}
	return p.members[1], true
}

// ReplaceAll swaps in a new member set and re-ranks.
func (p *Population) ReplaceAll(members []board.Board) {
	p.members = members
	p.rank()
}

// RefillBottomHalf replaces the worst half of the population with boards
// from gen and re-ranks. The top half survives untouched.
func (p *Population) RefillBottomHalf(gen func(i int) board.Board) {
	half := len(p.members) / 2
	for i := half; i < len(p.members); i++ {
		p.members[i] = gen(i - half)
	}
	p.rank()
}
