package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/nqueens/board"
)

func mustBoard(t *testing.T, state []int) board.Board {
	t.Helper()
	b, err := board.New(len(state), state)
	if err != nil {
		t.Fatalf("board.New(%v): %v", state, err)
	}
	return b
}

func TestPopulationRanking(t *testing.T) {
	six := mustBoard(t, []int{0, 1, 2, 3})
	two := mustBoard(t, []int{0, 2, 1, 3})
	solved := mustBoard(t, []int{1, 3, 0, 2})

	pop := NewPopulation([]board.Board{six, solved, two})

	best, ok := pop.Best()
	if !ok || best.Conflicts() != 0 {
		t.Fatalf("Best = %v, want the solved board", best)
	}
	second, ok := pop.SecondBest()
	if !ok || second.Conflicts() != 2 {
		t.Fatalf("SecondBest = %v, want the 2-conflict board", second)
	}
	if pop.At(2).Conflicts() != 6 {
		t.Errorf("worst rank = %v, want the 6-conflict board", pop.At(2))
	}
}

func TestPopulationEmptyAndSingle(t *testing.T) {
	empty := NewPopulation(nil)
	if _, ok := empty.Best(); ok {
		t.Error("empty population returned a best board")
	}
	if _, ok := empty.SecondBest(); ok {
		t.Error("empty population returned a second-best board")
	}

	single := NewPopulation([]board.Board{mustBoard(t, []int{1, 3, 0, 2})})
	if _, ok := single.Best(); !ok {
		t.Error("single-member population has no best")
	}
	if _, ok := single.SecondBest(); ok {
		t.Error("single-member population returned a second-best board")
	}
}

func TestPopulationReplaceAll(t *testing.T) {
	pop := NewPopulation([]board.Board{mustBoard(t, []int{0, 1, 2, 3})})
	pop.ReplaceAll([]board.Board{
		mustBoard(t, []int{0, 2, 1, 3}),
		mustBoard(t, []int{1, 3, 0, 2}),
	})

	if pop.Len() != 2 {
		t.Fatalf("Len = %d, want 2", pop.Len())
	}
	best, _ := pop.Best()
	if best.Conflicts() != 0 {
		t.Errorf("best after replacement has %d conflicts", best.Conflicts())
	}
}

func TestRefillBottomHalf(t *testing.T) {
	rng := rand.New(rand.NewPCG(4, 4))
	members := make([]board.Board, 8)
	for i := range members {
		members[i] = board.Random(6, rng)
	}
	pop := NewPopulation(members)

	topBefore := make([]board.Board, 4)
	for i := 0; i < 4; i++ {
		topBefore[i] = pop.At(i)
	}

	fresh := mustBoard(t, []int{1, 3, 5, 0, 2, 4}) // a solved N=6 board
	pop.RefillBottomHalf(func(i int) board.Board { return fresh })

	// The previous top half must all survive the refill.
	for _, want := range topBefore {
		found := false
		for i := 0; i < pop.Len(); i++ {
			if pop.At(i).Compare(want) == 0 {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("top-half board %v lost during refill", want)
		}
	}

	// The fresh boards must be present and re-ranked to the top.
	best, _ := pop.Best()
	if best.Conflicts() != 0 {
		t.Errorf("refilled solved board not ranked first: %v", best)
	}
	count := 0
	for i := 0; i < pop.Len(); i++ {
		if pop.At(i).Compare(fresh) == 0 {
			count++
		}
	}
	if count != 4 {
		t.Errorf("expected 4 fresh boards after refill, found %d", count)
	}
}
