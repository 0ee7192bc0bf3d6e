package board

import (
	"math/rand/v2"
	"testing"
)

func mustBoard(t *testing.T, state []int) Board {
	t.Helper()
	b, err := New(len(state), state)
	if err != nil {
		t.Fatalf("New(%v): %v", state, err)
	}
	return b
}

func TestConflictsKnownPlacements(t *testing.T) {
	cases := []struct {
		state []int
		want  int
	}{
		{[]int{1, 3, 0, 2}, 0}, // one of the two N=4 solutions
		{[]int{2, 0, 3, 1}, 0}, // the other N=4 solution
		{[]int{0, 1, 2, 3}, 6}, // main diagonal, every pair attacks
		{[]int{0, 2, 1, 3}, 2},
		{[]int{3, 1, 6, 2, 5, 7, 4, 0}, 0}, // an N=8 solution
		{[]int{4, 1, 6, 2, 5, 7, 3, 0}, 2},
		{[]int{0}, 0},
	}
	for _, tc := range cases {
		b := mustBoard(t, tc.state)
		if b.Conflicts() != tc.want {
			t.Errorf("Conflicts(%v) = %d, want %d", tc.state, b.Conflicts(), tc.want)
		}
	}
}

func TestConflictsCountSharedColumns(t *testing.T) {
	// No diagonal attacks, one duplicated column. A non-permutation state
	// must never score as solved.
	b := mustBoard(t, []int{0, 0, 3, 1})
	if b.Conflicts() != 1 {
		t.Errorf("expected 1 conflict for duplicated column, got %d", b.Conflicts())
	}
	if b.Solved() {
		t.Error("non-permutation board reported as solved")
	}
}

func TestConflictsMatchesPairwiseDefinition(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 50; trial++ {
		state := rng.Perm(8)
		b := mustBoard(t, state)

		want := 0
		for i := 0; i < len(state); i++ {
			for j := i + 1; j < len(state); j++ {
				d := state[i] - state[j]
				if d < 0 {
					d = -d
				}
				if d == j-i {
					want++
				}
			}
		}
		if b.Conflicts() != want {
			t.Fatalf("Conflicts(%v) = %d, want %d", state, b.Conflicts(), want)
		}
		if b.Solved() != (want == 0) {
			t.Fatalf("Solved(%v) = %t with %d conflicts", state, b.Solved(), want)
		}
	}
}

func TestFitness(t *testing.T) {
	solved := mustBoard(t, []int{1, 3, 0, 2})
	if solved.Fitness() != 1000.0 {
		t.Errorf("solved fitness = %v, want 1000.0", solved.Fitness())
	}

	diag := mustBoard(t, []int{0, 1, 2, 3}) // 6 conflicts
	want := 1.0 / 7.0
	if diag.Fitness() != want {
		t.Errorf("fitness = %v, want %v", diag.Fitness(), want)
	}

	two := mustBoard(t, []int{0, 2, 1, 3}) // 2 conflicts
	if two.Fitness() <= diag.Fitness() {
		t.Error("fitness must decrease with conflicts")
	}
	if solved.Fitness() <= two.Fitness() {
		t.Error("solved fitness must dominate any conflicted fitness")
	}
}

func TestNewLengthMismatch(t *testing.T) {
	if _, err := New(5, []int{0, 1, 2}); err == nil {
		t.Error("expected error for state length mismatch")
	}
}

func TestStateDefensiveCopy(t *testing.T) {
	original := []int{1, 3, 0, 2}
	b := mustBoard(t, original)

	// Mutating the input after construction must not affect the board.
	original[0] = 99
	if b.State()[0] != 1 {
		t.Error("board aliases the constructor input")
	}

	// Mutating a returned state must not affect later reads.
	s := b.State()
	s[1] = 99
	if b.State()[1] != 3 {
		t.Error("board aliases a returned state")
	}
	if b.Conflicts() != 0 {
		t.Errorf("conflicts changed after external mutation: %d", b.Conflicts())
	}
}

func TestCompareOrdering(t *testing.T) {
	solved := mustBoard(t, []int{1, 3, 0, 2})
	solved2 := mustBoard(t, []int{2, 0, 3, 1})
	two := mustBoard(t, []int{0, 2, 1, 3})
	six := mustBoard(t, []int{0, 1, 2, 3})

	if solved.Compare(two) >= 0 {
		t.Error("fewer conflicts must rank first")
	}
	if two.Compare(six) >= 0 {
		t.Error("2 conflicts must rank before 6")
	}
	// Equal conflicts fall back to lexicographic state.
	if solved.Compare(solved2) >= 0 {
		t.Error("[1 3 0 2] must rank before [2 0 3 1]")
	}
	if solved.Compare(solved) != 0 {
		t.Error("a board must compare equal to itself")
	}
}

func TestCompareTransitivity(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	boards := make([]Board, 30)
	for i := range boards {
		boards[i] = mustBoard(t, rng.Perm(6))
	}

	for _, a := range boards {
		for _, b := range boards {
			for _, c := range boards {
				if a.Compare(b) < 0 && b.Compare(c) < 0 && a.Compare(c) >= 0 {
					t.Fatalf("ordering not transitive: %v %v %v", a, b, c)
				}
			}
		}
	}
}

func TestIsPermutation(t *testing.T) {
	if !IsPermutation([]int{2, 0, 1}) {
		t.Error("valid permutation rejected")
	}
	if IsPermutation([]int{0, 0, 2}) {
		t.Error("duplicate accepted")
	}
	if IsPermutation([]int{0, 1, 3}) {
		t.Error("out-of-range value accepted")
	}
}
