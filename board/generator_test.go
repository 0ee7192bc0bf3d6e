package board

import (
	"math/rand/v2"
	"testing"
)

func TestRandomPermutation(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, n := range []int{1, 4, 8, 20} {
		p := RandomPermutation(n, rng)
		if len(p) != n {
			t.Fatalf("length %d, want %d", len(p), n)
		}
		if !IsPermutation(p) {
			t.Fatalf("not a permutation: %v", p)
		}
	}
}

func TestRandomPermutationDeterministic(t *testing.T) {
	a := RandomPermutation(10, rand.New(rand.NewPCG(42, 43)))
	b := RandomPermutation(10, rand.New(rand.NewPCG(42, 43)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different permutations: %v vs %v", a, b)
		}
	}
}

func TestGreedyProducesValidBoards(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 9))
	for trial := 0; trial < 10; trial++ {
		b := Greedy(8, rng)
		if !IsPermutation(b.State()) {
			t.Fatalf("greedy board is not a permutation: %v", b.State())
		}
	}
}

func TestGreedySolvesWhenItCompletes(t *testing.T) {
	// A completed greedy attempt placed every queen in a safe column, so
	// any non-identity result has zero conflicts. N=8 attempts succeed well
	// within the attempt bound.
	rng := rand.New(rand.NewPCG(5, 6))
	b := Greedy(8, rng)
	if b.Conflicts() != 0 {
		t.Errorf("completed greedy board has %d conflicts: %v", b.Conflicts(), b.State())
	}
}

func TestGreedyFallsBackToIdentity(t *testing.T) {
	// N=2 and N=3 have no solutions, so every greedy attempt dead-ends and
	// the identity permutation is returned.
	rng := rand.New(rand.NewPCG(1, 1))
	for _, tc := range []struct {
		n    int
		want []int
	}{
		{2, []int{0, 1}},
		{3, []int{0, 1, 2}},
	} {
		b := Greedy(tc.n, rng)
		got := b.State()
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("Greedy(%d) = %v, want identity %v", tc.n, got, tc.want)
			}
		}
	}
}
