package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/lixenwraith/nqueens/board"
)

func TestPMXProducesPermutations(t *testing.T) {
	testPermutationPreserving(t, PMXCrossover{})
}

func TestOXProducesPermutations(t *testing.T) {
	testPermutationPreserving(t, OXCrossover{})
}

func testPermutationPreserving(t *testing.T, xo Crossover) {
	t.Helper()
	for _, n := range []int{4, 5, 8, 12, 20} {
		for seed := uint64(0); seed < 20; seed++ {
			rng := rand.New(rand.NewPCG(seed, seed+1))
			p1 := rng.Perm(n)
			p2 := rng.Perm(n)

			c1, c2, err := xo.Combine(p1, p2, rng)
			if err != nil {
				t.Fatalf("n=%d seed=%d: %v", n, seed, err)
			}
			if len(c1) != n || len(c2) != n {
				t.Fatalf("n=%d seed=%d: child lengths %d,%d", n, seed, len(c1), len(c2))
			}
			if !board.IsPermutation(c1) {
				t.Fatalf("n=%d seed=%d: child1 not a permutation: %v", n, seed, c1)
			}
			if !board.IsPermutation(c2) {
				t.Fatalf("n=%d seed=%d: child2 not a permutation: %v", n, seed, c2)
			}
		}
	}
}

func TestCrossoverDeterministic(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5, 6, 7}
	p2 := []int{7, 6, 5, 4, 3, 2, 1, 0}

	for _, xo := range []Crossover{PMXCrossover{}, OXCrossover{}, RangeCopyCrossover{}} {
		a1, a2, err := xo.Combine(p1, p2, rand.New(rand.NewPCG(11, 12)))
		if err != nil {
			t.Fatal(err)
		}
		b1, b2, err := xo.Combine(p1, p2, rand.New(rand.NewPCG(11, 12)))
		if err != nil {
			t.Fatal(err)
		}
		for i := range a1 {
			if a1[i] != b1[i] || a2[i] != b2[i] {
				t.Fatalf("%T not deterministic under a fixed seed", xo)
			}
		}
	}
}

// TestRangeCopyMayBreakPermutation flags the deliberate choice to keep the
// range-copy operator non-permutation-preserving: overlaying a segment of
// one parent onto the other can duplicate columns. The conflict model counts
// those duplicates, so such children can never be reported as solved.
func TestRangeCopyMayBreakPermutation(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5, 6, 7}
	p2 := []int{7, 6, 5, 4, 3, 2, 1, 0}

	sawDuplicate := false
	for seed := uint64(0); seed < 50 && !sawDuplicate; seed++ {
		rng := rand.New(rand.NewPCG(seed, 1))
		c1, c2, err := (RangeCopyCrossover{}).Combine(p1, p2, rng)
		if err != nil {
			t.Fatal(err)
		}
		if !board.IsPermutation(c1) || !board.IsPermutation(c2) {
			sawDuplicate = true
		}
	}
	if !sawDuplicate {
		t.Error("range-copy unexpectedly preserved permutations for every seed")
	}
}

func TestRangeCopyChildrenStayScorable(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{5, 4, 3, 2, 1, 0}
	rng := rand.New(rand.NewPCG(3, 4))

	c1, c2, err := (RangeCopyCrossover{}).Combine(p1, p2, rng)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range [][]int{c1, c2} {
		b, err := board.New(len(c), c)
		if err != nil {
			t.Fatalf("range-copy child not constructible: %v", err)
		}
		if !board.IsPermutation(c) && b.Solved() {
			t.Errorf("non-permutation child scored as solved: %v", c)
		}
	}
}

func TestCrossoverParentErrors(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	for _, xo := range []Crossover{PMXCrossover{}, OXCrossover{}, RangeCopyCrossover{}} {
		if _, _, err := xo.Combine(nil, []int{0, 1}, rng); err == nil {
			t.Errorf("%T: expected error for empty parent", xo)
		}
		if _, _, err := xo.Combine([]int{0, 1, 2}, []int{0, 1}, rng); err == nil {
			t.Errorf("%T: expected error for mismatched parents", xo)
		}
	}
}

func TestCrossoverForKind(t *testing.T) {
	for _, kind := range []CrossoverKind{CrossoverRange, CrossoverPMX, CrossoverOX} {
		if _, err := crossoverFor(kind); err != nil {
			t.Errorf("crossoverFor(%q): %v", kind, err)
		}
	}
	if _, err := crossoverFor("cycle"); err == nil {
		t.Error("expected error for unknown crossover kind")
	}
}
