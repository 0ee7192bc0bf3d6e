package solver

import (
	"fmt"
	"math/rand/v2"
)

// Crossover produces two child states from two parent states of equal
// length. PMX and OX require permutation parents and always return valid
// permutations; RangeCopy copies raw segments and may duplicate values.
type Crossover interface {
	Combine(parent1, parent2 []int, rng *rand.Rand) ([]int, []int, error)
}

func checkParents(parent1, parent2 []int) error {
	if len(parent1) == 0 || len(parent2) == 0 {
		return fmt.Errorf("crossover: empty parent state")
	}
	if len(parent1) != len(parent2) {
		return fmt.Errorf("crossover: parent lengths differ (%d vs %d)", len(parent1), len(parent2))
	}
	return nil
}

// crossoverFor maps a kind to its operator.
func crossoverFor(kind CrossoverKind) (Crossover, error) {
	switch kind {
	case CrossoverRange:
		return RangeCopyCrossover{}, nil
	case CrossoverPMX:
		return PMXCrossover{}, nil
	case CrossoverOX:
		return OXCrossover{}, nil
	default:
		return nil, fmt.Errorf("crossover: unknown kind %q", kind)
	}
}

// RangeCopyCrossover overlays a contiguous segment of one parent onto a raw
// copy of the other. It does not preserve the permutation property: a child
// can duplicate and drop columns. Duplicates are penalized by the conflict
// count and bred out by fitness pressure rather than repaired structurally.
type RangeCopyCrossover struct{}

func (RangeCopyCrossover) Combine(parent1, parent2 []int, rng *rand.Rand) ([]int, []int, error) {
	if err := checkParents(parent1, parent2); err != nil {
		return nil, nil, err
	}
	n := len(parent1)
	if n < 3 {
		return copyState(parent1), copyState(parent2), nil
	}

	// start in [0, n/3), segment length in [n/3, n-start)
	start := rng.IntN(n / 3)
	segMin := n / 3
	segLen := segMin + rng.IntN(n-start-segMin)
	end := start + segLen

	child1 := copyState(parent2)
	child2 := copyState(parent1)
	copy(child1[start:end], parent1[start:end])
	copy(child2[start:end], parent2[start:end])
	return child1, child2, nil
}

// PMXCrossover keeps a random segment of each parent and fills the remaining
// slots from the other parent, scanned left to right, skipping values the
// kept segment already uses. Parents must be permutations; children are.
type PMXCrossover struct{}

func (PMXCrossover) Combine(parent1, parent2 []int, rng *rand.Rand) ([]int, []int, error) {
	if err := checkParents(parent1, parent2); err != nil {
		return nil, nil, err
	}
	n := len(parent1)
	if n < 3 {
		return copyState(parent1), copyState(parent2), nil
	}

	start := rng.IntN(n / 3)
	segMin := n / 3
	end := start + segMin + rng.IntN(n-start-segMin)

	child1 := segmentChild(parent1, parent2, start, end)
	child2 := segmentChild(parent2, parent1, start, end)
	return child1, child2, nil
}

// OXCrossover is order crossover: a larger kept segment, with the remainder
// filled in the donor parent's order. Parents must be permutations.
type OXCrossover struct{}

func (OXCrossover) Combine(parent1, parent2 []int, rng *rand.Rand) ([]int, []int, error) {
	if err := checkParents(parent1, parent2); err != nil {
		return nil, nil, err
	}
	n := len(parent1)
	if n < 4 {
		return copyState(parent1), copyState(parent2), nil
	}

	// start leaves room for the minimum segment; size in [n/4, n-start)
	segMin := n / 4
	start := rng.IntN(n - segMin)
	end := start + segMin + rng.IntN(n-start-segMin)

	child1 := segmentChild(parent1, parent2, start, end)
	child2 := segmentChild(parent2, parent1, start, end)
	return child1, child2, nil
}

// segmentChild keeps keeper[start:end) and fills every other slot, left to
// right, with the next donor value not already used by the kept segment.
// The used-value set plus the in-order donor scan make the result
// deterministic for a fixed seed.
func segmentChild(keeper, donor []int, start, end int) []int {
	n := len(keeper)
	child := make([]int, n)
	used := make([]bool, n)
	for i := start; i < end; i++ {
		child[i] = keeper[i]
		used[keeper[i]] = true
	}

	d := 0
	for i := 0; i < n; i++ {
		if i >= start && i < end {
			continue
		}
		for d < n && used[donor[d]] {
			d++
		}
		child[i] = donor[d]
		used[donor[d]] = true
		d++
	}
	return child
}

func copyState(state []int) []int {
	s := make([]int, len(state))
	copy(s, state)
	return s
}
