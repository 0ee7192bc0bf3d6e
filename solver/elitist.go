package solver

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/lixenwraith/nqueens/board"
	"github.com/lixenwraith/nqueens/parameter"
)

// Elitist is the best-pair (Adam & Eve) genetic solver: the two top-ranked
// boards survive every generation unchanged and parent all child pairs,
// with mutation pressure rising adaptively under stagnation and a full
// population reset past the deepest threshold.
type Elitist struct {
	opts Options
}

// NewElitist builds the elitist solver. Zero-valued options use the
// parameter package defaults.
func NewElitist(opts Options) *Elitist {
	return &Elitist{opts: opts}
}

func (e *Elitist) Solve(ctx context.Context, n int) (*RunResult, error) {
	if n < 1 {
		return nil, fmt.Errorf("solver: board size %d out of range", n)
	}
	opts := e.opts.withDefaults()

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	popSize := opts.PopulationSize
	if popSize <= 0 {
		popSize = clampPopulation(n, parameter.ElitistPopulationScale,
			parameter.ElitistPopulationMin, parameter.ElitistPopulationMax)
	}
	par := opts.Parallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}

	ctrl := newControlRand(seed)
	seedRound := 0
	pop := NewPopulation(generateBoards(n, popSize, seed, opts.MaxGenerations+1, opts.GreedySeeding, par))

	mutationRate := opts.InitialMutationRate
	stagnation := 0
	reinits := 0
	var best board.Board
	haveBest := false

	start := time.Now()
	generations := 0
	var runErr error

loop:
	for gen := 1; gen <= opts.MaxGenerations; gen++ {
		generations = gen

		select {
		case <-ctx.Done():
			runErr = ctx.Err()
			break loop
		default:
		}

		// A collapsed population is recovered, never propagated.
		if pop.Len() == 0 {
			seedRound++
			reinits++
			stagnation = 0
			pop = NewPopulation(generateBoards(n, popSize, seed, opts.MaxGenerations+1+seedRound, opts.GreedySeeding, par))
		}

		cur, _ := pop.Best()
		improved := !haveBest || cur.Conflicts() < best.Conflicts()
		if improved {
			best = cur
			haveBest = true
		}

		if opts.Tracker != nil {
			opts.Tracker.Publish(gen, best.Conflicts(), stagnation, mutationRate, best.State())
		}
		if best.Solved() {
			break
		}

		if improved {
			stagnation = 0
			mutationRate = opts.InitialMutationRate
		} else {
			stagnation++
		}

		switch {
		case stagnation > opts.StagnationReset:
			seedRound++
			reinits++
			stagnation = 0
			pop = NewPopulation(generateBoards(n, popSize, seed, opts.MaxGenerations+1+seedRound, opts.GreedySeeding, par))
			continue
		case stagnation > opts.StagnationHigh:
			mutationRate = capRate(mutationRate*parameter.MutationScaleHigh, opts.MaxMutationRate)
		case stagnation > opts.StagnationLow:
			mutationRate = capRate(mutationRate*parameter.MutationScaleMid, opts.MaxMutationRate)
		}

		adam, eve := bestPair(pop, n, stagnation, ctrl)
		prob := adaptiveProbability(mutationRate, stagnation, opts.MaxMutationRate)
		pop.ReplaceAll(reproduceElitist(n, popSize, gen, seed, adam, eve, prob, par))
	}

	// The final reproduced population was never evaluated inside the loop.
	if cur, ok := pop.Best(); ok && (!haveBest || cur.Conflicts() < best.Conflicts()) {
		best = cur
	}

	result := &RunResult{
		Algorithm:               AlgorithmElitist,
		N:                       n,
		Seed:                    seed,
		BestState:               best.State(),
		Conflicts:               best.Conflicts(),
		Generations:             generations,
		Elapsed:                 time.Since(start),
		Complexity:              float64(generations) * float64(popSize) * float64(n) / float64(par),
		PopulationSize:          popSize,
		InitialMutationRate:     opts.InitialMutationRate,
		FinalMutationRate:       mutationRate,
		StagnationCount:         stagnation,
		Reinitializations:       reinits,
		StagnationThresholdLow:  opts.StagnationLow,
		StagnationThresholdHigh: opts.StagnationHigh,
	}
	return result, runErr
}

func capRate(rate, max float64) float64 {
	if rate > max {
		return max
	}
	return rate
}

// reproduceElitist fills the next generation: Adam and Eve carry over into
// slots 0 and 1, and every remaining pair of slots is produced by one
// independent task (own generator, read-only parent states, disjoint writes).
func reproduceElitist(n, popSize, gen int, seed uint64, adam, eve board.Board, mutationProb float64, par int) []board.Board {
	if popSize < 2 {
		return []board.Board{adam}
	}

	next := make([]board.Board, popSize)
	next[0], next[1] = adam, eve
	adamState := adam.State()
	eveState := eve.State()

	sem := make(chan struct{}, par)
	var wg sync.WaitGroup

	for slot := 2; slot < popSize; slot += 2 {
		wg.Add(1)
		sem <- struct{}{}

		go func(slot int) {
			defer wg.Done()
			defer func() { <-sem }()

			rng := newTaskRand(seed, gen, slot)

			var xo Crossover = PMXCrossover{}
			if rng.Float64() < 0.5 {
				xo = OXCrossover{}
			}
			c1, c2, err := xo.Combine(adamState, eveState, rng)
			if err != nil {
				// Parents always share a length here; keep the slot filled anyway.
				c1, c2 = copyState(adamState), copyState(eveState)
			}

			if rng.Float64() < mutationProb {
				swapMutate(c1, rng)
			}
			if rng.Float64() < mutationProb {
				swapMutate(c2, rng)
			}

			b1, _ := board.New(n, c1)
			next[slot] = b1
			if slot+1 < popSize {
				b2, _ := board.New(n, c2)
				next[slot+1] = b2
			}
		}(slot)
	}
	wg.Wait()
	return next
}

// generateBoards seeds count boards in parallel, one independently seeded
// task per population slot. Rounds above MaxGenerations keep (re)seeding
// streams disjoint from reproduction streams.
func generateBoards(n, count int, seed uint64, round int, greedy bool, par int) []board.Board {
	members := make([]board.Board, count)

	sem := make(chan struct{}, par)
	var wg sync.WaitGroup

	for i := 0; i < count; i++ {
		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			rng := newTaskRand(seed, round, idx)
			if greedy {
				members[idx] = board.Greedy(n, rng)
			} else {
				members[idx] = board.Random(n, rng)
			}
		}(i)
	}
	wg.Wait()
	return members
}
