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

// Tournament is the tournament-selection genetic solver: every child pair is
// parented by the winners of an independent k-way tournament, the tournament
// size loosens as stagnation grows, and deep stagnation refills the bottom
// half of the ranked population with fresh random boards.
type Tournament struct {
	opts Options
}

// NewTournament builds the tournament solver. Zero-valued options use the
// parameter package defaults; the recombination operator defaults to
// range-copy and can be switched to PMX or OX via Options.Crossover.
func NewTournament(opts Options) *Tournament {
	return &Tournament{opts: opts}
}

func (t *Tournament) Solve(ctx context.Context, n int) (*RunResult, error) {
	if n < 1 {
		return nil, fmt.Errorf("solver: board size %d out of range", n)
	}
	opts := t.opts.withDefaults()

	// The tournament refill threshold has its own default, distinct from the
	// elitist full-reset threshold.
	resetThreshold := t.opts.StagnationReset
	if resetThreshold <= 0 {
		resetThreshold = parameter.TournamentResetThreshold
	}

	xo, err := crossoverFor(opts.Crossover)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	popSize := opts.PopulationSize
	if popSize <= 0 {
		popSize = clampPopulation(n, parameter.TournamentPopulationScale,
			parameter.TournamentPopulationMin, parameter.TournamentPopulationMax)
	}
	par := opts.Parallelism
	if par <= 0 {
		par = runtime.GOMAXPROCS(0)
	}

	// Seeding is always uniform random here; the greedy generator's quality
	// boost is not worth its cost at tournament population sizes.
	seedRound := 0
	pop := NewPopulation(generateBoards(n, popSize, seed, opts.MaxGenerations+1, false, par))

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

		if pop.Len() == 0 {
			seedRound++
			reinits++
			stagnation = 0
			pop = NewPopulation(generateBoards(n, popSize, seed, opts.MaxGenerations+1+seedRound, false, par))
		}

		cur, _ := pop.Best()
		improved := !haveBest || cur.Conflicts() < best.Conflicts()
		if improved {
			best = cur
			haveBest = true
		}

		if opts.Tracker != nil {
			opts.Tracker.Publish(gen, best.Conflicts(), stagnation, parameter.FixedMutationProbability, best.State())
		}
		if cur.Solved() {
			break
		}

		if improved {
			stagnation = 0
		} else {
			stagnation++
		}

		if stagnation > resetThreshold {
			seedRound++
			reinits++
			pop.RefillBottomHalf(func(i int) board.Board {
				rng := newTaskRand(seed, opts.MaxGenerations+1+seedRound, i)
				return board.Random(n, rng)
			})
			stagnation = 0
		}

		tSize := tournamentSize(popSize, stagnation)
		pop.ReplaceAll(reproduceTournament(n, popSize, gen, seed, pop, tSize, xo, par))
	}

	if cur, ok := pop.Best(); ok && (!haveBest || cur.Conflicts() < best.Conflicts()) {
		best = cur
	}

	result := &RunResult{
		Algorithm:               AlgorithmTournament,
		N:                       n,
		Seed:                    seed,
		BestState:               best.State(),
		Conflicts:               best.Conflicts(),
		Generations:             generations,
		Elapsed:                 time.Since(start),
		Complexity:              float64(generations) * float64(popSize) * float64(n),
		PopulationSize:          popSize,
		InitialMutationRate:     parameter.FixedMutationProbability,
		FinalMutationRate:       parameter.FixedMutationProbability,
		StagnationCount:         stagnation,
		Reinitializations:       reinits,
		StagnationThresholdLow:  opts.StagnationLow,
		StagnationThresholdHigh: opts.StagnationHigh,
	}
	return result, runErr
}

// reproduceTournament builds a full replacement generation. Each pair of
// slots is one independent task: its own generator runs the tournament,
// recombines the winners, and coin-flips a single swap per child. The
// population is only read, and every task writes disjoint slots.
func reproduceTournament(n, popSize, gen int, seed uint64, pop *Population, tSize int, xo Crossover, par int) []board.Board {
	next := make([]board.Board, popSize)

	sem := make(chan struct{}, par)
	var wg sync.WaitGroup

	for slot := 0; slot < popSize; slot += 2 {
		wg.Add(1)
		sem <- struct{}{}

		go func(slot int) {
			defer wg.Done()
			defer func() { <-sem }()

			rng := newTaskRand(seed, gen, slot)

			p1, p2 := tournamentPair(pop, tSize, rng)
			c1, c2, err := xo.Combine(p1.State(), p2.State(), rng)
			if err != nil {
				c1, c2 = p1.State(), p2.State()
			}

			if fixedMutationGate(rng) {
				swapMutate(c1, rng)
			}
			if fixedMutationGate(rng) {
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
