// Package progress publishes live run state for pollers such as the TUI.
// Solvers cache the tracker pointer and write between parallel phases;
// readers may poll from any goroutine.
package progress

import (
	"math"
	"sync/atomic"
)

// Snapshot is the best placement seen so far, published as one unit so a
// poller never observes a generation/state mismatch.
type Snapshot struct {
	Generation int
	Conflicts  int
	State      []int
}

// Tracker holds the atomics a running solver updates once per generation.
// The zero value is ready to use.
type Tracker struct {
	generation   atomic.Int64
	bestConflict atomic.Int64
	stagnation   atomic.Int64
	mutationRate AtomicFloat
	best         atomic.Pointer[Snapshot]
}

// NewTracker returns an initialized tracker with an unset best snapshot.
func NewTracker() *Tracker {
	t := &Tracker{}
	t.bestConflict.Store(-1)
	return t
}

// Publish records the per-generation counters and, when state is non-nil,
// replaces the best snapshot. The state slice is owned by the tracker after
// the call.
func (t *Tracker) Publish(generation, conflicts, stagnation int, rate float64, state []int) {
	t.generation.Store(int64(generation))
	t.bestConflict.Store(int64(conflicts))
	t.stagnation.Store(int64(stagnation))
	t.mutationRate.Set(rate)
	if state != nil {
		t.best.Store(&Snapshot{
			Generation: generation,
			Conflicts:  conflicts,
			State:      state,
		})
	}
}

// Generation returns the last published generation counter.
func (t *Tracker) Generation() int {
	return int(t.generation.Load())
}

// BestConflicts returns the last published best conflict count, -1 before
// the first publish.
func (t *Tracker) BestConflicts() int {
	return int(t.bestConflict.Load())
}

// Stagnation returns the last published stagnation counter.
func (t *Tracker) Stagnation() int {
	return int(t.stagnation.Load())
}

// MutationRate returns the last published mutation rate.
func (t *Tracker) MutationRate() float64 {
	return t.mutationRate.Get()
}

// Best returns the latest best-placement snapshot, nil before the first
// publish. Callers must not modify the snapshot state.
func (t *Tracker) Best() *Snapshot {
	return t.best.Load()
}

// AtomicFloat provides atomic float64 operations using bit conversion
// Zero value is ready to use (represents 0.0)
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores a float64 value atomically
func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

// Get loads the float64 value atomically
func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}
