package solver

import "math/rand/v2"

// Reproduction is fanned out across goroutines, so no generator is ever
// shared: every parallel task derives its own PCG stream from the master
// seed via splitmix64 mixing. Task-to-seed assignment depends only on
// (generation, task index), which keeps runs reproducible for a fixed seed
// and parallelism degree.

const goldenGamma = 0x9e3779b97f4a7c15

func splitmix64(x uint64) uint64 {
	x += goldenGamma
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// taskSeed derives an independent seed for one unit of parallel work.
// Generation values above MaxGenerations are reserved for population
// (re)seeding rounds so they never collide with reproduction streams.
func taskSeed(master uint64, generation, task int) uint64 {
	return splitmix64(master ^ splitmix64(uint64(generation)*goldenGamma+uint64(task)))
}

// newTaskRand builds the per-task generator for one reproduction or seeding
// unit.
func newTaskRand(master uint64, generation, task int) *rand.Rand {
	s := taskSeed(master, generation, task)
	return rand.New(rand.NewPCG(s, splitmix64(s)))
}

// newControlRand builds the controller's own generator, used only between
// parallel phases.
func newControlRand(master uint64) *rand.Rand {
	return rand.New(rand.NewPCG(master, splitmix64(master)))
}
