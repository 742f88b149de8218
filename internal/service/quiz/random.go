package quiz

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Rand is the random source used for every scheduling and generation choice.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// LockedRand is a Rand safe for concurrent use.
type LockedRand struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedRand returns a PCG-backed source. Seed 0 seeds from the clock.
func NewLockedRand(seed uint64) *LockedRand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &LockedRand{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *LockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.IntN(n)
}

func (r *LockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *LockedRand) Shuffle(n int, swap func(i, j int)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rnd.Shuffle(n, swap)
}
