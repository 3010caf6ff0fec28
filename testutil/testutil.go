package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Ints returns n pseudo-random values.
func (r *RNG) Ints(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Int()
	}
	return out
}

// ValidIndex returns an index in [0, length). length must be positive.
func (r *RNG) ValidIndex(length int) int {
	return r.Intn(length)
}

// NegativeIndex returns an index in [-length, -1]. length must be positive.
func (r *RNG) NegativeIndex(length int) int {
	return -1 - r.Intn(length)
}

// OutOfRange returns an index that addresses no element of a sequence of the
// given length: either at least length or below -length.
// The distance from the nearest bound is below 1<<20.
func (r *RNG) OutOfRange(length int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	d := r.rand.Intn(1 << 20)
	if r.rand.Intn(2) == 0 {
		return length + d
	}
	return -length - 1 - d
}
