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

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(r.rand.Intn(256))
	}
	return p
}

// Bits returns n values in {0, 1}, each 1 with the given probability.
func (r *RNG) Bits(n int, density float64) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		if r.rand.Float64() < density {
			out[i] = 1
		}
	}
	return out
}

// Runs returns n values in {0, 1} made of runs of equal bits with lengths
// drawn from [1, maxRun]. Useful for exercising byte-skipping searches.
func (r *RNG) Runs(n, maxRun int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, 0, n)
	v := r.rand.Intn(2)
	for len(out) < n {
		run := 1 + r.rand.Intn(maxRun)
		for k := 0; k < run && len(out) < n; k++ {
			out = append(out, v)
		}
		v ^= 1
	}
	return out
}

// Lengths returns interesting bit lengths around byte and block boundaries
// up to limit, including 0.
func Lengths(limit int) []int {
	seen := map[int]bool{}
	var out []int
	add := func(n int) {
		if n >= 0 && n <= limit && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, base := range []int{0, 8, 16, 64, 1024, 8192, 8200, 16384} {
		for d := -3; d <= 3; d++ {
			add(base + d)
		}
	}
	add(limit)
	return out
}
