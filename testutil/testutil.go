package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/bitgo/bit"
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

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Bools returns n fair coin flips.
func (r *RNG) Bools(n int) []bool {
	return r.SparseBools(n, 0.5)
}

// SparseBools returns n values where each is true with probability density.
// Locks only once per call.
func (r *RNG) SparseBools(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// Vector returns a random vector of length n.
func (r *RNG) Vector(n int) *bit.Vector {
	return bit.VectorOf(r.Bools(n)...)
}

// Vectors returns num random vectors of length n.
func (r *RNG) Vectors(num, n int) []*bit.Vector {
	out := make([]*bit.Vector, num)
	for i := range out {
		out[i] = r.Vector(n)
	}
	return out
}

// Matrix returns a random matrix of the given shape.
func (r *RNG) Matrix(columns, rows int) *bit.Matrix {
	m, err := bit.MatrixOf(columns, rows, r.Bools(columns*rows)...)
	if err != nil {
		panic(err)
	}
	return m
}

// Values returns n numeric values spread around bit.Threshold, including
// the threshold itself, for coercion tests.
func (r *RNG) Values(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]float64, n)
	for i := range out {
		switch r.rand.Intn(4) {
		case 0:
			out[i] = bit.Threshold
		case 1:
			out[i] = 0
		default:
			out[i] = r.rand.Float64()*2 - 0.5
		}
	}
	return out
}

// Bits reads every bit of c in linear order through the public accessor.
func Bits(c bit.Container) []bool {
	out := make([]bool, c.Size())
	for i := range out {
		v, err := c.Bit(i)
		if err != nil {
			panic(err)
		}
		out[i] = v
	}
	return out
}

// NaiveHamming counts differing bits one position at a time.
func NaiveHamming(a, b bit.Container) int {
	x, y := Bits(a), Bits(b)
	n := 0
	for i := range x {
		if x[i] != y[i] {
			n++
		}
	}
	return n
}

// NaiveTrueCount counts set bits one position at a time.
func NaiveTrueCount(c bit.Container) int {
	n := 0
	for _, v := range Bits(c) {
		if v {
			n++
		}
	}
	return n
}

// NaiveApply combines a and b position by position.
func NaiveApply(a, b []bool, fn func(x, y bool) bool) []bool {
	out := make([]bool, len(a))
	for i := range a {
		out[i] = fn(a[i], b[i])
	}
	return out
}
