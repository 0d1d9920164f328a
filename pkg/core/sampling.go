package core

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// Sampler provides random sampling for geometric queries
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() r2.Point
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns a random sample pair in [0, 1) x [0, 1)
func (r *RandomSampler) Get2D() r2.Point {
	return r2.Point{X: r.random.Float64(), Y: r.random.Float64()}
}
