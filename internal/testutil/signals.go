package testutil

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewSource returns a seeded PCG source for reproducible draws.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}

// DeterministicNormal draws length N(0, sigma^2) variates from a source
// seeded with seed.
func DeterministicNormal(seed uint64, sigma float64, length int) []float64 {
	dist := distuv.Normal{Mu: 0, Sigma: sigma, Src: NewSource(seed)}
	out := make([]float64, length)
	for i := range out {
		out[i] = dist.Rand()
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}
