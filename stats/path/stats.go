// Package path computes descriptive statistics of realised ARMA sample paths
// so they can be compared against the theoretical moments of the process.
package path

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrInvalidLags is returned for a negative lag count.
var ErrInvalidLags = errors.New("path: number of lags must be >= 0")

// Stats holds moments and extremes of a sample path.
type Stats struct {
	Length   int
	Mean     float64
	Variance float64 // population variance (divides by Length)
	Skewness float64
	Kurtosis float64 // excess kurtosis
	Min      float64
	MinPos   int
	Max      float64
	MaxPos   int
}

// Calculate computes the statistics of path in a single Welford pass.
func Calculate(path []float64) Stats {
	if len(path) == 0 {
		return Stats{}
	}
	mean, variance, skewness, kurtosis := Moments(path)
	minPos := floats.MinIdx(path)
	maxPos := floats.MaxIdx(path)
	return Stats{
		Length:   len(path),
		Mean:     mean,
		Variance: variance,
		Skewness: skewness,
		Kurtosis: kurtosis,
		Min:      path[minPos],
		MinPos:   minPos,
		Max:      path[maxPos],
		MaxPos:   maxPos,
	}
}

// Moments returns the mean, population variance, skewness, and excess kurtosis
// of the path using Welford's online algorithm for numerical stability.
func Moments(path []float64) (mean, variance, skewness, kurtosis float64) {
	var acc Accumulator
	acc.Update(path)
	return acc.moments()
}

// Autocovariance returns the biased sample autocovariance
//
//	c(k) = (1/N) * sum_{t=0}^{N-1-k} (x_t - mean)(x_{t+k} - mean)
//
// for k = 0..numLags-1. Lags at or beyond len(path) are zero. Dividing by N
// rather than N-k keeps the sequence positive semi-definite.
func Autocovariance(path []float64, numLags int) ([]float64, error) {
	if numLags < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLags, numLags)
	}
	out := make([]float64, numLags)
	n := len(path)
	if n == 0 {
		return out, nil
	}

	mean := floats.Sum(path) / float64(n)
	centered := make([]float64, n)
	copy(centered, path)
	floats.AddConst(-mean, centered)

	for k := range out {
		if k >= n {
			break
		}
		out[k] = floats.Dot(centered[:n-k], centered[k:]) / float64(n)
	}
	return out, nil
}

// Autocorrelation returns the sample autocovariance normalised by its lag-0
// value. A constant path has zero variance and yields NaN beyond lag 0.
func Autocorrelation(path []float64, numLags int) ([]float64, error) {
	acov, err := Autocovariance(path, numLags)
	if err != nil || len(acov) == 0 {
		return acov, err
	}
	c0 := acov[0]
	for k := range acov {
		if c0 == 0 {
			acov[k] = math.NaN()
			continue
		}
		acov[k] /= c0
	}
	if c0 == 0 {
		acov[0] = 1
	}
	return acov, nil
}

// Accumulator collects moments incrementally across several blocks, for
// example the replications of a Monte Carlo experiment. It processes each
// value individually so the result is bit-for-bit identical to [Calculate]
// on the concatenated input.
type Accumulator struct {
	n              int
	mean           float64
	m2, m3, m4     float64
	min, max       float64
	minPos, maxPos int
}

// Update adds a block of values to the running statistics.
func (a *Accumulator) Update(block []float64) {
	for _, x := range block {
		if a.n == 0 || x < a.min {
			a.min, a.minPos = x, a.n
		}
		if a.n == 0 || x > a.max {
			a.max, a.maxPos = x, a.n
		}

		i := float64(a.n)
		ni := i + 1
		delta := x - a.mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * i

		a.m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*a.m2 - 4*deltaN*a.m3
		a.m3 += term1*deltaN*(i-1) - 3*deltaN*a.m2
		a.m2 += term1
		a.mean += deltaN
		a.n++
	}
}

// Result returns the statistics of everything added so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{}
	}
	mean, variance, skewness, kurtosis := a.moments()
	return Stats{
		Length:   a.n,
		Mean:     mean,
		Variance: variance,
		Skewness: skewness,
		Kurtosis: kurtosis,
		Min:      a.min,
		MinPos:   a.minPos,
		Max:      a.max,
		MaxPos:   a.maxPos,
	}
}

// Reset clears all accumulated data.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

func (a *Accumulator) moments() (mean, variance, skewness, kurtosis float64) {
	if a.n == 0 {
		return 0, 0, 0, 0
	}
	nf := float64(a.n)
	variance = a.m2 / nf
	if variance > 0 {
		skewness = (a.m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (a.m4/nf)/(variance*variance) - 3
	}
	return a.mean, variance, skewness, kurtosis
}
