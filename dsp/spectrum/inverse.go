package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// InverseReal returns the first count values of the real part of the inverse
// DFT of bins:
//
//	x[m] = Re( (1/N) * sum_k bins[k] * exp(+i 2 pi k m / N) )
//
// The transform runs on an algo-fft plan of size len(bins). Sizes the FFT
// backend cannot plan are evaluated with a direct cosine sum restricted to
// the requested outputs.
func InverseReal(bins []float64, count int) ([]float64, error) {
	n := len(bins)
	if n == 0 {
		return nil, fmt.Errorf("%w: inverse transform requires non-empty input", ErrInvalidLength)
	}
	if count < 0 || count > n {
		return nil, fmt.Errorf("%w: count must be in [0, %d]: %d", ErrInvalidLength, n, count)
	}
	if count == 0 {
		return []float64{}, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return inverseRealDirect(bins, count), nil
	}

	freq := make([]complex128, n)
	for i, v := range bins {
		freq[i] = complex(v, 0)
	}

	timeDomain := make([]complex128, n)
	if err := plan.Inverse(timeDomain, freq); err != nil {
		return nil, fmt.Errorf("spectrum: inverse FFT failed: %w", err)
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = real(timeDomain[i])
	}
	return out, nil
}

// inverseRealDirect evaluates the real part of the inverse DFT of a real
// sequence for the first count outputs in O(N*count).
func inverseRealDirect(bins []float64, count int) []float64 {
	n := len(bins)
	out := make([]float64, count)
	invN := 1 / float64(n)
	for m := range out {
		var sum float64
		for k, v := range bins {
			// Reduce k*m modulo n to keep the angle small and exact.
			idx := (k * m) % n
			sum += v * math.Cos(2*math.Pi*float64(idx)*invN)
		}
		out[m] = sum * invN
	}
	return out
}
