package arma

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-arma/dsp/filter/iir"
	"github.com/cwbudde/algo-arma/dsp/spectrum"
)

// SpectralDensity evaluates
//
//	f(w) = sigma^2 * |ma_poly(e^{-iw})|^2 / |ar_poly(e^{-iw})|^2
//
// which equals sum_k gamma(k) exp(-ikw) over all integer lags k.
//
// By default the density is computed on [DefaultResolution] frequencies
// w_k = 2*pi*k/n covering [0, 2*pi). [WithFullCircle](false) halves the span
// to [0, pi), [WithResolution] changes n and [WithFrequencies] supplies the
// evaluation points directly. It returns the frequencies used and the
// density at each of them. Density values are computed as re^2 + im^2 and
// are never negative.
func (p *Process) SpectralDensity(opts ...SpectralOption) (freqs, power []float64, err error) {
	cfg := defaultSpectralConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.frequencies != nil {
		if len(cfg.frequencies) == 0 {
			return nil, nil, fmt.Errorf("%w: frequency list is empty", ErrInvalidArgument)
		}
		for i, w := range cfg.frequencies {
			if math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, nil, fmt.Errorf("%w: frequency[%d] is not finite: %v", ErrInvalidArgument, i, w)
			}
		}
		freqs = cfg.frequencies
	} else {
		if cfg.resolution <= 0 {
			return nil, nil, fmt.Errorf("%w: resolution must be > 0: %d", ErrInvalidArgument, cfg.resolution)
		}
		freqs, err = spectrum.Frequencies(cfg.resolution, cfg.fullCircle)
		if err != nil {
			return nil, nil, err
		}
	}

	return freqs, p.density(freqs), nil
}

func (p *Process) density(freqs []float64) []float64 {
	h := iir.FreqZ(p.maPoly, p.arPoly, freqs)
	return spectrum.ScaledPower(h, p.sigma*p.sigma)
}
