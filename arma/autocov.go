package arma

import (
	"fmt"

	"github.com/cwbudde/algo-arma/dsp/spectrum"
)

// Autocovariance returns gamma(0), ..., gamma(numLags-1), computed as the
// real part of the inverse DFT of the full-circle spectral density.
//
// The density is sampled on max(DefaultResolution, 2*numLags) points, so
// every requested lag stays below half the grid size and is free of
// aliasing. For numLags <= DefaultResolution/2 the grid is exactly the
// default one. The DFT still wraps the infinite autocovariance sequence onto
// the grid; for processes with roots close to the unit circle the values
// converge slowly in the resolution.
//
// numLags of zero yields an empty slice.
func (p *Process) Autocovariance(numLags int) ([]float64, error) {
	if err := checkLength("number of lags", numLags); err != nil {
		return nil, err
	}
	if numLags == 0 {
		return []float64{}, nil
	}

	res := max(DefaultResolution, 2*numLags)
	_, power, err := p.SpectralDensity(WithFullCircle(true), WithResolution(res))
	if err != nil {
		return nil, err
	}

	acov, err := spectrum.InverseReal(power, numLags)
	if err != nil {
		return nil, fmt.Errorf("arma: autocovariance: %w", err)
	}
	return acov, nil
}
