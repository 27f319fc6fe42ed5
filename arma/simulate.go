package arma

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulate returns a sample path of the given length. It draws length
// independent standard normal shocks from src, scales them by sigma and
// filters them through ma_poly/ar_poly from zero initial state.
//
// All randomness comes from src; seeding it makes the path reproducible.
// A length of zero yields an empty slice without consuming src.
func (p *Process) Simulate(length int, src rand.Source) ([]float64, error) {
	if err := checkLength("simulation length", length); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: random source is nil", ErrInvalidArgument)
	}
	if length == 0 {
		return []float64{}, nil
	}

	shocks := make([]float64, length)
	unit := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	for i := range shocks {
		shocks[i] = unit.Rand()
	}
	vecmath.ScaleBlockInPlace(shocks, p.sigma)

	f, err := p.filter()
	if err != nil {
		return nil, err
	}
	f.ProcessBlock(shocks)
	return shocks, nil
}
