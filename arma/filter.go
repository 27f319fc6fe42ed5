package arma

import (
	"fmt"

	"github.com/cwbudde/algo-arma/dsp/filter/iir"
)

// filter returns a fresh zero-state realisation of ma_poly/ar_poly.
func (p *Process) filter() (*iir.Filter, error) {
	f, err := iir.New(p.maPoly, p.arPoly)
	if err != nil {
		return nil, fmt.Errorf("arma: build transfer function: %w", err)
	}
	return f, nil
}

func checkLength(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s must be >= 0: %d", ErrInvalidArgument, name, n)
	}
	return nil
}
