package arma

import (
	"fmt"

	"github.com/cwbudde/algo-arma/internal/polyroot"
)

// rootTol keeps numerically unit roots from being classified as outside.
const rootTol = 1e-8

// ARRoots returns the roots of the AR lag polynomial. Zero padding is
// ignored, so a process with all phi equal to zero has no AR roots.
func (p *Process) ARRoots() ([]complex128, error) {
	roots, err := polyroot.Roots(p.arPoly)
	if err != nil {
		return nil, fmt.Errorf("arma: AR roots: %w", err)
	}
	return roots, nil
}

// MARoots returns the roots of the MA lag polynomial.
func (p *Process) MARoots() ([]complex128, error) {
	roots, err := polyroot.Roots(p.maPoly)
	if err != nil {
		return nil, fmt.Errorf("arma: MA roots: %w", err)
	}
	return roots, nil
}

// IsStationary reports whether every root of the AR polynomial lies outside
// the unit circle.
func (p *Process) IsStationary() (bool, error) {
	roots, err := p.ARRoots()
	if err != nil {
		return false, err
	}
	return polyroot.OutsideUnitCircle(roots, rootTol), nil
}

// IsInvertible reports whether every root of the MA polynomial lies outside
// the unit circle.
func (p *Process) IsInvertible() (bool, error) {
	roots, err := p.MARoots()
	if err != nil {
		return false, err
	}
	return polyroot.OutsideUnitCircle(roots, rootTol), nil
}
