// Package polyroot finds the roots of lag polynomials such as the AR and MA
// polynomials of an ARMA process.
package polyroot

import (
	"errors"
	"math"
	"math/cmplx"
)

// ErrDegeneratePolynomial is returned when a polynomial has degenerate
// coefficients (non-finite values, convergence failure, etc.).
var ErrDegeneratePolynomial = errors.New("polyroot: degenerate polynomial")

// Roots returns the roots of the real polynomial
//
//	c[0] + c[1]*z + c[2]*z^2 + ... + c[n]*z^n
//
// given in ascending power order. Trailing zero coefficients are dropped
// before solving, so a zero-padded lag polynomial has the roots of its true
// degree. A polynomial of degree zero has no roots and yields an empty slice.
func Roots(c []float64) ([]complex128, error) {
	deg := len(c) - 1
	for deg >= 0 && c[deg] == 0 {
		deg--
	}
	if deg < 0 {
		return nil, ErrDegeneratePolynomial
	}
	for _, v := range c[:deg+1] {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrDegeneratePolynomial
		}
	}
	if deg == 0 {
		return []complex128{}, nil
	}

	coeff := make([]complex128, deg+1)
	for i := range coeff {
		coeff[i] = complex(c[deg-i], 0)
	}

	return DurandKerner(coeff)
}

// MinModulus returns the smallest |r| over roots, or +Inf for an empty slice.
func MinModulus(roots []complex128) float64 {
	m := math.Inf(1)
	for _, r := range roots {
		if a := cmplx.Abs(r); a < m {
			m = a
		}
	}

	return m
}

// OutsideUnitCircle reports whether every root lies strictly outside the unit
// circle by more than tol.
func OutsideUnitCircle(roots []complex128, tol float64) bool {
	return MinModulus(roots) > 1+tol
}

// DurandKerner finds all roots of a polynomial using the Durand-Kerner
// (Weierstrass) simultaneous iteration method. Coefficients are in descending
// power order: coeff[0]*z^n + coeff[1]*z^(n-1) + ... + coeff[n].
//
//nolint:cyclop
func DurandKerner(coeff []complex128) ([]complex128, error) {
	if len(coeff) < 2 {
		return nil, ErrDegeneratePolynomial
	}

	lead := coeff[0]
	if lead == 0 {
		return nil, ErrDegeneratePolynomial
	}

	n := len(coeff) - 1

	norm := make([]complex128, len(coeff))
	for i := range coeff {
		norm[i] = coeff[i] / lead
	}

	radius := 0.0
	for i := 1; i <= n; i++ {
		if r := cmplx.Abs(norm[i]); r > radius {
			radius = r
		}
	}

	if radius < 1 {
		radius = 1
	}

	roots := make([]complex128, n)
	for i := range n {
		angle := 2*math.Pi*float64(i)/float64(n) + 0.3
		r := radius * (1 + 0.1*float64(i)/float64(n))
		roots[i] = complex(r*math.Cos(angle), r*math.Sin(angle))
	}

	const (
		maxIter = 500
		tol     = 1e-12
	)

	for range maxIter {
		maxDelta := 0.0

		for i := range n {
			den := complex(1, 0)

			for j := range n {
				if i == j {
					continue
				}

				den *= roots[i] - roots[j]
			}

			if cmplx.Abs(den) == 0 {
				roots[i] += complex(1e-10, 1e-10)
				continue
			}

			f := PolyEval(norm, roots[i])
			delta := f / den

			roots[i] -= delta
			if d := cmplx.Abs(delta); d > maxDelta {
				maxDelta = d
			}
		}

		if maxDelta < tol {
			return roots, nil
		}
	}

	maxResidual := 0.0

	for _, r := range roots {
		res := cmplx.Abs(PolyEval(norm, r))
		if res > maxResidual {
			maxResidual = res
		}
	}

	if maxResidual < 1e-6 {
		return roots, nil
	}

	return nil, ErrDegeneratePolynomial
}

// PolyEval evaluates a polynomial at x using Horner's method. Coefficients
// are in descending power order: coeff[0]*x^n + ... + coeff[n].
func PolyEval(coeff []complex128, x complex128) complex128 {
	v := coeff[0]
	for i := 1; i < len(coeff); i++ {
		v = v*x + coeff[i]
	}

	return v
}
