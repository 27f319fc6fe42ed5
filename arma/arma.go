package arma

import (
	"fmt"
	"math"
	"strings"
)

// Process is a scalar ARMA(p, q) process.
type Process struct {
	phi    []float64
	theta  []float64
	sigma  float64
	arPoly []float64
	maPoly []float64
}

// New creates a process with AR coefficients phi. A scalar coefficient is a
// slice of length one. Theta defaults to a single zero coefficient and sigma
// to 1; see [WithTheta] and [WithSigma].
func New(phi []float64, opts ...Option) (*Process, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := &Process{}
	if err := p.SetSigma(cfg.sigma); err != nil {
		return nil, err
	}
	if err := p.SetParams(phi, cfg.theta); err != nil {
		return nil, err
	}
	return p, nil
}

// SetParams replaces phi and theta and recomputes both lag polynomials.
// The inputs are copied. On error the process is left unchanged.
func (p *Process) SetParams(phi, theta []float64) error {
	if err := validateCoefficients("phi", phi); err != nil {
		return err
	}
	if err := validateCoefficients("theta", theta); err != nil {
		return err
	}

	arPoly, maPoly := lagPolynomials(phi, theta)

	p.phi = append([]float64(nil), phi...)
	p.theta = append([]float64(nil), theta...)
	p.arPoly = arPoly
	p.maPoly = maPoly
	return nil
}

// SetPhi replaces the AR coefficients, keeping theta.
func (p *Process) SetPhi(phi ...float64) error {
	return p.SetParams(phi, p.theta)
}

// SetTheta replaces the MA coefficients, keeping phi.
func (p *Process) SetTheta(theta ...float64) error {
	return p.SetParams(p.phi, theta)
}

// SetSigma sets the white-noise standard deviation. Sigma has no derived
// state.
func (p *Process) SetSigma(sigma float64) error {
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return fmt.Errorf("%w: sigma must be positive and finite: %v", ErrInvalidParameter, sigma)
	}
	p.sigma = sigma
	return nil
}

// Phi returns a copy of the AR coefficients.
func (p *Process) Phi() []float64 { return clone(p.phi) }

// Theta returns a copy of the MA coefficients.
func (p *Process) Theta() []float64 { return clone(p.theta) }

// Sigma returns the white-noise standard deviation.
func (p *Process) Sigma() float64 { return p.sigma }

// ARPoly returns a copy of (1, -phi_1, ..., -phi_p), zero padded to at least
// len(MAPoly()).
func (p *Process) ARPoly() []float64 { return clone(p.arPoly) }

// MAPoly returns a copy of (1, theta_1, ..., theta_q).
func (p *Process) MAPoly() []float64 { return clone(p.maPoly) }

// Order returns (p, q), the number of AR and MA coefficients.
func (p *Process) Order() (int, int) {
	return len(p.phi), len(p.theta)
}

// String formats the process as "ARMA(p,q) phi=[...] theta=[...] sigma=s".
func (p *Process) String() string {
	ar, ma := p.Order()
	return fmt.Sprintf("ARMA(%d,%d) phi=%s theta=%s sigma=%g", ar, ma,
		formatCoefficients(p.phi), formatCoefficients(p.theta), p.sigma)
}

// lagPolynomials builds ar_poly = (1, -phi) and ma_poly = (1, theta) and pads
// ar_poly with zeros to the length of ma_poly.
func lagPolynomials(phi, theta []float64) (arPoly, maPoly []float64) {
	maPoly = make([]float64, 1+len(theta))
	maPoly[0] = 1
	copy(maPoly[1:], theta)

	arPoly = make([]float64, max(1+len(phi), len(maPoly)))
	arPoly[0] = 1
	for i, v := range phi {
		arPoly[i+1] = -v
	}
	return arPoly, maPoly
}

func validateCoefficients(name string, c []float64) error {
	if len(c) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidParameter, name)
	}
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s[%d] is not finite: %v", ErrInvalidParameter, name, i, v)
		}
	}
	return nil
}

func formatCoefficients(c []float64) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func clone(c []float64) []float64 {
	out := make([]float64, len(c))
	copy(out, c)
	return out
}
