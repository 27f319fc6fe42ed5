package iir

import (
	"errors"
	"fmt"
	"math"
)

// Coefficient errors.
var (
	ErrEmptyCoefficients = errors.New("iir: empty coefficient slice")
	ErrZeroLeading       = errors.New("iir: leading denominator coefficient is zero")
	ErrNonFinite         = errors.New("iir: non-finite coefficient")
)

// Filter implements a rational transfer function in direct form II
// transposed.
type Filter struct {
	b     []float64
	a     []float64
	state []float64
}

// New creates a filter with numerator b and denominator a.
// The coefficients are copied, padded to a common length and divided by a[0].
func New(b, a []float64) (*Filter, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, ErrEmptyCoefficients
	}
	if a[0] == 0 {
		return nil, ErrZeroLeading
	}
	for i, v := range b {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: b[%d] = %v", ErrNonFinite, i, v)
		}
	}
	for i, v := range a {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: a[%d] = %v", ErrNonFinite, i, v)
		}
	}

	n := max(len(b), len(a))
	nb := make([]float64, n)
	na := make([]float64, n)
	a0 := a[0]
	for i, v := range b {
		nb[i] = v / a0
	}
	for i, v := range a {
		na[i] = v / a0
	}

	return &Filter{
		b:     nb,
		a:     na,
		state: make([]float64, n-1),
	}, nil
}

// ProcessSample filters one input sample.
//
//	y[n]   = b[0] x[n] + z[0]
//	z[i]   = b[i+1] x[n] - a[i+1] y[n] + z[i+1]
func (f *Filter) ProcessSample(x float64) float64 {
	y := f.b[0] * x
	if len(f.state) == 0 {
		return y
	}
	y += f.state[0]

	last := len(f.state) - 1
	for i := 0; i < last; i++ {
		f.state[i] = f.b[i+1]*x - f.a[i+1]*y + f.state[i+1]
	}
	f.state[last] = f.b[last+1]*x - f.a[last+1]*y
	return y
}

// ProcessBlock filters a block of samples in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint
	for i, x := range src {
		dst[i] = f.ProcessSample(x)
	}
}

// Reset clears the filter state to zero.
func (f *Filter) Reset() {
	for i := range f.state {
		f.state[i] = 0
	}
}

// State returns a copy of the internal delay state.
func (f *Filter) State() []float64 {
	s := make([]float64, len(f.state))
	copy(s, f.state)
	return s
}

// SetState restores a state previously obtained from [Filter.State].
// Extra values are ignored and missing values are treated as zero.
func (f *Filter) SetState(s []float64) {
	f.Reset()
	copy(f.state, s)
}

// Order returns the filter order (common polynomial length - 1).
func (f *Filter) Order() int {
	return len(f.state)
}

// Numerator returns a copy of the normalised numerator coefficients.
func (f *Filter) Numerator() []float64 {
	c := make([]float64, len(f.b))
	copy(c, f.b)
	return c
}

// Denominator returns a copy of the normalised denominator coefficients.
// The first element is always 1.
func (f *Filter) Denominator() []float64 {
	c := make([]float64, len(f.a))
	copy(c, f.a)
	return c
}

// ImpulseResponse computes n samples of the impulse response h[n] by feeding
// a unit impulse through the filter from zero state. The filter state is
// saved and restored so this method does not modify the filter.
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	saved := f.State()
	f.Reset()
	ir := make([]float64, n)
	ir[0] = f.ProcessSample(1)
	for i := 1; i < n; i++ {
		ir[i] = f.ProcessSample(0)
	}
	f.SetState(saved)
	return ir
}
