package iir

import (
	"math"
	"math/cmplx"
)

// Response computes the complex frequency response H(e^{jw}) at the
// normalised angular frequency w (radians/sample).
func (f *Filter) Response(w float64) complex128 {
	return evalRational(f.b, f.a, w)
}

// MagnitudeSquared returns |H(e^{jw})|^2 as re^2 + im^2, which is never
// negative.
func (f *Filter) MagnitudeSquared(w float64) float64 {
	h := f.Response(w)
	re, im := real(h), imag(h)
	return re*re + im*im
}

// MagnitudeDB returns the magnitude response in dB at w. Build with the
// fastmath tag to trade accuracy for speed.
func (f *Filter) MagnitudeDB(w float64) float64 {
	return 10 * mathLog10(f.MagnitudeSquared(w))
}

// ResponseHz computes the frequency response at freqHz for the given sample
// rate.
func (f *Filter) ResponseHz(freqHz, sampleRate float64) complex128 {
	return f.Response(2 * math.Pi * freqHz / sampleRate)
}

// FreqZ evaluates the frequency response of the filter at each normalised
// angular frequency in w.
func (f *Filter) FreqZ(w []float64) []complex128 {
	return FreqZ(f.b, f.a, w)
}

// FreqZ evaluates b(e^{-jw}) / a(e^{-jw}) at each frequency in w, where b and
// a are coefficient slices in ascending powers of z^-1. Unlike [New], the
// coefficients are used as given: no padding or normalisation is applied.
func FreqZ(b, a, w []float64) []complex128 {
	out := make([]complex128, len(w))
	for i, wk := range w {
		out[i] = evalRational(b, a, wk)
	}
	return out
}

func evalRational(b, a []float64, w float64) complex128 {
	z := cmplx.Exp(complex(0, -w))
	return polyEval(b, z) / polyEval(a, z)
}

// polyEval evaluates c[0] + c[1] z + ... + c[n] z^n with Horner's method.
func polyEval(c []float64, z complex128) complex128 {
	var v complex128
	for i := len(c) - 1; i >= 0; i-- {
		v = v*z + complex(c[i], 0)
	}
	return v
}
