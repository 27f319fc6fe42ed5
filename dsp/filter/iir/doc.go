// Package iir provides a rational transfer function (IIR) filter runtime.
//
// A [Filter] realises
//
//	H(z) = (b[0] + b[1] z^-1 + ... + b[M] z^-M) / (a[0] + a[1] z^-1 + ... + a[N] z^-N)
//
// in direct form II transposed with zero initial state. Coefficients are
// normalised so that a[0] == 1 and both polynomials are padded to a common
// length. The package also evaluates the frequency response of such a
// system on arbitrary normalised frequencies (radians/sample), see [FreqZ].
//
// Coefficient design is a separate concern. The runtime is intended for
// low-order systems such as ARMA lag polynomials; for high-order audio
// filters prefer cascaded second-order sections.
package iir
