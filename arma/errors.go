package arma

import "errors"

var (
	// ErrInvalidParameter reports empty or non-finite coefficients, or a
	// sigma that is not a positive finite number.
	ErrInvalidParameter = errors.New("arma: invalid parameter")

	// ErrInvalidArgument reports a bad query argument such as a negative
	// length, a non-positive resolution or a nil random source.
	ErrInvalidArgument = errors.New("arma: invalid argument")
)
