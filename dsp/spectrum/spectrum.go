package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// ErrInvalidLength is returned for non-positive grid or transform sizes.
var ErrInvalidLength = errors.New("spectrum: invalid length")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Frequencies returns n normalised angular frequencies w[k] = k*W/n for
// k = 0..n-1, where W is 2*pi when whole is true and pi otherwise. The upper
// end of the interval is excluded.
func Frequencies(n int, whole bool) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: frequency grid size must be > 0: %d", ErrInvalidLength, n)
	}
	span := math.Pi
	if whole {
		span = 2 * math.Pi
	}
	step := span / float64(n)
	out := make([]float64, n)
	for k := range out {
		out[k] = step * float64(k)
	}
	return out, nil
}

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// The real and imaginary parts are unpacked into pooled scratch buffers and
// squared with the vecmath kernels, so the result is real and non-negative
// by construction.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
// All three slices must have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// ScaledPower returns |X[k]|^2 * scale for each bin. It is the power spectral
// density of a filter driven by white noise of variance scale.
func ScaledPower(in []complex128, scale float64) []float64 {
	out := Power(in)
	if len(out) == 0 {
		return out
	}
	vecmath.ScaleBlockInPlace(out, scale)
	return out
}
