package stats

import (
	"errors"
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-fir/dsp/core"
)

var errMismatchedLength = errors.New("stats: dst and src lengths differ")

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

// Magnitudes returns |x| for each complex sample.
//
// This uses SIMD-optimized implementations when available. Unpack scratch is
// pooled internally, so in steady state this allocates only the output slice.
func Magnitudes[C core.Complex](in []C) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		z := complex128(c)
		re[i] = real(z)
		im[i] = imag(z)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudesTo computes |x| for each complex sample into dst.
// dst must have the same length as in.
func MagnitudesTo[C core.Complex](dst []float64, in []C) error {
	if len(dst) != len(in) {
		return errMismatchedLength
	}
	if len(in) == 0 {
		return nil
	}

	re, im, buf := getScratch(len(in))
	for i, c := range in {
		z := complex128(c)
		re[i] = real(z)
		im[i] = imag(z)
	}

	vecmath.Magnitude(dst, re, im)
	putScratch(buf)
	return nil
}

// Powers returns |x|^2 for each complex sample.
func Powers[C core.Complex](in []C) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		z := complex128(c)
		re[i] = real(z)
		im[i] = imag(z)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// PeakMagnitude returns the largest sample magnitude and its index.
// For an empty slice the index is -1.
func PeakMagnitude[C core.Complex](in []C) (float64, int) {
	if len(in) == 0 {
		return 0, -1
	}

	return Max(Magnitudes(in))
}
