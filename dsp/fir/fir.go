package fir

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// Errors returned by filtering operations.
var (
	ErrEmptyKernel      = errors.New("fir: empty kernel")
	ErrInvalidRate      = errors.New("fir: rate must be positive")
	ErrSequenceTooShort = errors.New("fir: sequence too short for trimmed output")
)

// Filter is a finite impulse response filter with real coefficients,
// applied to sequences of complex samples of type C. The coefficients are
// read-only for the duration of any filtering call.
type Filter[C core.Complex] struct {
	taps []float64
	// taps converted to C once at construction so the accumulation loops
	// stay in the sample type.
	ctaps []C
}

// New creates a Filter from the given coefficients. The slice is copied.
// A zero-length kernel is rejected: convolution with no taps is undefined.
func New[C core.Complex](taps []float64) (*Filter[C], error) {
	if len(taps) == 0 {
		return nil, ErrEmptyKernel
	}

	f := &Filter[C]{
		taps:  append([]float64(nil), taps...),
		ctaps: make([]C, len(taps)),
	}
	f.syncComplexTaps()

	return f, nil
}

func (f *Filter[C]) syncComplexTaps() {
	for i, v := range f.taps {
		f.ctaps[i] = C(complex(v, 0))
	}
}

// Len returns the number of coefficients.
func (f *Filter[C]) Len() int {
	return len(f.taps)
}

// Taps returns a copy of the coefficients.
func (f *Filter[C]) Taps() []float64 {
	out := make([]float64, len(f.taps))
	copy(out, f.taps)

	return out
}

// Saturate clamps every coefficient to the range [-limit, limit].
func (f *Filter[C]) Saturate(limit float64) {
	for i, v := range f.taps {
		f.taps[i] = core.Clamp(v, -limit, limit)
	}
	f.syncComplexTaps()
}

// Pow raises every coefficient to the given exponent.
func (f *Filter[C]) Pow(exponent float64) {
	for i, v := range f.taps {
		f.taps[i] = math.Pow(v, exponent)
	}
	f.syncComplexTaps()
}

// initialTrim returns the number of leading samples of the full convolution
// dropped in trimmed mode, centering the filter delay.
func (f *Filter[C]) initialTrim() int {
	return (len(f.taps) - 1) / 2
}

// checkTrimLength validates that a trimmed operation has enough input to
// reach full overlap. upLen is the input length in the upsampled index
// space (M for convolve/decimate, M*L for interpolate/resample).
func (f *Filter[C]) checkTrimLength(upLen int) error {
	if upLen > 0 && upLen < len(f.taps)-1 {
		return ErrSequenceTooShort
	}
	return nil
}
