package fir

import (
	"github.com/cwbudde/algo-fir/dsp/buffer"
	"github.com/cwbudde/algo-fir/dsp/core"
)

// fastConvThreshold is the kernel length at which Convolve switches from
// the direct loops to FFT-based overlap-add.
const fastConvThreshold = 64

// Convolve replaces the contents of data with its linear convolution
// against the filter. With trimTails false the result has length
// data.Len() + f.Len() - 1; with trimTails true the transient tails are
// dropped and the length is preserved.
func (f *Filter[C]) Convolve(data *buffer.Buffer[C], trimTails bool) error {
	n := len(f.taps)
	m := data.Len()

	if trimTails {
		if err := f.checkTrimLength(m); err != nil {
			return err
		}
	}

	if m == 0 {
		if trimTails {
			data.Resize(0)
		} else {
			data.Resize(n - 1)
		}
		return nil
	}

	if n >= fastConvThreshold {
		return f.convolveFFT(data, trimTails)
	}

	f.convolveDirect(data, trimTails)

	return nil
}

// Convolve is shorthand for f.Convolve(data, trimTails).
func Convolve[C core.Complex](data *buffer.Buffer[C], f *Filter[C], trimTails bool) error {
	return f.Convolve(data, trimTails)
}

// convolveDirect walks the filter window across the snapshot in three index
// regions: the initial partial overlap where the window extends before the
// first sample, the middle full overlap, and the final partial overlap where
// the window extends past the last sample.
func (f *Filter[C]) convolveDirect(data *buffer.Buffer[C], trimTails bool) {
	taps := f.ctaps
	n := len(taps)

	snap := data.Snapshot()
	m := len(snap)

	if trimTails {
		trim := f.initialTrim()
		out := data.Samples()
		r := 0

		// Initial partial overlap.
		for ; r < (n-1)-trim; r++ {
			var sum C
			for d, fi := 0, trim+r; fi >= 0; d, fi = d+1, fi-1 {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum
		}

		// Middle full overlap.
		for ; r < m-trim; r++ {
			var sum C
			for d, fi := r-((n-1)-trim), n-1; fi >= 0; d, fi = d+1, fi-1 {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum
		}

		// Final partial overlap.
		for ; r < m; r++ {
			var sum C
			for d, fi := r-((n-1)-trim), n-1; d < m; d, fi = d+1, fi-1 {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum
		}

		return
	}

	data.Resize(m + n - 1)
	out := data.Samples()
	r := 0

	// Initial partial overlap. The d < m guard matters when the input is
	// shorter than the kernel.
	for ; r < n-1; r++ {
		var sum C
		for d, fi := 0, r; fi >= 0 && d < m; d, fi = d+1, fi-1 {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum
	}

	// Middle full overlap.
	for ; r < m; r++ {
		var sum C
		for d, fi := r-(n-1), n-1; fi >= 0; d, fi = d+1, fi-1 {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum
	}

	// Final partial overlap.
	for ; r < len(out); r++ {
		var sum C
		for d, fi := r-(n-1), n-1; d < m; d, fi = d+1, fi-1 {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum
	}
}
