package fir

import (
	"github.com/cwbudde/algo-fir/dsp/buffer"
	"github.com/cwbudde/algo-fir/dsp/core"
)

// Decimate convolves data with the filter and downsamples by rate in one
// fused pass: only every rate-th sample of the conceptual full convolution
// is computed and stored. Results are numerically identical to Convolve
// followed by keeping indices 0, rate, 2*rate, ...
func (f *Filter[C]) Decimate(data *buffer.Buffer[C], rate int, trimTails bool) error {
	if rate <= 0 {
		return ErrInvalidRate
	}

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
			data.Resize(core.CeilDiv(n-1, rate))
		}
		return nil
	}

	taps := f.ctaps
	snap := data.Snapshot()

	if trimTails {
		trim := f.initialTrim()
		data.Resize(core.CeilDiv(m, rate))
		out := data.Samples()
		r := 0

		// Initial partial overlap.
		for ; r < core.CeilDiv((n-1)-trim, rate); r++ {
			var sum C
			for d, fi := 0, trim+r*rate; fi >= 0; d, fi = d+1, fi-1 {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum
		}

		// Middle full overlap.
		for ; r < core.CeilDiv(m-trim, rate); r++ {
			var sum C
			for d, fi := r*rate-((n-1)-trim), n-1; fi >= 0; d, fi = d+1, fi-1 {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum
		}

		// Final partial overlap.
		for ; r < len(out); r++ {
			var sum C
			for d, fi := r*rate-((n-1)-trim), n-1; d < m; d, fi = d+1, fi-1 {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum
		}

		return nil
	}

	data.Resize(core.CeilDiv(m+n-1, rate))
	out := data.Samples()
	r := 0

	// Initial partial overlap. The d < m guard matters when the input is
	// shorter than the kernel.
	for ; r < core.CeilDiv(n-1, rate); r++ {
		var sum C
		for d, fi := 0, r*rate; fi >= 0 && d < m; d, fi = d+1, fi-1 {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum
	}

	// Middle full overlap.
	for ; r < core.CeilDiv(m, rate); r++ {
		var sum C
		for d, fi := r*rate-(n-1), n-1; fi >= 0; d, fi = d+1, fi-1 {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum
	}

	// Final partial overlap.
	for ; r < len(out); r++ {
		var sum C
		for d, fi := r*rate-(n-1), n-1; d < m; d, fi = d+1, fi-1 {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum
	}

	return nil
}

// Decimate is shorthand for f.Decimate(data, rate, trimTails).
func Decimate[C core.Complex](data *buffer.Buffer[C], rate int, f *Filter[C], trimTails bool) error {
	return f.Decimate(data, rate, trimTails)
}
