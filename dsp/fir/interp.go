package fir

import (
	"github.com/cwbudde/algo-fir/dsp/buffer"
	"github.com/cwbudde/algo-fir/dsp/core"
)

// Interpolate upsamples data by rate and convolves it with the filter in one
// fused pass. Conceptually (rate-1) zeros are inserted between consecutive
// input samples before filtering; the fused loop skips the multiplications
// against those zeros by stepping the tap index by rate instead of 1.
func (f *Filter[C]) Interpolate(data *buffer.Buffer[C], rate int, trimTails bool) error {
	if rate <= 0 {
		return ErrInvalidRate
	}

	n := len(f.taps)
	m := data.Len()

	if trimTails {
		if err := f.checkTrimLength(m * rate); err != nil {
			return err
		}
	}

	if m == 0 {
		if trimTails {
			data.Resize(0)
		} else {
			data.Resize(n - rate) // clamped at zero by Resize
		}
		return nil
	}

	taps := f.ctaps
	snap := data.Snapshot()

	if trimTails {
		trim := f.initialTrim()
		data.Resize(m * rate)
		out := data.Samples()
		r := 0

		// Initial partial overlap.
		for ; r < (n-1)-trim; r++ {
			var sum C
			for d, fi := 0, trim+r; fi >= 0 && d < m; d, fi = d+1, fi-rate {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum
		}

		// Middle full overlap. The cursor pair (dataStart, filterStart)
		// names the first input sample the window still overlaps and the
		// tap aligned with it.
		dataStart, filterStart := 0, n-1
		for ; r < m*rate-trim; r++ {
			var sum C
			for d, fi := dataStart, filterStart; fi >= 0; d, fi = d+1, fi-rate {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum

			filterStart++
			if filterStart >= n {
				// The window slid past input sample dataStart.
				filterStart -= rate
				dataStart++
			}
		}

		// Final partial overlap.
		for ; r < len(out); r++ {
			var sum C
			for d, fi := dataStart, filterStart; d < m && fi >= 0; d, fi = d+1, fi-rate {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum

			filterStart++
			if filterStart >= n {
				filterStart -= rate
				dataStart++
			}
		}

		return nil
	}

	data.Resize(m*rate + n - 1 - (rate - 1))
	out := data.Samples()
	r := 0

	// Initial partial overlap.
	for ; r < n-1; r++ {
		var sum C
		for d, fi := 0, r; fi >= 0 && d < m; d, fi = d+1, fi-rate {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum
	}

	// Middle full overlap. The output is shorter than m*rate when the
	// kernel is shorter than the rate, so the bound caps at len(out).
	dataStart, filterStart := 0, n-1
	for ; r < m*rate && r < len(out); r++ {
		var sum C
		for d, fi := dataStart, filterStart; fi >= 0; d, fi = d+1, fi-rate {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum

		filterStart++
		if filterStart >= n {
			filterStart -= rate
			dataStart++
		}
	}

	// Final partial overlap.
	for ; r < len(out); r++ {
		var sum C
		for d, fi := dataStart, filterStart; d < m && fi >= 0; d, fi = d+1, fi-rate {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum

		filterStart++
		if filterStart >= n {
			filterStart -= rate
			dataStart++
		}
	}

	return nil
}

// Interpolate is shorthand for f.Interpolate(data, rate, trimTails).
func Interpolate[C core.Complex](data *buffer.Buffer[C], rate int, f *Filter[C], trimTails bool) error {
	return f.Interpolate(data, rate, trimTails)
}
