package fir

import (
	"github.com/cwbudde/algo-fir/dsp/buffer"
	"github.com/cwbudde/algo-fir/dsp/core"
)

// Resample upsamples data by interpRate, convolves it with the filter, and
// downsamples by decimateRate, all in one fused pass that never materializes
// the intermediate upsampled sequence. Resample(data, 1, 1) is Convolve,
// Resample(data, rate, 1) is Interpolate, and Resample(data, 1, rate) is
// Decimate.
func (f *Filter[C]) Resample(data *buffer.Buffer[C], interpRate, decimateRate int, trimTails bool) error {
	if interpRate <= 0 || decimateRate <= 0 {
		return ErrInvalidRate
	}

	n := len(f.taps)
	m := data.Len()

	if trimTails {
		if err := f.checkTrimLength(m * interpRate); err != nil {
			return err
		}
	}

	if m == 0 {
		if trimTails {
			data.Resize(0)
		} else {
			interpLen := n - interpRate
			if interpLen < 0 {
				interpLen = 0
			}
			data.Resize(core.CeilDiv(interpLen, decimateRate))
		}
		return nil
	}

	taps := f.ctaps
	snap := data.Snapshot()

	if trimTails {
		trim := f.initialTrim()
		data.Resize(core.CeilDiv(m*interpRate, decimateRate))
		out := data.Samples()

		// The cursor pair (dataStart, filterStart) names the first input
		// sample the window still overlaps and the tap aligned with it. It
		// advances by decimateRate positions in the upsampled index space
		// per output sample, wrapping in steps of interpRate; the wrap can
		// trigger several times per output when decimateRate > interpRate.
		r, dataStart, filterStart := 0, 0, trim

		// Initial partial overlap.
		for ; r < core.CeilDiv((n-1)-trim, decimateRate); r++ {
			var sum C
			for d, fi := 0, filterStart; fi >= 0 && d < m; d, fi = d+1, fi-interpRate {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum

			filterStart += decimateRate
			for filterStart >= n {
				filterStart -= interpRate
				dataStart++
			}
		}

		// Middle full overlap.
		for ; r < core.CeilDiv(m*interpRate-trim, decimateRate); r++ {
			var sum C
			for d, fi := dataStart, filterStart; fi >= 0; d, fi = d+1, fi-interpRate {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum

			filterStart += decimateRate
			for filterStart >= n {
				filterStart -= interpRate
				dataStart++
			}
		}

		// Final partial overlap.
		for ; r < len(out); r++ {
			var sum C
			for d, fi := dataStart, filterStart; d < m && fi >= 0; d, fi = d+1, fi-interpRate {
				sum += snap[d] * taps[fi]
			}
			out[r] = sum

			filterStart += decimateRate
			for filterStart >= n {
				filterStart -= interpRate
				dataStart++
			}
		}

		return nil
	}

	interpLen := m*interpRate + n - 1 - (interpRate - 1)
	data.Resize(core.CeilDiv(interpLen, decimateRate))
	out := data.Samples()

	r, dataStart, filterStart := 0, 0, 0

	// Initial partial overlap.
	for ; r < core.CeilDiv(n-1, decimateRate); r++ {
		var sum C
		for d, fi := 0, filterStart; fi >= 0 && d < m; d, fi = d+1, fi-interpRate {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum

		filterStart += decimateRate
		for filterStart >= n {
			filterStart -= interpRate
			dataStart++
		}
	}

	// Middle full overlap. The output is shorter than ceil(m*L/D) when the
	// kernel is shorter than the interpolation rate, so the bound caps at
	// len(out).
	for ; r < core.CeilDiv(m*interpRate, decimateRate) && r < len(out); r++ {
		var sum C
		for d, fi := dataStart, filterStart; fi >= 0; d, fi = d+1, fi-interpRate {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum

		filterStart += decimateRate
		for filterStart >= n {
			filterStart -= interpRate
			dataStart++
		}
	}

	// Final partial overlap.
	for ; r < len(out); r++ {
		var sum C
		for d, fi := dataStart, filterStart; d < m && fi >= 0; d, fi = d+1, fi-interpRate {
			sum += snap[d] * taps[fi]
		}
		out[r] = sum

		filterStart += decimateRate
		for filterStart >= n {
			filterStart -= interpRate
			dataStart++
		}
	}

	return nil
}

// Resample is shorthand for f.Resample(data, interpRate, decimateRate, trimTails).
func Resample[C core.Complex](data *buffer.Buffer[C], interpRate, decimateRate int, f *Filter[C], trimTails bool) error {
	return f.Resample(data, interpRate, decimateRate, trimTails)
}
