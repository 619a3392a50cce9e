// Package fir applies a real-coefficient FIR filter to a complex sample
// sequence through four fused operations: plain convolution, decimation
// (filter + downsample), interpolation (upsample + filter), and rational
// resampling (upsample + filter + downsample). The rate-converting variants
// never materialize the intermediate upsampled sequence and never multiply
// against the conceptually inserted zeros.
//
// All four operations overwrite and resize their sample Buffer in place.
// Each call first snapshots the input (into the Buffer's attached Scratch,
// if any), so input and output may share storage safely.
//
// With trimTails true the filter's transient ramp-up and ramp-down regions
// are discarded and the output keeps the input's natural rate-converted
// length, centered on the filter delay floor((N-1)/2). With trimTails false
// the mathematically complete convolution is returned.
//
//	f, _ := fir.New[complex128]([]float64{0.25, 0.5, 0.25})
//	data := buffer.FromSlice(samples)
//	_ = f.Convolve(data, true)
//
// Free functions taking the sequence first (Convolve, Decimate, Interpolate,
// Resample) are ergonomic aliases for the corresponding methods.
package fir
