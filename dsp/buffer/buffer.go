package buffer

import "github.com/cwbudde/algo-fir/dsp/core"

// Buffer wraps a complex sample slice with reuse-friendly dynamic-array
// semantics. The filtering operations in dsp/fir overwrite and resize a
// Buffer in place; use Samples() to bridge to raw slices.
type Buffer[C core.Complex] struct {
	samples []C
	scratch *Scratch[C]
}

// New returns a zero-filled Buffer of the given length.
func New[C core.Complex](length int) *Buffer[C] {
	if length < 0 {
		length = 0
	}
	return &Buffer[C]{samples: make([]C, length)}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice[C core.Complex](s []C) *Buffer[C] {
	return &Buffer[C]{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer[C]) Samples() []C {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer[C]) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer[C]) Cap() int {
	return cap(b.samples)
}

// Grow ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (b *Buffer[C]) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := make([]C, len(b.samples), n)
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer[C]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]C, n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.samples[i] = 0
		}
	}
}

// Zero sets all samples to 0.
func (b *Buffer[C]) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// ZeroRange sets samples in [start, end) to 0.
// Indices are clamped to valid bounds.
func (b *Buffer[C]) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	for i := start; i < end; i++ {
		b.samples[i] = 0
	}
}

// Copy returns a deep copy of the sample data. The copy carries the same
// Scratch reference as b; see Scratch for the sharing rules.
func (b *Buffer[C]) Copy() *Buffer[C] {
	s := make([]C, len(b.samples))
	copy(s, b.samples)
	return &Buffer[C]{samples: s, scratch: b.scratch}
}
