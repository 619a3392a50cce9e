package buffer

import "github.com/cwbudde/algo-fir/dsp/core"

// Scratch is reusable snapshot storage for filtering operations. Because an
// operation's output overwrites its own input, every call first copies the
// input samples aside; a Scratch lets several Buffers share one such copy
// area instead of allocating per call.
//
// A Scratch may be shared by any number of Buffers that are processed
// sequentially on a single goroutine. Sharing one across goroutines is a
// caller error: Snapshot mutates the scratch storage.
type Scratch[C core.Complex] struct {
	data []C
}

// NewScratch returns an empty Scratch. Storage grows on first use and is
// retained across calls.
func NewScratch[C core.Complex]() *Scratch[C] {
	return &Scratch[C]{}
}

func (s *Scratch[C]) take(src []C) []C {
	if cap(s.data) < len(src) {
		s.data = make([]C, len(src))
	}
	s.data = s.data[:len(src)]
	copy(s.data, src)
	return s.data
}

// SetScratch attaches a caller-owned Scratch to the Buffer. Passing nil
// detaches it, restoring per-call private snapshot allocation.
func (b *Buffer[C]) SetScratch(s *Scratch[C]) {
	b.scratch = s
}

// Scratch returns the attached Scratch, or nil if none is attached.
func (b *Buffer[C]) Scratch() *Scratch[C] {
	return b.scratch
}

// Snapshot copies the current sample contents into the attached Scratch and
// returns the snapshot slice. Without an attached Scratch a private slice is
// allocated instead. The returned slice aliases the scratch storage and is
// only valid until the next Snapshot through the same Scratch.
func (b *Buffer[C]) Snapshot() []C {
	if b.scratch != nil {
		return b.scratch.take(b.samples)
	}
	snap := make([]C, len(b.samples))
	copy(snap, b.samples)
	return snap
}
