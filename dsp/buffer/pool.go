package buffer

import (
	"sync"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure
// in batch processing loops.
type Pool[C core.Complex] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[C core.Complex]() *Pool[C] {
	return &Pool[C]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[C]{}
			},
		},
	}
}

// Get returns a Buffer with the requested length. The buffer is zeroed.
// Callers must return it via Put when done.
func (p *Pool[C]) Get(length int) *Buffer[C] {
	b := p.pool.Get().(*Buffer[C])
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[C]) Put(b *Buffer[C]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
