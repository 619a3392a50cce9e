// Package buffer provides a resizable complex sample sequence used as both
// input and output of the filtering operations in dsp/fir. A Buffer may share
// a caller-owned Scratch with other Buffers to avoid per-call snapshot
// allocations; a shared Scratch must only be used from a single goroutine.
package buffer
