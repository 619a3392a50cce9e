package fir

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-fir/dsp/buffer"
	"github.com/cwbudde/algo-fir/dsp/core"
)

// OverlapAdd implements FFT-based convolution using the overlap-add method.
// Convolve delegates to it for long kernels; it is exported for callers that
// convolve many sequences against the same filter and want to reuse the
// kernel FFT and plan.
//
// The algorithm:
//  1. Divide the input sequence into non-overlapping blocks
//  2. Zero-pad each block and the kernel to FFT size
//  3. Convolve via FFT multiplication in the frequency domain
//  4. Overlap-add the block results to form the output
type OverlapAdd[C core.Complex] struct {
	// Kernel in frequency domain
	kernelFFT []complex128

	// Configuration
	kernelLen int // Original kernel length
	blockSize int // Input block size
	fftSize   int // FFT size (blockSize + kernelLen - 1, rounded to power of 2)

	// FFT plan
	plan *algofft.Plan[complex128]

	// Scratch buffers
	inputPadded  []complex128
	outputPadded []complex128
}

// NewOverlapAdd creates an overlap-add convolver for the filter's kernel.
// blockSize determines how the input sequence is segmented.
// If blockSize is 0, an automatic size is chosen based on kernel length.
func NewOverlapAdd[C core.Complex](f *Filter[C], blockSize int) (*OverlapAdd[C], error) {
	kernelLen := len(f.taps)

	// Auto-select block size if not specified
	if blockSize <= 0 {
		// Rule of thumb: block size roughly equal to or larger than kernel
		blockSize = nextPowerOf2(kernelLen)
		if blockSize < 256 {
			blockSize = 256
		}
	}

	// FFT size must accommodate block + kernel - 1 for linear convolution
	minFFTSize := blockSize + kernelLen - 1
	fftSize := nextPowerOf2(minFFTSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("fir: failed to create FFT plan: %w", err)
	}

	oa := &OverlapAdd[C]{
		kernelFFT:    make([]complex128, fftSize),
		kernelLen:    kernelLen,
		blockSize:    blockSize,
		fftSize:      fftSize,
		plan:         plan,
		inputPadded:  make([]complex128, fftSize),
		outputPadded: make([]complex128, fftSize),
	}

	// Compute kernel FFT
	kernelPadded := make([]complex128, fftSize)
	for i, v := range f.taps {
		kernelPadded[i] = complex(v, 0)
	}

	err = plan.Forward(oa.kernelFFT, kernelPadded)
	if err != nil {
		return nil, fmt.Errorf("fir: failed to compute kernel FFT: %w", err)
	}

	return oa, nil
}

// BlockSize returns the input block size.
func (oa *OverlapAdd[C]) BlockSize() int {
	return oa.blockSize
}

// FFTSize returns the FFT size used internally.
func (oa *OverlapAdd[C]) FFTSize() int {
	return oa.fftSize
}

// KernelLen returns the kernel length.
func (oa *OverlapAdd[C]) KernelLen() int {
	return oa.kernelLen
}

// Process convolves the input sequence with the kernel.
// Returns the full linear convolution, length len(input) + KernelLen() - 1.
func (oa *OverlapAdd[C]) Process(input []C) ([]C, error) {
	if len(input) == 0 {
		return make([]C, oa.kernelLen-1), nil
	}

	outputLen := len(input) + oa.kernelLen - 1
	acc := make([]complex128, outputLen)

	numBlocks := (len(input) + oa.blockSize - 1) / oa.blockSize

	for blockIdx := 0; blockIdx < numBlocks; blockIdx++ {
		start := blockIdx * oa.blockSize
		end := start + oa.blockSize
		if end > len(input) {
			end = len(input)
		}
		blockLen := end - start

		// Zero-pad input block to FFT size
		for i := range oa.inputPadded {
			oa.inputPadded[i] = 0
		}
		for i := 0; i < blockLen; i++ {
			oa.inputPadded[i] = complex128(input[start+i])
		}

		err := oa.plan.Forward(oa.inputPadded, oa.inputPadded)
		if err != nil {
			return nil, fmt.Errorf("fir: forward FFT failed: %w", err)
		}

		// Multiply in frequency domain
		for i := range oa.outputPadded {
			oa.outputPadded[i] = oa.inputPadded[i] * oa.kernelFFT[i]
		}

		err = oa.plan.Inverse(oa.outputPadded, oa.outputPadded)
		if err != nil {
			return nil, fmt.Errorf("fir: inverse FFT failed: %w", err)
		}

		// Overlap-add: the block result is blockLen + kernelLen - 1
		// samples long; add all of them to the output at position start.
		resultLen := blockLen + oa.kernelLen - 1
		for i := 0; i < resultLen && start+i < outputLen; i++ {
			acc[start+i] += oa.outputPadded[i]
		}
	}

	out := make([]C, outputLen)
	for i, v := range acc {
		out[i] = C(v)
	}

	return out, nil
}

// convolveFFT computes Convolve through the overlap-add path. The trimmed
// window is the same centered slice of the full convolution the direct path
// produces.
func (f *Filter[C]) convolveFFT(data *buffer.Buffer[C], trimTails bool) error {
	snap := data.Snapshot()
	m := len(snap)

	oa, err := NewOverlapAdd(f, 0)
	if err != nil {
		return err
	}

	full, err := oa.Process(snap)
	if err != nil {
		return err
	}

	if trimTails {
		trim := f.initialTrim()
		copy(data.Samples(), full[trim:trim+m])
		return nil
	}

	data.Resize(m + len(f.taps) - 1)
	copy(data.Samples(), full)

	return nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
