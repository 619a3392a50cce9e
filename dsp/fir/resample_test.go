package fir

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-fir/dsp/buffer"
	"github.com/cwbudde/algo-fir/dsp/core"
)

func TestResampleMatchesZeroStuffConvolveDownsample(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, m := range []int{1, 2, 6, 15, 30} {
		for _, n := range []int{1, 3, 5, 8} {
			for _, interpRate := range []int{1, 2, 3, 5} {
				for _, decimateRate := range []int{1, 2, 3, 7} {
					taps := randTaps(rng, n)
					x := randSeq(rng, m)
					up := naiveConv(zeroStuff(x, interpRate), taps)

					f, err := New[complex128](taps)
					if err != nil {
						t.Fatalf("unexpected error: %v", err)
					}

					data := buffer.FromSlice(append([]complex128(nil), x...))
					if err := f.Resample(data, interpRate, decimateRate, false); err != nil {
						t.Fatalf("m=%d n=%d L=%d D=%d: %v", m, n, interpRate, decimateRate, err)
					}
					upLen := m*interpRate + n - 1 - (interpRate - 1)
					assertSeqNear(t, data.Samples(), sampleEvery(up[:upLen], decimateRate), 1e-9)

					if m*interpRate >= n-1 {
						trim := (n - 1) / 2
						data = buffer.FromSlice(append([]complex128(nil), x...))
						if err := f.Resample(data, interpRate, decimateRate, true); err != nil {
							t.Fatalf("m=%d n=%d L=%d D=%d trimmed: %v", m, n, interpRate, decimateRate, err)
						}
						want := sampleEvery(up[trim:trim+m*interpRate], decimateRate)
						assertSeqNear(t, data.Samples(), want, 1e-9)
					}
				}
			}
		}
	}
}

func TestResampleDegeneratesToOtherOps(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	taps := randTaps(rng, 7)
	x := randSeq(rng, 19)

	f, err := New[complex128](taps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	run := func(apply func(*buffer.Buffer[complex128]) error) []complex128 {
		data := buffer.FromSlice(append([]complex128(nil), x...))
		if err := apply(data); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return data.Samples()
	}

	for _, trim := range []bool{false, true} {
		viaResample := run(func(b *buffer.Buffer[complex128]) error { return f.Resample(b, 1, 1, trim) })
		viaConvolve := run(func(b *buffer.Buffer[complex128]) error { return f.Convolve(b, trim) })
		assertSeqNear(t, viaResample, viaConvolve, 1e-9)

		viaResample = run(func(b *buffer.Buffer[complex128]) error { return f.Resample(b, 3, 1, trim) })
		viaInterp := run(func(b *buffer.Buffer[complex128]) error { return f.Interpolate(b, 3, trim) })
		assertSeqNear(t, viaResample, viaInterp, 1e-9)

		viaResample = run(func(b *buffer.Buffer[complex128]) error { return f.Resample(b, 1, 4, trim) })
		viaDecimate := run(func(b *buffer.Buffer[complex128]) error { return f.Decimate(b, 4, trim) })
		assertSeqNear(t, viaResample, viaDecimate, 1e-9)
	}
}

func TestResampleIdentityKernelComposition(t *testing.T) {
	// With the identity kernel, resampling by (L, D) keeps every D-th sample
	// of the zero-stuffed sequence.
	f, err := New[complex128]([]float64{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewSource(9))
	x := randSeq(rng, 12)

	for _, interpRate := range []int{1, 2, 3} {
		for _, decimateRate := range []int{1, 2, 5} {
			data := buffer.FromSlice(append([]complex128(nil), x...))
			if err := f.Resample(data, interpRate, decimateRate, false); err != nil {
				t.Fatalf("L=%d D=%d: %v", interpRate, decimateRate, err)
			}

			stuffed := zeroStuff(x, interpRate)
			upLen := len(x)*interpRate - (interpRate - 1)
			want := sampleEvery(stuffed[:upLen], decimateRate)
			assertSeqNear(t, data.Samples(), want, 0)
		}
	}
}

func TestResampleDecimateFasterThanInterp(t *testing.T) {
	// D > L shrinks the sequence; the wrap in the cursor update fires more
	// than once per output sample.
	rng := rand.New(rand.NewSource(10))
	taps := randTaps(rng, 4)
	x := randSeq(rng, 25)
	up := naiveConv(zeroStuff(x, 2), taps)

	f, err := New[complex128](taps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := buffer.FromSlice(append([]complex128(nil), x...))
	if err := f.Resample(data, 2, 7, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	upLen := 25*2 + 4 - 1 - 1
	assertSeqNear(t, data.Samples(), sampleEvery(up[:upLen], 7), 1e-9)
}

func TestResampleKernelShorterThanInterpRate(t *testing.T) {
	// With n < L the untrimmed output ceil((m*L + n - L) / D) is shorter than
	// ceil(m*L / D), so the full-overlap region must stop at the output
	// length. The identity kernel with L=2, D=1 is the smallest such case.
	f, err := New[complex128]([]float64{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewSource(15))
	x := randSeq(rng, 12)

	data := buffer.FromSlice(append([]complex128(nil), x...))
	if err := f.Resample(data, 2, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Len() != 23 { // 12*2 + 1 - 2
		t.Fatalf("length %d, want 23", data.Len())
	}
	stuffed := zeroStuff(x, 2)
	assertSeqNear(t, data.Samples(), stuffed[:23], 0)

	// Same boundary with a longer kernel and a decimation rate in play.
	taps := randTaps(rng, 3)
	g, err := New[complex128](taps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	up := naiveConv(zeroStuff(x, 5), taps)
	data = buffer.FromSlice(append([]complex128(nil), x...))
	if err := g.Resample(data, 5, 2, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	upLen := 12*5 + 3 - 5
	assertSeqNear(t, data.Samples(), sampleEvery(up[:upLen], 2), 1e-9)
}

func TestResampleEmptyInput(t *testing.T) {
	f, err := New[complex128](make([]float64, 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data := buffer.New[complex128](0)
	if err := f.Resample(data, 2, 3, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := core.CeilDiv(7-2, 3); data.Len() != want {
		t.Errorf("untrimmed empty-input length %d, want %d", data.Len(), want)
	}

	data = buffer.New[complex128](0)
	if err := f.Resample(data, 2, 3, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.Len() != 0 {
		t.Errorf("trimmed empty-input length %d, want 0", data.Len())
	}
}

func TestResampleInvalidRates(t *testing.T) {
	f, err := New[complex128]([]float64{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []struct{ interpRate, decimateRate int }{
		{0, 1}, {1, 0}, {-2, 3}, {3, -2}, {0, 0},
	}
	for _, tc := range cases {
		data := buffer.FromSlice([]complex128{1, 2})
		err := f.Resample(data, tc.interpRate, tc.decimateRate, false)
		if !errors.Is(err, ErrInvalidRate) {
			t.Fatalf("L=%d D=%d: expected ErrInvalidRate, got %v", tc.interpRate, tc.decimateRate, err)
		}
		assertSeqNear(t, data.Samples(), []complex128{1, 2}, 0)
	}
}

func TestResampleTrimmedTooShort(t *testing.T) {
	f, err := New[complex128](make([]float64, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// m*L = 8 < n-1 = 11.
	data := buffer.FromSlice([]complex128{1, 2, 3, 4})
	if err := f.Resample(data, 2, 3, true); !errors.Is(err, ErrSequenceTooShort) {
		t.Fatalf("expected ErrSequenceTooShort, got %v", err)
	}
}

func TestResampleFreeFunctionAlias(t *testing.T) {
	f, err := New[complex128]([]float64{0.5, 0.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	x := []complex128{1, 2i, 3}
	viaMethod := buffer.FromSlice(append([]complex128(nil), x...))
	viaFunc := buffer.FromSlice(append([]complex128(nil), x...))

	if err := f.Resample(viaMethod, 2, 3, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Resample(viaFunc, 2, 3, f, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertSeqNear(t, viaFunc.Samples(), viaMethod.Samples(), 0)
}
