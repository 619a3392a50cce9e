package stats

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-fir/dsp/core"
)

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean[F core.Float](xs []F) float64 {
	if len(xs) == 0 {
		return 0
	}

	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}

	return sum / float64(len(xs))
}

// Variance returns the sample variance of xs (n-1 divisor).
// It returns 0 for slices shorter than 2.
func Variance[F core.Float](xs []F) float64 {
	if len(xs) < 2 {
		return 0
	}

	mean := Mean(xs)

	var sum float64
	for _, x := range xs {
		diff := float64(x) - mean
		sum += diff * diff
	}

	return sum / float64(len(xs)-1)
}

// StdDev returns the sample standard deviation of xs.
func StdDev[F core.Float](xs []F) float64 {
	return math.Sqrt(Variance(xs))
}

// Median returns the median element of xs, averaging the two middle
// elements for even lengths. It returns 0 for an empty slice.
// The input is not modified.
func Median[F core.Float](xs []F) F {
	if len(xs) == 0 {
		return 0
	}

	scratch := make([]F, len(xs))
	copy(scratch, xs)
	sort.Slice(scratch, func(i, j int) bool { return scratch[i] < scratch[j] })

	mid := len(scratch) / 2
	if len(scratch)&1 == 1 {
		return scratch[mid]
	}

	return (scratch[mid] + scratch[mid-1]) / 2
}

// Max returns the maximum element of xs and its index. If several elements
// equal the maximum, the first index is returned. For an empty slice the
// index is -1.
func Max[F core.Float](xs []F) (F, int) {
	if len(xs) == 0 {
		return 0, -1
	}

	maxVal := xs[0]
	maxIdx := 0
	for i, x := range xs[1:] {
		if maxVal < x {
			maxVal = x
			maxIdx = i + 1
		}
	}

	return maxVal, maxIdx
}

// Min returns the minimum element of xs and its index. If several elements
// equal the minimum, the first index is returned. For an empty slice the
// index is -1.
func Min[F core.Float](xs []F) (F, int) {
	if len(xs) == 0 {
		return 0, -1
	}

	minVal := xs[0]
	minIdx := 0
	for i, x := range xs[1:] {
		if x < minVal {
			minVal = x
			minIdx = i + 1
		}
	}

	return minVal, minIdx
}
