package core

import "math"

const defaultEpsilon = 1e-12

// Float constrains the real scalar types used for filter coefficients.
type Float interface {
	~float32 | ~float64
}

// Complex constrains the complex sample types processed by the filtering
// routines in this module.
type Complex interface {
	~complex64 | ~complex128
}

// Clamp limits value to the inclusive range [min, max].
func Clamp[F Float](value, min, max F) F {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// CeilDiv returns ceil(a/b) for a >= 0 and b > 0. Every rate-converted
// output length in this module is a ceiling division of a conceptual
// convolution length by a decimation rate.
func CeilDiv(a, b int) int {
	return (a + b - 1) / b
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
