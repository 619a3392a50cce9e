// Package stats provides the small descriptive-statistics and element
// utilities that accompany the filtering kernel: mean, variance, median and
// extrema over real slices (filter coefficients), and SIMD-backed magnitude
// and power helpers over complex sample slices.
package stats
