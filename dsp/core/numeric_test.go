package core

import "testing"

func TestClamp(t *testing.T) {
	tests := []struct {
		name             string
		value, min, max  float64
		expected         float64
	}{
		{"within range", 0.5, 0, 1, 0.5},
		{"below min", -2, 0, 1, 0},
		{"above max", 3, 0, 1, 1},
		{"swapped bounds", 0.5, 1, 0, 0.5},
		{"at min", 0, 0, 1, 0},
		{"at max", 1, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.value, tt.min, tt.max); got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.value, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

func TestClampFloat32(t *testing.T) {
	if got := Clamp[float32](2, -1, 1); got != 1 {
		t.Errorf("Clamp[float32](2, -1, 1) = %v, want 1", got)
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, expected int
	}{
		{0, 1, 0},
		{0, 3, 0},
		{1, 1, 1},
		{6, 2, 3},
		{7, 2, 4},
		{9, 3, 3},
		{10, 3, 4},
	}

	for _, tt := range tests {
		if got := CeilDiv(tt.a, tt.b); got != tt.expected {
			t.Errorf("CeilDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Error("values within eps should be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Error("distant values should not be nearly equal")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Error("zero should equal zero with default epsilon")
	}
	if !NearlyEqual(1e9, 1e9+0.1, 1e-9) {
		t.Error("relative comparison should apply for large magnitudes")
	}
}
