package testutil

import (
	"math"
	"testing"
)

func TestMaxAbsDiff(t *testing.T) {
	tests := []struct {
		name  string
		a, b  []float64
		want  float64
		index int
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 0, 0},
		{"single", []float64{1, 2, 3}, []float64{1, 2.1, 3}, 0.1, 1},
		{"worst wins", []float64{0, 0, 0, 0}, []float64{0.1, -0.5, 0.2, 0}, 0.5, 1},
		{"empty", nil, nil, 0, 0},
	}

	for _, tt := range tests {
		d, i, err := maxAbsDiff(tt.a, tt.b)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}

		if math.Abs(d-tt.want) > 1e-15 || i != tt.index {
			t.Errorf("%s: got (%v, %d), want (%v, %d)", tt.name, d, i, tt.want, tt.index)
		}
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}

func TestRequireHelpersPass(t *testing.T) {
	delayed := Delayed(Impulse(8, 0), 3)
	RequireSliceNearlyEqual(t, delayed, Impulse(8, 3), 0)
	RequireFinite(t, delayed, Ones(4), nil)
}
