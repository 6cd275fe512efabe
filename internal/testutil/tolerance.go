package testutil

import (
	"fmt"
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any sample pair differs by more than eps. The failure names the worst
// sample, not the first one.
func RequireSliceNearlyEqual(t testing.TB, got, want []float64, eps float64) {
	t.Helper()
	d, i, err := maxAbsDiff(got, want)
	if err != nil {
		t.Fatal(err)
	}
	if d > eps {
		t.Fatalf("sample %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], d, eps)
	}
}

// RequireFinite fails t if any sample of any band is NaN or Inf.
func RequireFinite(t testing.TB, bands ...[]float64) {
	t.Helper()
	for b, data := range bands {
		for i, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("band %d sample %d: non-finite value %v", b, i, v)
			}
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two blocks.
func MaxAbsDiff(a, b []float64) (float64, error) {
	d, _, err := maxAbsDiff(a, b)
	return d, err
}

func maxAbsDiff(a, b []float64) (float64, int, error) {
	if len(a) != len(b) {
		return 0, 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff, at := 0.0, 0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxDiff {
			maxDiff, at = d, i
		}
	}
	return maxDiff, at, nil
}
