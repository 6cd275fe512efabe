package pass

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-filterbank/dsp/filter/biquad"
)

const tol = 1e-9

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func chainMag(sections []biquad.Coefficients, freq, sr float64) float64 {
	return cmplx.Abs(biquad.NewChain(sections).Response(freq, sr))
}

func chainResponse(sections []biquad.Coefficients, freq, sr float64) complex128 {
	return biquad.NewChain(sections).Response(freq, sr)
}

func assertFiniteCoefficients(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	v := []float64{c.B0, c.B1, c.B2, c.A1, c.A2}
	for i := range v {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			t.Fatalf("invalid coefficient[%d]=%v", i, v[i])
		}
	}
}

func assertStableSection(t *testing.T, c biquad.Coefficients) {
	t.Helper()
	if c.IsFirstOrder() {
		if math.Abs(c.A1) >= 1 {
			t.Fatalf("unstable first-order section: %+v", c)
		}
		return
	}
	if !c.Stable() {
		t.Fatalf("unstable section: %+v", c)
	}
}
