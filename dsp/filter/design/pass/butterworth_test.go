package pass

import (
	"testing"
)

func TestButterworth_SectionCount(t *testing.T) {
	sr := 48000.0
	for order := 1; order <= 8; order++ {
		want := (order + 1) / 2
		if got := ButterworthLP(1000, order, sr); len(got) != want {
			t.Fatalf("LP order %d: sections=%d, want %d", order, len(got), want)
		}
		hp := ButterworthHP(1000, order, sr)
		if len(hp) != want {
			t.Fatalf("HP order %d: sections=%d, want %d", order, len(hp), want)
		}
		if odd := order%2 == 1; hp[len(hp)-1].IsFirstOrder() != odd {
			t.Fatalf("order %d: first-order tail = %v, want %v", order, !odd, odd)
		}
	}
}

func TestButterworth_Minus3dBAtCutoff(t *testing.T) {
	sr := 48000.0
	for _, order := range []int{1, 2, 3, 4, 5, 6} {
		lp := ButterworthLP(2000, order, sr)
		hp := ButterworthHP(2000, order, sr)
		for _, s := range lp {
			assertFiniteCoefficients(t, s)
			assertStableSection(t, s)
		}
		for _, s := range hp {
			assertFiniteCoefficients(t, s)
			assertStableSection(t, s)
		}
		if got := chainMag(lp, 2000, sr); !almostEqual(got, 1/1.4142135623730951, 1e-6) {
			t.Errorf("LP order %d: |H(fc)| = %v, want 0.7071", order, got)
		}
		if got := chainMag(hp, 2000, sr); !almostEqual(got, 1/1.4142135623730951, 1e-6) {
			t.Errorf("HP order %d: |H(fc)| = %v, want 0.7071", order, got)
		}
	}
}

func TestButterworth_OddOrderSumIsAllpass(t *testing.T) {
	sr := 44100.0
	for _, order := range []int{1, 3, 5} {
		lp := ButterworthLP(1000, order, sr)
		hp := ButterworthHP(1000, order, sr)
		for _, f := range []float64{50, 300, 1000, 3000, 12000} {
			sum := chainResponse(lp, f, sr) + chainResponse(hp, f, sr)
			if mag := real(sum)*real(sum) + imag(sum)*imag(sum); !almostEqual(mag, 1, 1e-6) {
				t.Errorf("order %d at %v Hz: |LP+HP|² = %v, want 1", order, f, mag)
			}
		}
	}
}

func TestButterworth_Invalid(t *testing.T) {
	if ButterworthLP(1000, 0, 48000) != nil || ButterworthHP(1000, -1, 48000) != nil {
		t.Fatal("expected nil for non-positive order")
	}
	if ButterworthLP(30000, 2, 48000) != nil || ButterworthHP(0, 2, 48000) != nil {
		t.Fatal("expected nil for out-of-band cutoff")
	}
}
