package biquad

import (
	"math"
	"testing"
)

// tolerance for floating-point comparisons.
const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewSection(t *testing.T) {
	c := Coefficients{B0: 1, B1: 2, B2: 3, A1: 4, A2: 5}
	s := NewSection(c)
	if s.Coefficients != c {
		t.Fatalf("coefficients mismatch: got %v, want %v", s.Coefficients, c)
	}
	if st := s.State(); st != [2]float64{0, 0} {
		t.Fatalf("initial state not zero: %v", st)
	}
}

func TestProcessSample_Identity(t *testing.T) {
	s := NewSection(Identity())
	for i, x := range []float64{1, 0, -1, 0.5, 0.25} {
		if y := s.ProcessSample(x); !almostEqual(y, x, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, x)
		}
	}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Hand-traced DF-II-T with B0=0.25, B1=0.5, B2=0.25, A1=-0.2, A2=0.04
	// and x = [1, 0, 0, 0].
	c := Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
	s := NewSection(c)

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("n=%d: got %v, want %v", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesProcessSample(t *testing.T) {
	c := Coefficients{B0: 0.2, B1: 0.3, B2: 0.1, A1: -0.6, A2: 0.2}
	input := []float64{1, -0.5, 0.25, 0.8, -1, 0.3, 0.7}

	ref := NewSection(c)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	// Odd length exercises the unrolled tail.
	s := NewSection(c)
	buf := append([]float64(nil), input...)
	s.ProcessBlock(buf)
	for i := range want {
		if !almostEqual(buf[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v", i, buf[i], want[i])
		}
	}
	if s.State() != ref.State() {
		t.Fatalf("state mismatch: %v vs %v", s.State(), ref.State())
	}
}

func TestProcessBlockTo_LeavesSourceUntouched(t *testing.T) {
	s := NewSection(Coefficients{B0: 0.5, B1: 0.5})
	src := []float64{1, 2, 3}
	dst := make([]float64, 3)
	s.ProcessBlockTo(dst, src)
	if src[0] != 1 || src[1] != 2 || src[2] != 3 {
		t.Fatalf("src modified: %v", src)
	}
	want := []float64{0.5, 1.5, 2.5}
	for i := range want {
		if !almostEqual(dst[i], want[i], eps) {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
	s.ProcessBlockTo(nil, nil)
}

func TestResetAndState(t *testing.T) {
	s := NewSection(Coefficients{B0: 1, B1: 1, A1: -0.5})
	s.ProcessSample(1)
	saved := s.State()
	if saved == [2]float64{} {
		t.Fatal("state should be non-zero after input")
	}
	s.Reset()
	if s.State() != [2]float64{} {
		t.Fatalf("state after Reset: %v", s.State())
	}
	s.SetState(saved)
	if s.State() != saved {
		t.Fatalf("SetState: got %v, want %v", s.State(), saved)
	}
}

func TestCoefficientHelpers(t *testing.T) {
	c := Coefficients{B0: 1, B1: -2, B2: 0.5, A1: 0.1, A2: 0.2}
	n := c.Negate()
	if n.B0 != -1 || n.B1 != 2 || n.B2 != -0.5 || n.A1 != c.A1 || n.A2 != c.A2 {
		t.Fatalf("Negate = %+v", n)
	}
	if c.IsFirstOrder() {
		t.Fatal("second-order section reported as first order")
	}
	if !(Coefficients{B0: 1, B1: 1, A1: 0.5}).IsFirstOrder() {
		t.Fatal("first-order section not detected")
	}
}

func TestCascadeFirstOrder(t *testing.T) {
	a := Coefficients{B0: 0.2, B1: 0.2, A1: -0.6}
	b := Coefficients{B0: 0.8, B1: -0.8, A1: -0.6}
	c := CascadeFirstOrder(a, b)

	for _, f := range []float64{0, 100, 1000, 5000, 20000} {
		want := a.Response(f, 44100) * b.Response(f, 44100)
		got := c.Response(f, 44100)
		if !almostEqual(real(got), real(want), 1e-12) || !almostEqual(imag(got), imag(want), 1e-12) {
			t.Fatalf("%.0f Hz: got %v, want %v", f, got, want)
		}
	}

	sq := CascadeFirstOrder(a, a)
	if sq.B1 != 2*a.B0*a.B1 || sq.A2 != a.A1*a.A1 {
		t.Fatalf("square = %+v", sq)
	}
}

func TestDenormalFlush(t *testing.T) {
	s := NewSection(Coefficients{B0: 1, A1: -0.5})
	buf := []float64{1e-300, 0}
	s.ProcessBlock(buf)
	if s.State() != [2]float64{} {
		t.Fatalf("expected flushed state, got %v", s.State())
	}
}
