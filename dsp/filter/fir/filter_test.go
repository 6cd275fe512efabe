package fir

import (
	"math"
	"math/cmplx"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNew(t *testing.T) {
	taps := []float64{0.25, 0.5, 0.25}
	f := New(taps, 8)
	if f.Order() != 2 || f.NumTaps() != 3 {
		t.Fatalf("Order/NumTaps: got %d/%d, want 2/3", f.Order(), f.NumTaps())
	}
	if f.BlockLen() != 8 {
		t.Fatalf("BlockLen: got %d, want 8", f.BlockLen())
	}
	if f.GroupDelay() != 1 {
		t.Fatalf("GroupDelay: got %v, want 1", f.GroupDelay())
	}
	taps[0] = 999
	if f.taps[0] == 999 {
		t.Error("New did not copy taps")
	}
	if New(nil, 0).NumTaps() != 1 || New(nil, 0).BlockLen() != 1 {
		t.Error("degenerate New should yield one tap and block length 1")
	}
}

func TestProcessSample_Impulse(t *testing.T) {
	taps := []float64{0.25, 0.5, 0.25}
	f := New(taps, 4)

	for i, want := range taps {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := f.ProcessSample(x); !almostEqual(y, want, eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want)
		}
	}
	for i := range 5 {
		if y := f.ProcessSample(0); !almostEqual(y, 0, eps) {
			t.Errorf("post-IR sample %d: got %v, want 0", i, y)
		}
	}
}

func TestProcessSample_Differentiator(t *testing.T) {
	f := New([]float64{1, -1}, 2)
	want := []float64{0, 1, 2, 3, 4}
	for i, x := range []float64{0, 1, 3, 6, 10} {
		if y := f.ProcessSample(x); !almostEqual(y, want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

// Block lengths shorter than, equal to and longer than the design block
// length must all give the sample-by-sample result.
func TestProcessBlockTo_ChunkingMatchesSample(t *testing.T) {
	taps := []float64{0.1, -0.2, 0.4, 0.3, -0.05}
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8, 0.6, -0.4, 0.9}

	ref := New(taps, 1)
	want := make([]float64, len(input))
	for i, x := range input {
		want[i] = ref.ProcessSample(x)
	}

	for _, blockLen := range []int{1, 3, 4, 11, 32} {
		f := New(taps, blockLen)
		src := append([]float64(nil), input...)
		dst := make([]float64, len(input))
		f.ProcessBlockTo(dst[:5], src[:5])
		f.ProcessBlockTo(dst[5:], src[5:])
		for i := range want {
			if !almostEqual(dst[i], want[i], eps) {
				t.Fatalf("blockLen=%d index %d: got %v, want %v", blockLen, i, dst[i], want[i])
			}
			if src[i] != input[i] {
				t.Fatalf("blockLen=%d: src modified at %d", blockLen, i)
			}
		}
	}
}

func TestProcessBlock_InPlace(t *testing.T) {
	taps := []float64{0.25, 0.5, 0.25}
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	ref := New(taps, 8)
	want := make([]float64, len(input))
	ref.ProcessBlockTo(want, input)

	f := New(taps, 8)
	buf := append([]float64(nil), input...)
	f.ProcessBlock(buf)
	for i := range buf {
		if !almostEqual(buf[i], want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, buf[i], want[i])
		}
	}
}

func TestReset(t *testing.T) {
	f := New([]float64{0.25, 0.5, 0.25}, 4)
	f.ProcessBlock([]float64{1, 0.5})
	f.Reset()

	for i, want := range f.taps {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := f.ProcessSample(x); !almostEqual(y, want, eps) {
			t.Errorf("sample %d after reset: got %v, want %v", i, y, want)
		}
	}
}

func TestCopyStateFrom(t *testing.T) {
	taps := []float64{0.2, 0.3, 0.5}
	warm := New(taps, 4)
	warm.ProcessBlock([]float64{1, 2, 3, 4})

	other := New([]float64{0.5, 0.3, 0.2}, 4)
	if !other.CopyStateFrom(warm) {
		t.Fatal("CopyStateFrom rejected matching tap count")
	}
	// Next output uses the inherited history: 0.5*0 + 0.3*4 + 0.2*3.
	if y := other.ProcessSample(0); !almostEqual(y, 1.8, eps) {
		t.Fatalf("first output = %v, want 1.8", y)
	}
	if New([]float64{1}, 4).CopyStateFrom(warm) {
		t.Fatal("CopyStateFrom accepted mismatched tap count")
	}
}

func TestResponse_DCGain(t *testing.T) {
	taps := []float64{0.25, 0.5, 0.25}
	f := New(taps, 4)
	if dc := cmplx.Abs(f.Response(0, 48000)); !almostEqual(dc, 1, 1e-12) {
		t.Errorf("DC gain: got %v, want 1", dc)
	}
	for _, freq := range []float64{100, 1000, 10000} {
		want := 20 * math.Log10(cmplx.Abs(f.Response(freq, 48000)))
		if got := f.MagnitudeDB(freq, 48000); !almostEqual(got, want, 1e-10) {
			t.Errorf("freq=%v: MagnitudeDB=%v, want %v", freq, got, want)
		}
	}
}

func TestTaps_IsCopy(t *testing.T) {
	f := New([]float64{0.25, 0.5, 0.25}, 4)
	c := f.Taps()
	c[0] = 999
	if f.taps[0] == 999 {
		t.Error("Taps did not return a copy")
	}
}
