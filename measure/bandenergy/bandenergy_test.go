package bandenergy

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-filterbank/dsp/window"
	"github.com/cwbudde/algo-filterbank/internal/testutil"
	"gonum.org/v1/gonum/dsp/fourier"
)

const sampleRate = 44100.0

func TestSpectrum_MatchesReferenceFFT(t *testing.T) {
	signal := testutil.DeterministicNoise(7, 1, 1000)
	got, err := Spectrum(signal, sampleRate)
	if err != nil {
		t.Fatal(err)
	}

	size := FFTSize(len(signal))
	if len(got) != size/2+1 {
		t.Fatalf("bins = %d, want %d", len(got), size/2+1)
	}

	coeffs := window.Generate(window.TypeHann, len(signal), window.WithPeriodic())
	padded := make([]float64, size)
	for i, v := range signal {
		padded[i] = v * coeffs[i]
	}
	ref := fourier.NewFFT(size).Coefficients(nil, padded)

	want := make([]float64, len(got))
	for k := range want {
		want[k] = real(ref[k])*real(ref[k]) + imag(ref[k])*imag(ref[k])
	}

	// Compare shapes; the two transforms may scale differently.
	gotPeak, wantPeak := got[Dominant(got)], want[Dominant(want)]
	for k := range got {
		if math.Abs(got[k]/gotPeak-want[k]/wantPeak) > 1e-9 {
			t.Fatalf("bin %d: got %v, want %v (relative to peak)", k, got[k]/gotPeak, want[k]/wantPeak)
		}
	}
}

func TestPeakFrequency(t *testing.T) {
	for _, f := range []float64{250, 1000, 5000} {
		sig := testutil.DeterministicSine(f, sampleRate, 1, 8192)
		got, err := PeakFrequency(sig, sampleRate)
		if err != nil {
			t.Fatal(err)
		}
		binHz := sampleRate / float64(FFTSize(len(sig)))
		if math.Abs(got-f) > binHz {
			t.Errorf("peak for %.0f Hz tone = %.1f Hz", f, got)
		}
	}
}

func TestSplit(t *testing.T) {
	edges := []float64{500, 2000}
	tests := []struct {
		freq float64
		want int
	}{
		{100, 0},
		{1000, 1},
		{8000, 2},
	}
	for _, tt := range tests {
		sig := testutil.DeterministicSine(tt.freq, sampleRate, 1, 4096)
		energy, err := Split(sig, sampleRate, edges)
		if err != nil {
			t.Fatal(err)
		}
		if len(energy) != 3 {
			t.Fatalf("regions = %d, want 3", len(energy))
		}
		if got := Dominant(energy); got != tt.want {
			t.Errorf("%.0f Hz tone: dominant region %d, want %d (%v)", tt.freq, got, tt.want, energy)
		}
	}
}

func TestSplit_TotalEqualsSpectrum(t *testing.T) {
	sig := testutil.DeterministicNoise(3, 0.5, 2048)
	power, err := spectrum(sig, sampleRate, window.TypeRectangular)
	if err != nil {
		t.Fatal(err)
	}
	energy, err := Split(sig, sampleRate, []float64{300, 3000, 12000})
	if err != nil {
		t.Fatal(err)
	}
	var a, b float64
	for _, p := range power {
		a += p
	}
	for _, e := range energy {
		b += e
	}
	if math.Abs(a-b) > 1e-9*a {
		t.Fatalf("split total %v != spectrum total %v", b, a)
	}
}

func TestSplit_DecayingResponse(t *testing.T) {
	// A one-pole low-pass impulse response keeps most of its energy low.
	resp := make([]float64, 2048)
	y := 1.0
	for i := range resp {
		resp[i] = y
		y *= 0.9
	}
	energy, err := Split(resp, sampleRate, []float64{2000})
	if err != nil {
		t.Fatal(err)
	}
	if energy[0] <= energy[1] {
		t.Errorf("low region %v not above high region %v", energy[0], energy[1])
	}
}

func TestErrors(t *testing.T) {
	if _, err := Spectrum(nil, sampleRate); !errors.Is(err, ErrEmptySignal) {
		t.Errorf("empty signal: got %v", err)
	}
	if _, err := Spectrum([]float64{1}, 0); !errors.Is(err, ErrSampleRate) {
		t.Errorf("zero sample rate: got %v", err)
	}
	if _, err := Split([]float64{1, 2}, sampleRate, []float64{1000, 500}); err == nil {
		t.Error("unsorted edges: expected error")
	}
}
