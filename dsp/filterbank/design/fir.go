package design

import (
	"math"

	"github.com/cwbudde/algo-filterbank/dsp/window"
	"github.com/tphakala/simd/f64"
)

// FIRSpec is the design of one FIR band.
type FIRSpec struct {
	Taps       []float64
	SampleRate float64
	BlockLen   int
}

// FIRDesigner designs linear-phase FIR bands.
type FIRDesigner struct {
	Capacity int         // band limit; 0 means FIRCapacity
	MaxTaps  int         // tap limit; 0 means DefaultMaxFIRTaps
	Window   window.Type // taper applied to each sinc prototype
}

// NewFIRDesigner returns a designer with the default limits and a Hamming
// window.
func NewFIRDesigner() FIRDesigner {
	return FIRDesigner{Capacity: FIRCapacity, MaxTaps: DefaultMaxFIRTaps, Window: window.TypeHamming}
}

// TapCount returns the tap count used for a requested order. Even counts
// are rounded up so every band has an integer group delay.
func TapCount(order int) int {
	if order%2 == 0 {
		return order + 1
	}
	return order
}

// Design returns one spec per band. Band 0 is a low-pass at the first
// crossover, band k the difference of adjacent low-passes and the top band
// the complement of the last low-pass.
func (d FIRDesigner) Design(p Params) ([]FIRSpec, error) {
	capacity, maxTaps := d.Capacity, d.MaxTaps
	if capacity == 0 {
		capacity = FIRCapacity
	}
	if maxTaps == 0 {
		maxTaps = DefaultMaxFIRTaps
	}
	if err := p.Validate(capacity, maxTaps); err != nil {
		return nil, err
	}

	n := TapCount(p.Order)
	center := (n - 1) / 2

	// lps[k] is the low-pass at crossover k.
	lps := make([][]float64, p.Bands-1)
	for k, fc := range p.Crossovers {
		lps[k] = windowedSincLP(fc, p.SampleRate, n, d.Window)
	}

	specs := make([]FIRSpec, p.Bands)
	for b := range specs {
		taps := make([]float64, n)
		switch {
		case p.Bands == 1:
			taps[center] = 1
		case b == 0:
			copy(taps, lps[0])
		case b == p.Bands-1:
			for i, v := range lps[b-1] {
				taps[i] = -v
			}
			taps[center]++
		default:
			hi, lo := lps[b], lps[b-1]
			for i := range taps {
				taps[i] = hi[i] - lo[i]
			}
		}
		specs[b] = FIRSpec{Taps: taps, SampleRate: p.SampleRate, BlockLen: p.BlockLen}
	}
	return specs, nil
}

// windowedSincLP returns an n-tap low-pass at cutoff fc normalised to unity
// DC gain.
//
//	h[i] = 2fc/fs * sinc(2fc/fs * (i - (n-1)/2)) * w[i]
func windowedSincLP(fc, sampleRate float64, n int, win window.Type) []float64 {
	h := make([]float64, n)
	wc := 2 * fc / sampleRate
	mid := float64(n-1) / 2
	for i := range h {
		x := float64(i) - mid
		if x == 0 {
			h[i] = wc
			continue
		}
		h[i] = math.Sin(math.Pi*wc*x) / (math.Pi * x)
	}
	window.Apply(win, h)

	if sum := f64.Sum(h); sum != 0 {
		f64.Scale(h, h, 1/sum)
	}
	return h
}
