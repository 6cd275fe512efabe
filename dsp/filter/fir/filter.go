package fir

import (
	"math"
	"math/cmplx"

	"github.com/tphakala/simd/f64"
)

// Filter implements a direct-form FIR filter over fixed-size blocks.
type Filter struct {
	taps     []float64 // h[0..N-1]
	reversed []float64 // h[N-1..0], aligned with the history window
	hist     []float64 // N-1 past samples followed by one block of input
	blockLen int
	one      [1]float64
}

// New creates a FIR filter from the given taps for blocks of up to
// blockLen samples. The taps are copied. blockLen < 1 is treated as 1.
func New(taps []float64, blockLen int) *Filter {
	if blockLen < 1 {
		blockLen = 1
	}
	n := max(len(taps), 1)

	t := make([]float64, n)
	copy(t, taps)
	rev := make([]float64, n)
	for i := range t {
		rev[n-1-i] = t[i]
	}

	return &Filter{
		taps:     t,
		reversed: rev,
		hist:     make([]float64, n-1+blockLen),
		blockLen: blockLen,
	}
}

// ProcessBlockTo filters src into dst without modifying src. dst must be at
// least as long as src. dst and src may be the same slice. Zero-alloc.
//
//	y[n] = sum_{k=0}^{N-1} h[k] * x[n-k]
func (f *Filter) ProcessBlockTo(dst, src []float64) {
	for len(src) > 0 {
		n := min(len(src), f.blockLen)
		f.processChunk(dst[:n], src[:n])
		dst, src = dst[n:], src[n:]
	}
}

// ProcessBlock filters buf in-place.
func (f *Filter) ProcessBlock(buf []float64) {
	f.ProcessBlockTo(buf, buf)
}

// ProcessSample filters one input sample.
func (f *Filter) ProcessSample(x float64) float64 {
	f.one[0] = x
	f.processChunk(f.one[:], f.one[:])
	return f.one[0]
}

func (f *Filter) processChunk(dst, src []float64) {
	m := len(f.taps) - 1
	n := len(src)

	copy(f.hist[m:m+n], src)
	for i := range n {
		dst[i] = f64.DotProduct(f.reversed, f.hist[i:i+m+1])
	}
	// Slide the newest m samples to the front for the next chunk.
	copy(f.hist[:m], f.hist[n:n+m])
}

// Reset clears the delay line to zero.
func (f *Filter) Reset() {
	for i := range f.hist {
		f.hist[i] = 0
	}
}

// CopyStateFrom takes over the delay line of other when both filters have
// the same tap count, and reports whether it did.
func (f *Filter) CopyStateFrom(other *Filter) bool {
	if other == nil || len(other.taps) != len(f.taps) {
		return false
	}
	m := len(f.taps) - 1
	copy(f.hist[:m], other.hist[:m])
	return true
}

// NumTaps returns the number of taps.
func (f *Filter) NumTaps() int { return len(f.taps) }

// Order returns the filter order (NumTaps - 1).
func (f *Filter) Order() int { return len(f.taps) - 1 }

// BlockLen returns the block length the history buffer was sized for.
func (f *Filter) BlockLen() int { return f.blockLen }

// GroupDelay returns the group delay in samples of a linear-phase
// (symmetric) tap set.
func (f *Filter) GroupDelay() float64 { return float64(len(f.taps)-1) / 2 }

// Taps returns a copy of the filter taps.
func (f *Filter) Taps() []float64 {
	c := make([]float64, len(f.taps))
	copy(c, f.taps)
	return c
}

// Response computes the complex frequency response H(e^{-jw}) at the given
// frequency (Hz) and sample rate (Hz).
func (f *Filter) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var h complex128
	for k, c := range f.taps {
		h += complex(c, 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}
	return h
}

// MagnitudeDB returns the magnitude response in dB at the given frequency.
func (f *Filter) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
