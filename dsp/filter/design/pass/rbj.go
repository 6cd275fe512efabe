package pass

import (
	"math"

	"github.com/cwbudde/algo-filterbank/dsp/filter/biquad"
)

const defaultQ = 1 / math.Sqrt2

// LowpassRBJ designs a second-order lowpass section (RBJ cookbook) at freq
// with quality factor q. Returns zero coefficients for an invalid cutoff.
func LowpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	if !validCutoff(freq, sampleRate) {
		return biquad.Coefficients{}
	}
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = defaultQ
	}

	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalizeBiquad(
		(1-cw)/2, 1-cw, (1-cw)/2,
		1+alpha, -2*cw, 1-alpha,
	)
}

// HighpassRBJ designs a second-order highpass section (RBJ cookbook) at
// freq with quality factor q. Returns zero coefficients for an invalid cutoff.
func HighpassRBJ(freq, q, sampleRate float64) biquad.Coefficients {
	if !validCutoff(freq, sampleRate) {
		return biquad.Coefficients{}
	}
	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		q = defaultQ
	}

	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)

	return normalizeBiquad(
		(1+cw)/2, -(1 + cw), (1+cw)/2,
		1+alpha, -2*cw, 1-alpha,
	)
}
