// Package testutil provides deterministic test signals and comparison
// helpers for filterbank tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine generates a sine starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// MultiTone sums unit-amplitude sines at freqs, scaled so the peak cannot
// exceed 1.
func MultiTone(freqs []float64, sampleRate float64, length int) []float64 {
	out := make([]float64, length)
	if len(freqs) == 0 {
		return out
	}
	scale := 1 / float64(len(freqs))
	for _, f := range freqs {
		step := 2 * math.Pi * f / sampleRate
		for i := range out {
			out[i] += scale * math.Sin(step*float64(i))
		}
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude,
// amplitude) from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at pos. A pos outside the signal
// yields silence.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ones returns n samples of 1.0.
func Ones(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1
	}
	return out
}

// Blocks splits signal into consecutive views of blockLen samples. The
// last block may be shorter.
func Blocks(signal []float64, blockLen int) [][]float64 {
	if blockLen < 1 {
		return nil
	}
	out := make([][]float64, 0, (len(signal)+blockLen-1)/blockLen)
	for off := 0; off < len(signal); off += blockLen {
		out = append(out, signal[off:min(off+blockLen, len(signal))])
	}
	return out
}
