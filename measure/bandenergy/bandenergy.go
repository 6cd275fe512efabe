// Package bandenergy measures how a signal's energy is distributed over
// frequency regions, for checking filterbank band separation.
package bandenergy

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-filterbank/dsp/window"
	algofft "github.com/MeKo-Christian/algo-fft"
)

var (
	ErrEmptySignal = errors.New("bandenergy: empty signal")
	ErrSampleRate  = errors.New("bandenergy: sample rate must be > 0")
)

// FFTSize returns the transform length used for a signal of n samples.
func FFTSize(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return max(size, 2)
}

// Spectrum returns the Hann-windowed power spectrum of signal, bins 0 to
// Nyquist. The signal is zero-padded to FFTSize(len(signal)); bin k lies
// at k*sampleRate/FFTSize.
func Spectrum(signal []float64, sampleRate float64) ([]float64, error) {
	return spectrum(signal, sampleRate, window.TypeHann)
}

func spectrum(signal []float64, sampleRate float64, win window.Type) ([]float64, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if !(sampleRate > 0) {
		return nil, ErrSampleRate
	}

	size := FFTSize(len(signal))
	coeffs := window.Generate(win, len(signal), window.WithPeriodic())

	in := make([]complex128, size)
	for i, v := range signal {
		in[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("bandenergy: fft plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("bandenergy: fft: %w", err)
	}

	power := make([]float64, size/2+1)
	for k := range power {
		x := out[k]
		power[k] = real(x)*real(x) + imag(x)*imag(x)
	}
	return power, nil
}

// PeakFrequency returns the centre frequency of the strongest non-DC bin.
func PeakFrequency(signal []float64, sampleRate float64) (float64, error) {
	power, err := Spectrum(signal, sampleRate)
	if err != nil {
		return 0, err
	}
	peak := 1
	for k := 2; k < len(power); k++ {
		if power[k] > power[peak] {
			peak = k
		}
	}
	return float64(peak) * sampleRate / float64(2*(len(power)-1)), nil
}

// Split returns the spectral energy in each of the len(edges)+1 regions
// delimited by the ascending edge frequencies. A bin at exactly an edge
// belongs to the upper region. The signal is not tapered, so decaying
// responses that start at sample 0 keep their early samples.
func Split(signal []float64, sampleRate float64, edges []float64) ([]float64, error) {
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, fmt.Errorf("bandenergy: edges must be ascending, got %v after %v", edges[i], edges[i-1])
		}
	}
	power, err := spectrum(signal, sampleRate, window.TypeRectangular)
	if err != nil {
		return nil, err
	}

	binHz := sampleRate / float64(2*(len(power)-1))
	energy := make([]float64, len(edges)+1)
	region := 0
	for k, p := range power {
		f := float64(k) * binHz
		for region < len(edges) && f >= edges[region] {
			region++
		}
		energy[region] += p
	}
	return energy, nil
}

// Dominant returns the index of the region with the most energy.
func Dominant(energy []float64) int {
	best := 0
	for i := range energy {
		if energy[i] > energy[best] {
			best = i
		}
	}
	return best
}
