package layout

import (
	"fmt"
	"math"
)

// octaveRatio is G = 10^(3/10) per IEC 61260.
var octaveRatio = math.Pow(10, 0.3)

const (
	defaultLowerFreq = 20.0
	defaultUpperFreq = 20000.0
)

type config struct {
	lowerHz  float64
	upperHz  float64
	maxBands int
}

// Option configures Octave.
type Option func(*config)

// WithFrequencyRange sets custom lower and upper frequency limits for
// the band centres. Bands outside this range are excluded.
func WithFrequencyRange(lower, upper float64) Option {
	return func(cfg *config) {
		if lower > 0 && upper > lower {
			cfg.lowerHz = lower
			cfg.upperHz = upper
		}
	}
}

// WithMaxBands caps the number of bands. Surplus bands at the top of the
// range are merged into the highest remaining band.
func WithMaxBands(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxBands = n
		}
	}
}

// Octave returns the crossovers of an octave or fractional-octave layout.
//
// The fraction parameter controls the bandwidth: fraction=1 gives full
// octave bands, fraction=3 gives 1/3-octave bands, etc. Band edges are
//
//	f_upper = f_center * G^(1/(2*N))
//	f_lower = f_center * G^(-1/(2*N))
//
// and the returned slice holds the upper edge of every band but the last,
// so it has one entry less than the number of bands.
func Octave(fraction int, sampleRate float64, opts ...Option) ([]float64, error) {
	if fraction <= 0 {
		fraction = 1
	}

	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("layout: invalid sample rate %.3f", sampleRate)
	}

	cfg := config{lowerHz: defaultLowerFreq, upperHz: defaultUpperFreq}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	n := float64(fraction)
	halfBW := math.Pow(octaveRatio, 1/(2*n))
	nyquist := sampleRate / 2

	kMin := int(math.Ceil(n * math.Log(cfg.lowerHz/1000) / math.Log(octaveRatio)))
	kMax := int(math.Floor(n * math.Log(cfg.upperHz/1000) / math.Log(octaveRatio)))

	var edges []float64
	for k := kMin; k <= kMax; k++ {
		fHi := 1000 * math.Pow(octaveRatio, float64(k)/n) * halfBW
		if fHi >= nyquist {
			break
		}
		edges = append(edges, fHi)
	}

	if len(edges) == 0 {
		return nil, fmt.Errorf("layout: no bands in frequency range %.2f-%.2f Hz", cfg.lowerHz, cfg.upperHz)
	}

	// The last band extends to Nyquist, so its upper edge is not a crossover.
	crossovers := edges[:len(edges)-1]
	if cfg.maxBands > 0 && len(crossovers) > cfg.maxBands-1 {
		crossovers = crossovers[:cfg.maxBands-1]
	}

	return crossovers, nil
}

// LogSpaced returns bands-1 crossovers spread geometrically from lower to
// upper, both inclusive. Two bands split at the geometric mean of the range.
func LogSpaced(bands int, lower, upper float64) ([]float64, error) {
	if bands < 1 {
		return nil, fmt.Errorf("layout: band count must be positive, got %d", bands)
	}

	if lower <= 0 || upper <= lower || math.IsInf(upper, 0) {
		return nil, fmt.Errorf("layout: invalid frequency range %.2f-%.2f Hz", lower, upper)
	}

	out := make([]float64, bands-1)
	switch len(out) {
	case 0:
	case 1:
		out[0] = math.Sqrt(lower * upper)
	default:
		ratio := math.Log(upper / lower)
		last := float64(len(out) - 1)
		for i := range out {
			out[i] = lower * math.Exp(ratio*float64(i)/last)
		}
		out[len(out)-1] = upper
	}

	return out, nil
}

// Centers returns a representative frequency for every band of a layout:
// the geometric mean of its two crossovers, half the first crossover for
// the lowest band and the geometric mean of the last crossover and Nyquist
// for the highest. A single band is centred at a quarter of Nyquist.
func Centers(crossovers []float64, sampleRate float64) []float64 {
	nyquist := sampleRate / 2
	out := make([]float64, len(crossovers)+1)
	if len(crossovers) == 0 {
		out[0] = nyquist / 4
		return out
	}

	out[0] = crossovers[0] / 2
	for i := 1; i < len(crossovers); i++ {
		out[i] = math.Sqrt(crossovers[i-1] * crossovers[i])
	}
	out[len(crossovers)] = math.Sqrt(crossovers[len(crossovers)-1] * nyquist)

	return out
}
