package crossover

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filterbank/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterbank/dsp/filter/design/pass"
)

// Alignment identifies the filter family used for a boundary.
type Alignment int

const (
	LinkwitzRiley Alignment = iota
	Butterworth
)

func (a Alignment) String() string {
	switch a {
	case LinkwitzRiley:
		return "linkwitz-riley"
	case Butterworth:
		return "butterworth"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

var errDesign = errors.New("crossover: design produced no sections")

// Pair holds the complementary low-pass and high-pass cascades of one
// crossover boundary. Both cascades have a total order equal to Order.
type Pair struct {
	LP        []biquad.Coefficients
	HP        []biquad.Coefficients
	Freq      float64
	Order     int
	Alignment Alignment
	Inverted  bool // HP polarity flipped to keep LP+HP allpass
}

// NewPair designs the boundary pair at freq. order must be positive;
// freq must lie in (0, sampleRate/2).
func NewPair(freq float64, order int, sampleRate float64) (Pair, error) {
	if order <= 0 {
		return Pair{}, fmt.Errorf("crossover: order must be positive, got %d", order)
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return Pair{}, fmt.Errorf("crossover: sample rate must be positive, got %v", sampleRate)
	}
	if !(freq > 0 && freq < sampleRate/2) {
		return Pair{}, fmt.Errorf("crossover: frequency must be in (0, %v), got %v", sampleRate/2, freq)
	}

	p := Pair{Freq: freq, Order: order}
	if order%2 == 0 {
		p.Alignment = LinkwitzRiley
		p.LP = pass.LinkwitzRileyLP(freq, order, sampleRate)
		if pass.LinkwitzRileyNeedsHPInvert(order) {
			p.HP = pass.LinkwitzRileyHPInverted(freq, order, sampleRate)
			p.Inverted = true
		} else {
			p.HP = pass.LinkwitzRileyHP(freq, order, sampleRate)
		}
	} else {
		p.Alignment = Butterworth
		p.LP = pass.ButterworthLP(freq, order, sampleRate)
		p.HP = pass.ButterworthHP(freq, order, sampleRate)
	}

	if len(p.LP) == 0 || len(p.HP) == 0 {
		return Pair{}, fmt.Errorf("%w: order %d at %.1f Hz", errDesign, order, freq)
	}
	return p, nil
}

// Sections returns the number of second-order sections in each half.
func (p Pair) Sections() int { return len(p.LP) }

// SumResponse returns the complex response of LP + HP at freqHz, which
// has unit magnitude for a correctly aligned pair.
func (p Pair) SumResponse(freqHz, sampleRate float64) complex128 {
	return cascadeResponse(p.LP, freqHz, sampleRate) + cascadeResponse(p.HP, freqHz, sampleRate)
}

// SumMagnitudeDB returns 20*log10|LP + HP| at freqHz.
func (p Pair) SumMagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(p.SumResponse(freqHz, sampleRate)))
}

func cascadeResponse(sections []biquad.Coefficients, freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range sections {
		h *= sections[i].Response(freqHz, sampleRate)
	}
	return h
}
