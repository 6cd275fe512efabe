package pass

import (
	"github.com/cwbudde/algo-filterbank/dsp/filter/biquad"
)

// LinkwitzRileyLP designs a lowpass Linkwitz-Riley cascade of the given order.
//
// A Linkwitz-Riley filter of order 2N is two cascaded Butterworth filters of
// order N, giving -6.02 dB at the crossover frequency. When N is odd the two
// first-order Butterworth sections are merged into one biquad, so the
// result always has order/2 true second-order sections.
//
// The order must be a positive even integer. Returns nil otherwise.
func LinkwitzRileyLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || order%2 != 0 {
		return nil
	}
	return square(ButterworthLP(freq, order/2, sampleRate))
}

// LinkwitzRileyHP designs a highpass Linkwitz-Riley cascade of the given order.
//
// For orders divisible by 4 the output is in phase with [LinkwitzRileyLP]
// and their sum is allpass. For orders ≡ 2 mod 4 the highpass is 180° out
// of phase at the crossover; use [LinkwitzRileyHPInverted].
func LinkwitzRileyHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || order%2 != 0 {
		return nil
	}
	return square(ButterworthHP(freq, order/2, sampleRate))
}

// LinkwitzRileyHPInverted designs a highpass Linkwitz-Riley cascade with
// inverted polarity, so that LP + HP_inv is allpass for orders ≡ 2 mod 4.
func LinkwitzRileyHPInverted(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	sections := LinkwitzRileyHP(freq, order, sampleRate)
	if sections == nil {
		return nil
	}
	// Negating one section is sufficient since gain is multiplicative.
	sections[0] = sections[0].Negate()
	return sections
}

// LinkwitzRileyNeedsHPInvert reports whether the given Linkwitz-Riley order
// requires HP polarity inversion for allpass summation.
func LinkwitzRileyNeedsHPInvert(order int) bool {
	return order > 0 && order%4 == 2
}

// square cascades a Butterworth design with itself, merging the pair of
// first-order sections of an odd-order design into one biquad.
func square(bw []biquad.Coefficients) []biquad.Coefficients {
	if bw == nil {
		return nil
	}

	out := make([]biquad.Coefficients, 0, len(bw)*2)
	var first *biquad.Coefficients
	for i := range bw {
		if bw[i].IsFirstOrder() {
			first = &bw[i]
			continue
		}
		out = append(out, bw[i], bw[i])
	}
	if first != nil {
		out = append(out, squareFirstOrder(*first))
	}
	return out
}
