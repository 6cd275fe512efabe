package design

import (
	"github.com/cwbudde/algo-filterbank/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterbank/dsp/filter/crossover"
)

// BiquadSpec is the design of one IIR band as a cascade of second-order
// sections.
type BiquadSpec struct {
	Sections   []biquad.Coefficients
	SampleRate float64
	BlockLen   int
}

// BiquadDesigner designs IIR bands from complementary crossover pairs.
type BiquadDesigner struct {
	Capacity int // band limit; 0 means BiquadCapacity
	MaxOrder int // per-boundary order limit; 0 means MaxBiquadOrder
}

// NewBiquadDesigner returns a designer with the default limits.
func NewBiquadDesigner() BiquadDesigner {
	return BiquadDesigner{Capacity: BiquadCapacity, MaxOrder: MaxBiquadOrder}
}

// Design returns one spec per band, each of total order p.Order. Band 0
// is LP(f0) and the top band HP(f_{n-2}), both at the full order. A middle
// band k is HP(f_{k-1}) of order ceil(order/2) followed by LP(f_k) of
// order floor(order/2), with its first-order sections merged pairwise.
// At order 1 a middle band needs one section per edge and ends up with
// order 2.
func (d BiquadDesigner) Design(p Params) ([]BiquadSpec, error) {
	capacity, maxOrder := d.Capacity, d.MaxOrder
	if capacity == 0 {
		capacity = BiquadCapacity
	}
	if maxOrder == 0 {
		maxOrder = MaxBiquadOrder
	}
	if err := p.Validate(capacity, maxOrder); err != nil {
		return nil, err
	}

	hpOrder := (p.Order + 1) / 2
	lpOrder := max(p.Order/2, 1)

	specs := make([]BiquadSpec, p.Bands)
	for b := range specs {
		var sections []biquad.Coefficients
		switch {
		case p.Bands == 1:
			sections = []biquad.Coefficients{biquad.Identity()}
		case b == 0:
			pair, err := crossover.NewPair(p.Crossovers[0], p.Order, p.SampleRate)
			if err != nil {
				return nil, err
			}
			sections = pair.LP
		case b == p.Bands-1:
			pair, err := crossover.NewPair(p.Crossovers[b-1], p.Order, p.SampleRate)
			if err != nil {
				return nil, err
			}
			sections = pair.HP
		default:
			lo, err := crossover.NewPair(p.Crossovers[b-1], hpOrder, p.SampleRate)
			if err != nil {
				return nil, err
			}
			hi, err := crossover.NewPair(p.Crossovers[b], lpOrder, p.SampleRate)
			if err != nil {
				return nil, err
			}
			sections = mergeFirstOrder(append(append([]biquad.Coefficients(nil), lo.HP...), hi.LP...))
		}
		specs[b] = BiquadSpec{Sections: sections, SampleRate: p.SampleRate, BlockLen: p.BlockLen}
	}
	return specs, nil
}

// mergeFirstOrder combines first-order sections pairwise into biquads.
// Second-order sections keep their position; merged pairs follow them.
func mergeFirstOrder(sections []biquad.Coefficients) []biquad.Coefficients {
	out := sections[:0]
	var firsts []biquad.Coefficients
	for _, c := range sections {
		if c.IsFirstOrder() {
			firsts = append(firsts, c)
			continue
		}
		out = append(out, c)
	}
	for len(firsts) >= 2 {
		out = append(out, biquad.CascadeFirstOrder(firsts[0], firsts[1]))
		firsts = firsts[2:]
	}
	return append(out, firsts...)
}
