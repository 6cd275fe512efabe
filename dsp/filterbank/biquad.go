package filterbank

import (
	"math"

	"github.com/cwbudde/algo-filterbank/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/design"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/state"
)

// BiquadBank is a filterbank of cascaded second-order sections.
type BiquadBank struct {
	*engine[*biquad.Chain]

	designer design.BiquadDesigner
	trim     []float64 // linear output gain per band, len == state.MaxCapacity
}

// NewBiquad returns a biquad filterbank. It processes nothing until the
// first successful Design.
func NewBiquad(src BlockSource, sink BlockSink, opts ...Option) (*BiquadBank, error) {
	cfg := applyOptions(design.BiquadCapacity, design.MaxBiquadOrder, opts)
	e, err := newEngine[*biquad.Chain](src, sink, cfg)
	if err != nil {
		return nil, err
	}
	trim := make([]float64, state.MaxCapacity)
	for i := range trim {
		trim[i] = 1
	}
	return &BiquadBank{
		engine:   e,
		designer: design.BiquadDesigner{MaxOrder: cfg.maxOrder},
		trim:     trim,
	}, nil
}

// Design replaces the band set. order is the filter order of every
// crossover boundary.
func (b *BiquadBank) Design(bands, order int, sampleRate float64, blockLen int, crossovers []float64) error {
	p := b.params(bands, order, sampleRate, blockLen, crossovers)
	d := b.designer
	d.Capacity = b.st.Capacity()

	specs, err := d.Design(p)
	if err != nil {
		return err
	}
	chains := make([]*biquad.Chain, len(specs))
	for i, s := range specs {
		chains[i] = biquad.NewChain(s.Sections, biquad.WithGain(b.trim[i]))
	}
	return b.commit(p, chains)
}

// Band returns the section cascade of band i, or nil.
func (b *BiquadBank) Band(i int) *biquad.Chain {
	if i < 0 || i >= len(b.filters) {
		return nil
	}
	return b.filters[i]
}

// SetBandTrim sets the linear output gain of one band. The trim is kept
// across redesigns and applies to bands designed later. It reports false
// for an invalid index or a negative or non-finite gain.
func (b *BiquadBank) SetBandTrim(band int, g float64) bool {
	if band < 0 || band >= b.st.Capacity() || g < 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return false
	}
	b.trim[band] = g
	if band < len(b.filters) {
		b.filters[band].SetGain(g)
	}
	return true
}

// BandTrim returns the linear output gain of band, or 0 for an invalid
// index.
func (b *BiquadBank) BandTrim(band int) float64 {
	if band < 0 || band >= b.st.Capacity() {
		return 0
	}
	if band < len(b.filters) {
		return b.filters[band].Gain()
	}
	return b.trim[band]
}
