package filterbank

import (
	"github.com/cwbudde/algo-filterbank/dsp/filter/fir"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/design"
)

// FIRBank is a filterbank of linear-phase FIR bands. All bands share the
// group delay (taps-1)/2 and sum to the delayed input.
type FIRBank struct {
	*engine[*fir.Filter]

	designer design.FIRDesigner
}

// NewFIR returns an FIR filterbank. It processes nothing until the first
// successful Design.
func NewFIR(src BlockSource, sink BlockSink, opts ...Option) (*FIRBank, error) {
	cfg := applyOptions(design.FIRCapacity, design.DefaultMaxFIRTaps, opts)
	e, err := newEngine[*fir.Filter](src, sink, cfg)
	if err != nil {
		return nil, err
	}
	return &FIRBank{
		engine:   e,
		designer: design.FIRDesigner{MaxTaps: cfg.maxOrder, Window: cfg.window},
	}, nil
}

// Design replaces the band set. order is the tap count, rounded up to odd.
func (b *FIRBank) Design(bands, order int, sampleRate float64, blockLen int, crossovers []float64) error {
	p := b.params(bands, order, sampleRate, blockLen, crossovers)
	d := b.designer
	d.Capacity = b.st.Capacity()

	specs, err := d.Design(p)
	if err != nil {
		return err
	}
	filters := make([]*fir.Filter, len(specs))
	for i, s := range specs {
		filters[i] = fir.New(s.Taps, s.BlockLen)
	}
	return b.commit(p, filters)
}

// GroupDelay returns the common band delay in samples.
func (b *FIRBank) GroupDelay() float64 {
	if len(b.filters) == 0 {
		return 0
	}
	return b.filters[0].GroupDelay()
}

// Band returns the filter of band i, or nil.
func (b *FIRBank) Band(i int) *fir.Filter {
	if i < 0 || i >= len(b.filters) {
		return nil
	}
	return b.filters[i]
}
