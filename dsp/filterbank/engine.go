package filterbank

import (
	"fmt"

	"github.com/cwbudde/algo-filterbank/dsp/core"
	"github.com/cwbudde/algo-filterbank/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterbank/dsp/filter/fir"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/design"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/state"
)

// kernel is the closed set of per-band filter types. Instantiating engine
// per type keeps the hot loop free of interface dispatch.
type kernel[K any] interface {
	*fir.Filter | *biquad.Chain
	ProcessBlockTo(dst, src []float64)
	CopyStateFrom(other K) bool
	Reset()
}

// engine is the variant-independent part of a filterbank.
type engine[K kernel[K]] struct {
	src  BlockSource
	sink BlockSink
	st   *state.State

	filters  []K
	outs     [][]float64
	bandOn   []bool // forward gate per band, len == state.MaxCapacity
	active   int
	blockLen int
	enabled  bool

	maxOrder int
	warm     bool
}

func newEngine[K kernel[K]](src BlockSource, sink BlockSink, cfg config) (*engine[K], error) {
	st, err := state.New(cfg.capacity)
	if err != nil {
		return nil, fmt.Errorf("filterbank: %w", err)
	}
	bandOn := make([]bool, state.MaxCapacity)
	for i := range bandOn {
		bandOn[i] = true
	}
	return &engine[K]{
		src:      src,
		sink:     sink,
		st:       st,
		bandOn:   bandOn,
		maxOrder: cfg.maxOrder,
		warm:     cfg.warm,
	}, nil
}

func (e *engine[K]) params(bands, order int, sampleRate float64, blockLen int, crossovers []float64) design.Params {
	return design.Params{
		Bands:      bands,
		Order:      order,
		SampleRate: sampleRate,
		BlockLen:   blockLen,
		Crossovers: crossovers,
	}
}

// commit swaps in a fully built filter set and records the layout. p has
// already been validated by the designer.
func (e *engine[K]) commit(p design.Params, filters []K) error {
	if e.warm {
		for i := range min(len(filters), len(e.filters)) {
			filters[i].CopyStateFrom(e.filters[i])
		}
	}

	if err := e.st.SetSampleRate(p.SampleRate); err != nil {
		return err
	}
	if err := e.st.SetOrder(p.Order); err != nil {
		return err
	}
	if err := e.st.SetBandCount(p.Bands); err != nil {
		return err
	}
	if _, err := e.st.SetCrossoverFrequencies(p.Crossovers); err != nil {
		return err
	}

	// A redesign with the same band count keeps the forwarding limit.
	if e.active == 0 || len(filters) != len(e.filters) {
		e.active = len(filters)
	}
	if e.filters == nil {
		e.enabled = true
	}
	e.filters = filters
	e.outs = core.NewBlocks(len(filters), p.BlockLen)
	e.blockLen = p.BlockLen
	return nil
}

// Update processes at most one input block. It never allocates.
func (e *engine[K]) Update() {
	if !e.st.Frozen() {
		e.st.Freeze()
	}
	if !e.enabled || e.src == nil || len(e.filters) == 0 || e.blockLen < 1 {
		return
	}
	in, ok := e.src.Receive()
	if !ok {
		return
	}

	for len(in) > 0 {
		n := min(len(in), e.blockLen)
		chunk := in[:n]
		for b, f := range e.filters {
			f.ProcessBlockTo(e.outs[b][:n], chunk)
		}
		if e.sink != nil {
			for b := range e.active {
				if e.bandOn[b] {
					e.sink.Transmit(b, e.outs[b][:n])
				}
			}
		}
		in = in[n:]
	}
}

// SetActiveBands limits forwarding to the first n designed bands.
func (e *engine[K]) SetActiveBands(n int) error {
	if n < 1 {
		return fmt.Errorf("filterbank: active bands %d: %w", n, state.ErrConfiguration)
	}
	if n > len(e.filters) {
		return fmt.Errorf("filterbank: active bands %d above designed %d: %w", n, len(e.filters), state.ErrCapacity)
	}
	e.active = n
	return nil
}

// ActiveBands returns the number of forwarded bands.
func (e *engine[K]) ActiveBands() int { return e.active }

// DesignedBands returns the number of bands with designed filters.
func (e *engine[K]) DesignedBands() int { return len(e.filters) }

// BlockLen returns the block length of the current design, or 0.
func (e *engine[K]) BlockLen() int { return e.blockLen }

// SetBandEnabled gates forwarding of one band. The band's filter keeps
// running while it is disabled. It reports false for an invalid index.
func (e *engine[K]) SetBandEnabled(band int, on bool) bool {
	if band < 0 || band >= e.st.Capacity() {
		return false
	}
	e.bandOn[band] = on
	return true
}

// BandEnabled reports whether band is forwarded when active.
func (e *engine[K]) BandEnabled(band int) bool {
	return band >= 0 && band < e.st.Capacity() && e.bandOn[band]
}

// Enable switches processing on or off.
func (e *engine[K]) Enable(on bool) { e.enabled = on }

// Enabled reports whether Update processes input.
func (e *engine[K]) Enabled() bool { return e.enabled }

// Reset clears the internal state of every band filter.
func (e *engine[K]) Reset() {
	for _, f := range e.filters {
		f.Reset()
	}
}

// State returns the crossover layout. Callers must not change it directly;
// use Design.
func (e *engine[K]) State() *state.State { return e.st }
