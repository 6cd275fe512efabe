package filterbank

import "github.com/cwbudde/algo-filterbank/dsp/filterbank/state"

// BlockSource delivers input blocks. Receive returns false when no block
// is available for this tick; it must not block.
type BlockSource interface {
	Receive() ([]float64, bool)
}

// BlockSink accepts one output block per active band and tick. The block
// is owned by the filterbank and only valid until the next Update.
type BlockSink interface {
	Transmit(band int, block []float64)
}

// Filterbank is the common surface of the FIR and biquad variants.
type Filterbank interface {
	// Design replaces the running band set. On error nothing changes.
	Design(bands, order int, sampleRate float64, blockLen int, crossovers []float64) error
	// Update processes at most one input block.
	Update()

	SetActiveBands(n int) error
	ActiveBands() int
	DesignedBands() int
	BlockLen() int

	SetBandEnabled(band int, on bool) bool
	BandEnabled(band int) bool
	Enable(on bool)
	Enabled() bool
	Reset()

	State() *state.State
}

var (
	_ Filterbank = (*FIRBank)(nil)
	_ Filterbank = (*BiquadBank)(nil)
)
