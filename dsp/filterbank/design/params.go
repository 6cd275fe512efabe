package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filterbank/dsp/filterbank/state"
)

// Band and order limits of the two variants.
const (
	FIRCapacity       = 8
	BiquadCapacity    = 12
	MaxBiquadOrder    = 6
	DefaultMaxFIRTaps = 512
)

// Params is one redesign request.
type Params struct {
	Bands      int
	Order      int // IIR order per boundary, or FIR tap count
	SampleRate float64
	BlockLen   int
	Crossovers []float64 // Bands-1 ascending frequencies in Hz
}

// Validate checks p against the given band capacity and order limit.
func (p Params) Validate(capacity, maxOrder int) error {
	if p.Bands > capacity {
		return fmt.Errorf("design: %d bands above capacity %d: %w", p.Bands, capacity, state.ErrCapacity)
	}
	if p.Order < 1 {
		return fmt.Errorf("design: order %d: %w", p.Order, state.ErrConfiguration)
	}
	if p.Order > maxOrder {
		return fmt.Errorf("design: order %d above maximum %d: %w", p.Order, maxOrder, state.ErrCapacity)
	}
	if !(p.SampleRate > 0) || math.IsInf(p.SampleRate, 0) {
		return fmt.Errorf("design: sample rate %v: %w", p.SampleRate, state.ErrConfiguration)
	}
	if p.BlockLen < 1 {
		return fmt.Errorf("design: block length %d: %w", p.BlockLen, state.ErrConfiguration)
	}
	return state.ValidateLayout(p.Bands, p.Crossovers, p.SampleRate)
}
