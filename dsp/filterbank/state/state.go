package state

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filterbank/dsp/core"
)

// MaxCapacity bounds the number of bands any State can hold.
const MaxCapacity = 64

// State is the crossover layout of one filterbank. The zero value is not
// usable; construct with [New]. State is not safe for concurrent use.
type State struct {
	crossovers []float64 // len == capacity-1, first bands-1 entries valid
	capacity   int
	bands      int
	order      int
	sampleRate float64
	frozen     bool
}

// New returns a State with room for capacity bands. It starts with a single
// band and no crossovers.
func New(capacity int) (*State, error) {
	s := &State{bands: 1}
	if err := s.SetCapacity(capacity); err != nil {
		return nil, err
	}
	return s, nil
}

// SetCapacity releases the crossover storage and allocates room for n bands.
// The band count is clamped to n; surviving crossovers are kept.
func (s *State) SetCapacity(n int) error {
	if s.frozen {
		return fmt.Errorf("state: set capacity %d: %w", n, ErrFrozen)
	}
	if n < 1 || n > MaxCapacity {
		return fmt.Errorf("state: capacity %d outside [1, %d]: %w", n, MaxCapacity, ErrCapacity)
	}

	next := make([]float64, n-1)
	s.bands = min(s.bands, n)
	copy(next, s.crossovers[:min(len(s.crossovers), s.bands-1)])
	s.crossovers = next
	s.capacity = n
	return nil
}

// Capacity returns the maximum band count.
func (s *State) Capacity() int { return s.capacity }

// BandCount returns the number of bands in the layout.
func (s *State) BandCount() int { return s.bands }

// SetBandCount changes the band count. Crossover slots that become valid
// are zeroed and must be set before the next redesign.
func (s *State) SetBandCount(n int) error {
	if n < 1 {
		return fmt.Errorf("state: band count %d: %w", n, ErrConfiguration)
	}
	if n > s.capacity {
		return fmt.Errorf("state: band count %d above capacity %d: %w", n, s.capacity, ErrCapacity)
	}
	for i := s.bands - 1; i < n-1; i++ {
		s.crossovers[i] = 0
	}
	s.bands = n
	return nil
}

// Order returns the filter order.
func (s *State) Order() int { return s.order }

// SetOrder records the filter order. It must be positive.
func (s *State) SetOrder(order int) error {
	if order < 1 {
		return fmt.Errorf("state: order %d: %w", order, ErrConfiguration)
	}
	s.order = order
	return nil
}

// SampleRate returns the recorded sample rate, or 0 if unknown.
func (s *State) SampleRate() float64 { return s.sampleRate }

// SetSampleRate records the sample rate used for the sub-Nyquist check.
func (s *State) SetSampleRate(sampleRate float64) error {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("state: sample rate %v: %w", sampleRate, ErrConfiguration)
	}
	s.sampleRate = sampleRate
	return nil
}

// SetCrossoverFrequencies replaces the crossover list. freqs must hold
// exactly BandCount()-1 ascending frequencies below Nyquist. On error
// nothing changes. It returns the number of frequencies stored.
func (s *State) SetCrossoverFrequencies(freqs []float64) (int, error) {
	if err := ValidateLayout(s.bands, freqs, s.sampleRate); err != nil {
		return 0, err
	}
	return copy(s.crossovers, freqs), nil
}

// CrossoverFrequency returns boundary i. An index outside
// [0, BandCount()-1) yields (0, false).
func (s *State) CrossoverFrequency(i int) (float64, bool) {
	if i < 0 || i >= s.bands-1 {
		return 0, false
	}
	return s.crossovers[i], true
}

// CrossoverFrequencies copies the active crossovers into dst and returns
// the number copied.
func (s *State) CrossoverFrequencies(dst []float64) int {
	return copy(dst, s.crossovers[:s.bands-1])
}

// Freeze marks the end of the configuration phase.
func (s *State) Freeze() { s.frozen = true }

// Frozen reports whether Freeze has been called.
func (s *State) Frozen() bool { return s.frozen }

// ValidateLayout checks a candidate layout without touching any State.
// A sampleRate of 0 skips the Nyquist bound.
func ValidateLayout(bands int, freqs []float64, sampleRate float64) error {
	if bands < 1 {
		return fmt.Errorf("state: band count %d: %w", bands, ErrConfiguration)
	}
	if len(freqs) != bands-1 {
		return fmt.Errorf("state: %d bands need %d crossovers, got %d: %w",
			bands, bands-1, len(freqs), ErrConfiguration)
	}
	nyquist := math.Inf(1)
	if sampleRate > 0 {
		nyquist = sampleRate / 2
	}
	prev := 0.0
	for i, f := range freqs {
		if !core.IsFinite(f) || f <= 0 {
			return fmt.Errorf("state: crossover %d = %v: %w", i, f, ErrConfiguration)
		}
		if f >= nyquist {
			return fmt.Errorf("state: crossover %d = %v not below Nyquist %v: %w", i, f, nyquist, ErrConfiguration)
		}
		if i > 0 && f <= prev {
			return fmt.Errorf("state: crossover %d = %v not above %v: %w", i, f, prev, ErrConfiguration)
		}
		prev = f
	}
	return nil
}
