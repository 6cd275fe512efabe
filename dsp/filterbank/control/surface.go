package control

import (
	"math"

	"github.com/cwbudde/algo-filterbank/dsp/core"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank"
)

// Default nudge parameters.
var (
	DefaultStep  = math.Pow(2, 1.0/12) // one semitone
	DefaultFloor = 20.0                 // Hz
)

// Option configures a Surface.
type Option func(*Surface)

// WithID sets the mode symbol the surface answers to.
func WithID(id byte) Option {
	return func(s *Surface) { s.id = id }
}

// WithStep sets the multiplicative nudge ratio. Ratios <= 1 are ignored.
func WithStep(ratio float64) Option {
	return func(s *Surface) {
		if ratio > 1 {
			s.step = ratio
		}
	}
}

// WithFloor sets the lowest frequency a nudge may reach.
func WithFloor(hz float64) Option {
	return func(s *Surface) {
		if hz > 0 {
			s.floor = hz
		}
	}
}

// WithPublisher sets the snapshot receiver.
func WithPublisher(p Publisher) Option {
	return func(s *Surface) { s.pub = p }
}

// Surface applies control commands to one filterbank.
type Surface struct {
	fb    filterbank.Filterbank
	id    byte
	step  float64
	floor float64
	pub   Publisher

	freqs []float64
	snap  Snapshot
}

// New returns a surface bound to fb.
func New(fb filterbank.Filterbank, opts ...Option) *Surface {
	s := &Surface{
		fb:    fb,
		id:    DefaultID,
		step:  DefaultStep,
		floor: DefaultFloor,
	}
	for _, o := range opts {
		if o != nil {
			o(s)
		}
	}
	s.freqs = make([]float64, max(fb.State().Capacity()-1, 0))
	return s
}

// ID returns the mode symbol of the surface.
func (s *Surface) ID() byte { return s.id }

// Handle applies cmd and reports whether it took effect.
func (s *Surface) Handle(cmd Command) bool {
	return s.HandleTriple(cmd.Mode, cmd.Channel, cmd.Data)
}

// HandleTriple applies one command triple. It returns false when mode
// addresses another surface, the channel is invalid or the action was
// rejected. The channel is ignored for snapshots.
func (s *Surface) HandleTriple(mode, channel, data byte) bool {
	if mode != s.id {
		return false
	}
	if data == DataSnapshot {
		return s.Publish()
	}

	idx, ok := ChannelIndex(channel)
	if !ok {
		return false
	}
	switch data {
	case DataUp:
		return s.Nudge(idx, true)
	case DataDown:
		return s.Nudge(idx, false)
	case DataToggle:
		return s.ToggleBand(idx)
	default:
		return false
	}
}

// Nudge moves crossover boundary up or down by one step and redesigns.
// Moving up stops at Nyquist/2 and moving down stops at the floor; a value
// already beyond the bound in the direction of travel does not move. The
// result must stay strictly between the neighbouring crossovers. It returns false if the boundary
// is not active, the value cannot move or the redesign fails.
func (s *Surface) Nudge(boundary int, up bool) bool {
	if boundary < 0 || boundary >= s.fb.ActiveBands()-1 {
		return false
	}
	st := s.fb.State()
	if len(s.freqs) < st.BandCount()-1 {
		s.freqs = make([]float64, st.Capacity()-1)
	}
	n := st.CrossoverFrequencies(s.freqs[:st.BandCount()-1])
	if boundary >= n {
		return false
	}

	old := s.freqs[boundary]
	var next float64
	if up {
		ceiling := st.SampleRate() / 4
		if old >= ceiling {
			return false
		}
		next = core.Clamp(old*s.step, old, ceiling)
	} else {
		if old <= s.floor {
			return false
		}
		next = core.Clamp(old/s.step, s.floor, old)
	}
	if core.NearlyEqual(next, old, 1e-9) {
		return false
	}
	if boundary > 0 && next <= s.freqs[boundary-1] {
		return false
	}
	if boundary < n-1 && next >= s.freqs[boundary+1] {
		return false
	}

	s.freqs[boundary] = next
	err := s.fb.Design(st.BandCount(), st.Order(), st.SampleRate(), s.fb.BlockLen(), s.freqs[:n])
	return err == nil
}

// ToggleBand flips whether an active band is forwarded.
func (s *Surface) ToggleBand(band int) bool {
	if band < 0 || band >= s.fb.ActiveBands() {
		return false
	}
	return s.fb.SetBandEnabled(band, !s.fb.BandEnabled(band))
}

// Snapshot fills dst with the current state. It reuses dst's slices and
// does not allocate when they have enough capacity.
func (s *Surface) Snapshot(dst *Snapshot) {
	st := s.fb.State()
	designed := s.fb.DesignedBands()

	dst.DesignedBands = designed
	dst.ActiveBands = s.fb.ActiveBands()
	dst.Order = st.Order()
	dst.SampleRate = st.SampleRate()
	dst.Processing = s.fb.Enabled()

	dst.Crossovers = core.EnsureLen(dst.Crossovers, max(designed-1, 0))
	st.CrossoverFrequencies(dst.Crossovers)

	if cap(dst.BandEnabled) >= designed {
		dst.BandEnabled = dst.BandEnabled[:designed]
	} else {
		dst.BandEnabled = make([]bool, designed)
	}
	for b := range dst.BandEnabled {
		dst.BandEnabled[b] = s.fb.BandEnabled(b)
	}
}

// Publish sends a snapshot to the publisher. It returns false when none
// is configured.
func (s *Surface) Publish() bool {
	if s.pub == nil {
		return false
	}
	s.Snapshot(&s.snap)
	s.pub.PublishSnapshot(s.snap)
	return true
}
