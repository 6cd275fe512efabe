package control

import (
	"strconv"
	"strings"
)

// Snapshot is the full tuning state of a filterbank at one instant.
type Snapshot struct {
	DesignedBands int
	ActiveBands   int
	Order         int
	SampleRate    float64
	Crossovers    []float64 // DesignedBands-1 entries
	BandEnabled   []bool    // DesignedBands entries
	Processing    bool
}

// Publisher receives snapshots, typically to encode them for a remote
// control surface. The snapshot's slices are reused by the next publish;
// implementations that keep them must copy.
type Publisher interface {
	PublishSnapshot(Snapshot)
}

// PublisherFunc adapts a function to Publisher.
type PublisherFunc func(Snapshot)

// PublishSnapshot calls f(s).
func (f PublisherFunc) PublishSnapshot(s Snapshot) { f(s) }

// String renders the snapshot on one line.
func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteString("bands=")
	b.WriteString(strconv.Itoa(s.ActiveBands))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(s.DesignedBands))
	b.WriteString(" order=")
	b.WriteString(strconv.Itoa(s.Order))
	b.WriteString(" fs=")
	b.WriteString(strconv.FormatFloat(s.SampleRate, 'f', -1, 64))
	b.WriteString(" xover=[")
	for i, f := range s.Crossovers {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(f, 'f', 1, 64))
	}
	b.WriteString("] on=")
	for _, on := range s.BandEnabled {
		if on {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	if !s.Processing {
		b.WriteString(" (disabled)")
	}
	return b.String()
}
