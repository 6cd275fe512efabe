package graph

import "github.com/cwbudde/algo-filterbank/dsp/core"

// Collector receives per-band output blocks. It keeps a copy of the last
// block of every band and, while recording, appends all samples.
type Collector struct {
	last      [][]float64
	counts    []int
	recorded  [][]float64
	recording bool
}

// NewCollector returns a collector for up to bands bands.
func NewCollector(bands int) *Collector {
	bands = max(bands, 1)
	return &Collector{
		last:     make([][]float64, bands),
		counts:   make([]int, bands),
		recorded: make([][]float64, bands),
	}
}

// Transmit stores block for band. Out-of-range bands are ignored.
func (c *Collector) Transmit(band int, block []float64) {
	if band < 0 || band >= len(c.last) {
		return
	}
	c.last[band] = core.EnsureLen(c.last[band], len(block))
	copy(c.last[band], block)
	c.counts[band]++
	if c.recording {
		c.recorded[band] = append(c.recorded[band], block...)
	}
}

// Record switches sample accumulation on or off.
func (c *Collector) Record(on bool) { c.recording = on }

// Last returns the most recent block of band, or nil.
func (c *Collector) Last(band int) []float64 {
	if band < 0 || band >= len(c.last) {
		return nil
	}
	return c.last[band]
}

// Count returns how many blocks band has received.
func (c *Collector) Count(band int) int {
	if band < 0 || band >= len(c.counts) {
		return 0
	}
	return c.counts[band]
}

// Recorded returns all samples accumulated for band.
func (c *Collector) Recorded(band int) []float64 {
	if band < 0 || band >= len(c.recorded) {
		return nil
	}
	return c.recorded[band]
}

// Clear drops stored blocks, counts and recordings. Slices returned by
// Recorded before the call stay intact.
func (c *Collector) Clear() {
	for i := range c.last {
		c.last[i] = c.last[i][:0]
		c.counts[i] = 0
		c.recorded[i] = nil
	}
}
