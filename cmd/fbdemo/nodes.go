package main

import (
	"log/slog"
	"math"

	"github.com/cwbudde/algo-filterbank/dsp/core"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/control"
	"github.com/cwbudde/algo-filterbank/internal/graph"
)

// toneSource pushes one block of a multi-tone test signal per tick,
// standing in for the audio input driver.
type toneSource struct {
	q     *graph.Queue
	block []float64
	steps []float64
	phase []float64
	scale float64
	log   *slog.Logger
}

func newToneSource(q *graph.Queue, tones []float64, sampleRate float64, log *slog.Logger) *toneSource {
	steps := make([]float64, len(tones))
	for i, f := range tones {
		steps[i] = 2 * math.Pi * f / sampleRate
	}
	return &toneSource{
		q:     q,
		block: make([]float64, q.BlockLen()),
		steps: steps,
		phase: make([]float64, len(tones)),
		scale: 1 / float64(max(len(tones), 1)),
		log:   log,
	}
}

func (s *toneSource) Update() {
	core.Zero(s.block)
	for k, step := range s.steps {
		ph := s.phase[k]
		for i := range s.block {
			s.block[i] += s.scale * math.Sin(ph)
			ph += step
		}
		s.phase[k] = math.Mod(ph, 2*math.Pi)
	}
	if !s.q.Push(s.block) {
		s.log.Warn("input queue full, block dropped", "dropped", s.q.Dropped())
	}
}

// levelMeter logs the level of every forwarded band at a fixed interval.
type levelMeter struct {
	fb     filterbank.Filterbank
	out    *graph.Collector
	every  int
	ticks  int
	levels []any
	log    *slog.Logger
}

func (m *levelMeter) Update() {
	m.ticks++
	if m.every <= 0 || m.ticks%m.every != 0 {
		return
	}
	m.levels = m.levels[:0]
	for b := range m.fb.ActiveBands() {
		if !m.fb.BandEnabled(b) {
			m.levels = append(m.levels, slog.String(bandKey(b), "off"))
			continue
		}
		m.levels = append(m.levels, slog.Float64(bandKey(b), round1(rmsDB(m.out.Last(b)))))
	}
	m.log.Info("band levels", m.levels...)
}

// snapshotLogger publishes control snapshots to the log.
type snapshotLogger struct {
	log *slog.Logger
}

func (p snapshotLogger) PublishSnapshot(s control.Snapshot) {
	p.log.Info("snapshot", "state", s.String())
}

func bandKey(b int) string {
	c, _ := control.ChannelSymbol(b)
	return "band" + string(c)
}

func rmsDB(x []float64) float64 {
	if len(x) == 0 {
		return math.Inf(-1)
	}
	e := 0.0
	for _, v := range x {
		e += v * v
	}
	return core.LinearPowerToDB(e / float64(len(x)))
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
