package graph

import (
	"context"
	"time"
)

// Node is a processing stage run once per tick.
type Node interface {
	Update()
}

// Ticker runs its nodes at a fixed cadence from a single goroutine.
// Commands submitted from other goroutines are applied on that goroutine
// between ticks, so nodes never see concurrent calls.
type Ticker struct {
	nodes  []Node
	period time.Duration
	cmds   chan func()
	ticks  uint64
	onTick func(n uint64)
}

// TickerOption configures a Ticker.
type TickerOption func(*Ticker)

// WithCommandDepth sets the size of the command queue. Default 16.
func WithCommandDepth(n int) TickerOption {
	return func(t *Ticker) {
		if n > 0 {
			t.cmds = make(chan func(), n)
		}
	}
}

// WithTickHook registers fn to run after every tick with the tick count.
func WithTickHook(fn func(n uint64)) TickerOption {
	return func(t *Ticker) {
		t.onTick = fn
	}
}

// NewTicker returns a ticker that updates nodes once per period.
func NewTicker(period time.Duration, nodes []Node, opts ...TickerOption) *Ticker {
	t := &Ticker{
		nodes:  nodes,
		period: period,
		cmds:   make(chan func(), 16),
	}
	for _, o := range opts {
		if o != nil {
			o(t)
		}
	}
	return t
}

// Submit queues cmd for the processing goroutine. It returns false when
// the command queue is full.
func (t *Ticker) Submit(cmd func()) bool {
	select {
	case t.cmds <- cmd:
		return true
	default:
		return false
	}
}

// Tick applies pending commands and then updates every node once.
func (t *Ticker) Tick() {
	t.drain()
	for _, n := range t.nodes {
		n.Update()
	}
	t.ticks++
	if t.onTick != nil {
		t.onTick(t.ticks)
	}
}

func (t *Ticker) drain() {
	for {
		select {
		case cmd := <-t.cmds:
			cmd()
		default:
			return
		}
	}
}

// Ticks returns the number of completed ticks.
func (t *Ticker) Ticks() uint64 { return t.ticks }

// Run ticks at the configured period until ctx is done.
func (t *Ticker) Run(ctx context.Context) error {
	tk := time.NewTicker(t.period)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tk.C:
			t.Tick()
		}
	}
}
