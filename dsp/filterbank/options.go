package filterbank

import "github.com/cwbudde/algo-filterbank/dsp/window"

type config struct {
	capacity int
	maxOrder int
	window   window.Type
	warm     bool
}

// Option configures a filterbank.
type Option func(*config)

// WithCapacity sets the maximum band count. Values below 1 are ignored.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// WithMaxOrder sets the order limit: the IIR order per boundary for
// BiquadBank, the tap count for FIRBank. Values below 1 are ignored.
func WithMaxOrder(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxOrder = n
		}
	}
}

// WithWindow selects the taper used by FIRBank designs. Default Hamming.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithWarmHandoff controls whether a redesign carries each band's delay
// state over to its replacement filter when the structure matches.
// Enabled by default.
func WithWarmHandoff(on bool) Option {
	return func(c *config) {
		c.warm = on
	}
}

func applyOptions(capacity, maxOrder int, opts []Option) config {
	cfg := config{
		capacity: capacity,
		maxOrder: maxOrder,
		window:   window.TypeHamming,
		warm:     true,
	}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}
