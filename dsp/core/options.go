package core

// Default stream format: 44.1 kHz audio moved in 128-sample blocks.
const (
	DefaultSampleRate = 44100.0
	DefaultBlockSize  = 128
)

// ProcessorConfig defines the fixed stream format a block processor runs at.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the platform stream format.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		BlockSize:  DefaultBlockSize,
	}
}

// WithSampleRate sets the processing sample rate. Non-positive values are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size. Non-positive values are ignored.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Nyquist returns half the sample rate.
func (c ProcessorConfig) Nyquist() float64 { return c.SampleRate / 2 }

// BlockDuration returns the wall-clock length of one block in seconds.
// This is the budget a single block update must fit in.
func (c ProcessorConfig) BlockDuration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}
	return float64(c.BlockSize) / c.SampleRate
}
