package core

import "testing"

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithBlockSize(256))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.BlockSize != 256 {
		t.Fatalf("block size = %d, want 256", cfg.BlockSize)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestBlockDuration(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(44100), WithBlockSize(128))
	want := 128.0 / 44100.0
	if !NearlyEqual(cfg.BlockDuration(), want, 1e-12) {
		t.Fatalf("BlockDuration = %v, want %v", cfg.BlockDuration(), want)
	}
	if cfg.Nyquist() != 22050 {
		t.Fatalf("Nyquist = %v, want 22050", cfg.Nyquist())
	}
	if (ProcessorConfig{BlockSize: 16}).BlockDuration() != 0 {
		t.Fatal("expected zero duration for zero sample rate")
	}
}
