package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-filterbank/dsp/core"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/design"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/layout"
)

// config is the demo configuration. Environment variables set the
// defaults, command-line flags override them.
type config struct {
	Variant     string
	SampleRate  float64
	BlockLen    int
	Order       int
	Crossovers  []float64
	Octave      int
	Tones       []float64
	Window      string
	Commands    string
	Duration    time.Duration
	ReportEvery int
	LogLevel    slog.Level
	Interactive bool
}

func loadConfig() config {
	return config{
		Variant:     getEnv("FBDEMO_VARIANT", "biquad"),
		SampleRate:  getEnvFloat("FBDEMO_SAMPLE_RATE", core.DefaultSampleRate),
		BlockLen:    getEnvInt("FBDEMO_BLOCK_LEN", core.DefaultBlockSize),
		Order:       getEnvInt("FBDEMO_ORDER", 6),
		Crossovers:  getEnvFloats("FBDEMO_CROSSOVERS", []float64{500, 2000}),
		Octave:      getEnvInt("FBDEMO_OCTAVE", 0),
		Tones:       getEnvFloats("FBDEMO_TONES", []float64{200, 1000, 6000}),
		Window:      getEnv("FBDEMO_WINDOW", "hamming"),
		Commands:    getEnv("FBDEMO_COMMANDS", ""),
		Duration:    getEnvDuration("FBDEMO_DURATION", 0),
		ReportEvery: getEnvInt("FBDEMO_REPORT_EVERY", 344),
		LogLevel:    getEnvLevel("FBDEMO_LOG_LEVEL", slog.LevelInfo),
		Interactive: getEnvBool("FBDEMO_INTERACTIVE", true),
	}
}

// parseFlags overrides cfg from args.
func parseFlags(cfg config, args []string) (config, error) {
	fs := flag.NewFlagSet("fbdemo", flag.ContinueOnError)
	fs.StringVar(&cfg.Variant, "variant", cfg.Variant, "filterbank variant: biquad or fir")
	fs.Float64Var(&cfg.SampleRate, "rate", cfg.SampleRate, "sample rate in Hz")
	fs.IntVar(&cfg.BlockLen, "block", cfg.BlockLen, "block length in samples")
	fs.IntVar(&cfg.Order, "order", cfg.Order, "IIR order per crossover, or FIR tap count")
	crossovers := fs.String("xover", formatFloats(cfg.Crossovers), "comma-separated crossover frequencies in Hz")
	fs.IntVar(&cfg.Octave, "octave", cfg.Octave, "use 1/N-octave crossovers instead of -xover (0 disables)")
	tones := fs.String("tones", formatFloats(cfg.Tones), "comma-separated test tone frequencies in Hz")
	fs.StringVar(&cfg.Window, "window", cfg.Window, "FIR design window")
	fs.StringVar(&cfg.Commands, "cmds", cfg.Commands, "comma-separated command triples applied at start, e.g. f0u,f1t,f0J")
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "stop after this long (0 runs until q or Ctrl-C)")
	fs.IntVar(&cfg.ReportEvery, "report", cfg.ReportEvery, "log band levels every N blocks")
	fs.BoolVar(&cfg.Interactive, "interactive", cfg.Interactive, "read command triples from the terminal")
	level := fs.String("log-level", cfg.LogLevel.String(), "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	var err error
	if cfg.Crossovers, err = parseFloats(*crossovers); err != nil {
		return cfg, fmt.Errorf("-xover: %w", err)
	}
	if cfg.Tones, err = parseFloats(*tones); err != nil {
		return cfg, fmt.Errorf("-tones: %w", err)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(*level)); err != nil {
		return cfg, fmt.Errorf("-log-level: %w", err)
	}
	if cfg.Variant != "biquad" && cfg.Variant != "fir" {
		return cfg, fmt.Errorf("-variant: unknown variant %q", cfg.Variant)
	}
	if cfg.Octave > 0 {
		if cfg.Crossovers, err = cfg.octaveCrossovers(); err != nil {
			return cfg, fmt.Errorf("-octave: %w", err)
		}
	}
	return cfg, nil
}

// octaveCrossovers lays out fractional-octave bands, capped at the
// capacity of the selected variant.
func (c config) octaveCrossovers() ([]float64, error) {
	capacity := design.BiquadCapacity
	if c.Variant == "fir" {
		capacity = design.FIRCapacity
	}
	return layout.Octave(c.Octave, c.SampleRate, layout.WithMaxBands(capacity))
}

// blockPeriod returns the wall-clock duration of one block.
func (c config) blockPeriod() time.Duration {
	pc := core.ApplyProcessorOptions(core.WithSampleRate(c.SampleRate), core.WithBlockSize(c.BlockLen))
	return time.Duration(pc.BlockDuration() * float64(time.Second))
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1"
	}
	return def
}

func getEnvFloats(key string, def []float64) []float64 {
	if v := os.Getenv(key); v != "" {
		if fs, err := parseFloats(v); err == nil {
			return fs
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvLevel(key string, def slog.Level) slog.Level {
	if v := os.Getenv(key); v != "" {
		var l slog.Level
		if err := l.UnmarshalText([]byte(v)); err == nil {
			return l
		}
	}
	return def
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func formatFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strings.Join(parts, ",")
}
