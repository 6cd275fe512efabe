// Command fbdemo runs a multi-band filterbank on a synthetic multi-tone
// input at real-time block cadence and accepts live-tuning command triples
// from the terminal.
//
// Usage:
//
//	fbdemo [flags]
//
// Keys are read in groups of three: mode, channel, action. With the
// default mode 'f':
//
//	f0u  raise crossover 0 by a semitone
//	f1d  lower crossover 1 by a semitone
//	f2t  toggle band 2
//	f0J  log a state snapshot
//
// Press q (between triples) or Ctrl-C to quit. Every flag has an FBDEMO_*
// environment variable counterpart, e.g. FBDEMO_VARIANT=fir.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/cwbudde/algo-filterbank/dsp/filterbank"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/control"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/design"
	"github.com/cwbudde/algo-filterbank/dsp/window"
	"github.com/cwbudde/algo-filterbank/internal/graph"
)

func main() {
	cfg, err := parseFlags(loadConfig(), os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("fbdemo failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	graphLog := logger.With("component", "graph")
	fbLog := logger.With("component", "filterbank")
	ctrlLog := logger.With("component", "control")

	in := graph.NewQueue(4, cfg.BlockLen)
	out := graph.NewCollector(max(design.BiquadCapacity, design.FIRCapacity))
	fb, err := newFilterbank(cfg, in, out)
	if err != nil {
		return err
	}

	bands := len(cfg.Crossovers) + 1
	if err := fb.Design(bands, cfg.Order, cfg.SampleRate, cfg.BlockLen, cfg.Crossovers); err != nil {
		return fmt.Errorf("initial design: %w", err)
	}
	fbLog.Info("filterbank designed",
		"variant", cfg.Variant, "bands", bands, "order", cfg.Order,
		"crossovers", cfg.Crossovers, "rate", cfg.SampleRate, "block", cfg.BlockLen)

	surface := control.New(fb, control.WithPublisher(snapshotLogger{log: ctrlLog}))
	for _, cmd := range decodeAll(cfg.Commands) {
		ok := surface.Handle(cmd)
		ctrlLog.Info("command", "triple", tripleString(cmd), "applied", ok)
	}

	nodes := []graph.Node{
		newToneSource(in, cfg.Tones, cfg.SampleRate, graphLog),
		fb,
		&levelMeter{fb: fb, out: out, every: cfg.ReportEvery, log: fbLog},
	}
	tk := graph.NewTicker(cfg.blockPeriod(), nodes)

	if cfg.Interactive {
		keys, err := startKeys()
		switch {
		case err == nil:
			defer func() { _ = keys.Close() }()
			go pumpKeys(keys.Keys(), tk, surface, ctrlLog, quit)
		case errors.Is(err, errNotTerminal):
			ctrlLog.Debug("interactive control unavailable", "reason", err)
		default:
			return fmt.Errorf("terminal: %w", err)
		}
	}

	graphLog.Info("running", "period", cfg.blockPeriod(), "tones", cfg.Tones)
	err = tk.Run(ctx)
	graphLog.Info("stopped", "ticks", tk.Ticks(), "dropped", in.Dropped())
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}

// pumpKeys turns key presses into commands applied on the ticker goroutine.
func pumpKeys(keys <-chan byte, tk *graph.Ticker, surface *control.Surface, log *slog.Logger, quit func()) {
	var dec tripleDecoder
	for b := range keys {
		if b == keyCtrlC || (b == 'q' && !dec.Pending()) {
			quit()
			return
		}
		cmd, ok := dec.Feed(b)
		if !ok {
			continue
		}
		queued := tk.Submit(func() {
			applied := surface.Handle(cmd)
			log.Info("command", "triple", tripleString(cmd), "applied", applied)
		})
		if !queued {
			log.Warn("command queue full", "triple", tripleString(cmd))
		}
	}
}

func newFilterbank(cfg config, in *graph.Queue, out *graph.Collector) (filterbank.Filterbank, error) {
	if cfg.Variant == "fir" {
		w, ok := window.ParseType(cfg.Window)
		if !ok {
			return nil, fmt.Errorf("unknown window %q", cfg.Window)
		}
		fb, err := filterbank.NewFIR(in, out, filterbank.WithWindow(w))
		if err != nil {
			return nil, err
		}
		return fb, nil
	}
	fb, err := filterbank.NewBiquad(in, out)
	if err != nil {
		return nil, err
	}
	return fb, nil
}

func tripleString(c control.Command) string {
	return string([]byte{c.Mode, c.Channel, c.Data})
}
