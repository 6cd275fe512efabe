// Command fbinfo designs a filterbank layout and prints the per-band
// filter structure and frequency response.
//
// Usage:
//
//	fbinfo [flags]
//
// Examples:
//
//	fbinfo -xover 500,2000
//	fbinfo -variant fir -order 255 -window kaiser -xover 250,1000,4000
//	fbinfo -freqs 100,1000,10000 -xover 500,2000
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-filterbank/dsp/filter/biquad"
	"github.com/cwbudde/algo-filterbank/dsp/filter/fir"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/design"
	"github.com/cwbudde/algo-filterbank/dsp/filterbank/layout"
	"github.com/cwbudde/algo-filterbank/dsp/window"
)

// band is a designed band reduced to what fbinfo prints.
type band struct {
	structure string
	response  func(freqHz float64) complex128
}

func main() {
	variant := flag.String("variant", "biquad", "filterbank variant: biquad or fir")
	rate := flag.Float64("rate", 44100, "sample rate in Hz")
	order := flag.Int("order", 6, "IIR order per crossover, or FIR tap count")
	xover := flag.String("xover", "500,2000", "comma-separated crossover frequencies in Hz")
	freqList := flag.String("freqs", "", "comma-separated evaluation frequencies in Hz (default: band centres)")
	win := flag.String("window", "hamming", "FIR design window")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: fbinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a filterbank and prints per-band structure and response.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	crossovers, err := parseFloats(*xover)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: -xover: %v\n", err)
		os.Exit(2)
	}
	freqs, err := parseFloats(*freqList)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: -freqs: %v\n", err)
		os.Exit(2)
	}

	p := design.Params{
		Bands:      len(crossovers) + 1,
		Order:      *order,
		SampleRate: *rate,
		BlockLen:   128,
		Crossovers: crossovers,
	}
	bands, err := designBands(*variant, *win, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(freqs) == 0 {
		freqs = layout.Centers(crossovers, *rate)
	}

	if err := printTable(os.Stdout, bands, freqs); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func designBands(variant, win string, p design.Params) ([]band, error) {
	switch variant {
	case "biquad":
		specs, err := design.NewBiquadDesigner().Design(p)
		if err != nil {
			return nil, err
		}
		out := make([]band, len(specs))
		for i, s := range specs {
			c := biquad.NewChain(s.Sections)
			out[i] = band{
				structure: fmt.Sprintf("%d sections, order %d", c.NumSections(), c.Order()),
				response:  func(f float64) complex128 { return c.Response(f, p.SampleRate) },
			}
		}
		return out, nil
	case "fir":
		wt, ok := window.ParseType(win)
		if !ok {
			return nil, fmt.Errorf("unknown window %q", win)
		}
		d := design.NewFIRDesigner()
		d.Window = wt
		specs, err := d.Design(p)
		if err != nil {
			return nil, err
		}
		out := make([]band, len(specs))
		for i, s := range specs {
			f := fir.New(s.Taps, s.BlockLen)
			out[i] = band{
				structure: fmt.Sprintf("%d taps, delay %.1f", f.NumTaps(), f.GroupDelay()),
				response:  func(hz float64) complex128 { return f.Response(hz, p.SampleRate) },
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown variant %q", variant)
	}
}

func printTable(w io.Writer, bands []band, freqs []float64) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"Band", "Structure"}
	for _, f := range freqs {
		header = append(header, fmt.Sprintf("%.0f Hz [dB]", f))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(header, "\t")); err != nil {
		return err
	}

	sums := make([]complex128, len(freqs))
	for i, b := range bands {
		row := []string{strconv.Itoa(i), b.structure}
		for k, f := range freqs {
			h := b.response(f)
			sums[k] += h
			row = append(row, fmt.Sprintf("%.2f", db(h)))
		}
		if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
			return err
		}
	}

	row := []string{"sum", ""}
	for _, s := range sums {
		row = append(row, fmt.Sprintf("%.2f", db(s)))
	}
	if _, err := fmt.Fprintln(tw, strings.Join(row, "\t")); err != nil {
		return err
	}
	return tw.Flush()
}

func db(h complex128) float64 {
	return 20 * math.Log10(cmplx.Abs(h))
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
