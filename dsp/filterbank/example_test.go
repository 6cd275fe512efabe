package filterbank_test

import (
	"fmt"

	"github.com/cwbudde/algo-filterbank/dsp/filterbank"
	"github.com/cwbudde/algo-filterbank/internal/graph"
)

func ExampleNewBiquad() {
	in := graph.NewQueue(4, 128)
	out := graph.NewCollector(3)

	fb, err := filterbank.NewBiquad(in, out)
	if err != nil {
		panic(err)
	}
	if err := fb.Design(3, 6, 44100, 128, []float64{500, 2000}); err != nil {
		panic(err)
	}

	in.Push(make([]float64, 128))
	fb.Update()

	for b := range fb.DesignedBands() {
		fmt.Printf("band %d: %d sections, %d block(s)\n", b, fb.Band(b).NumSections(), out.Count(b))
	}
	// Output:
	// band 0: 3 sections, 1 block(s)
	// band 1: 3 sections, 1 block(s)
	// band 2: 3 sections, 1 block(s)
}
