// Package fir provides a block-oriented direct-form FIR filter runtime for
// the tapped filterbank variant.
//
// A [Filter] keeps a linear history buffer of len(taps)-1+blockLen samples,
// sized once from the design block length, so every output sample is one
// contiguous dot product. Input blocks longer than the design block length
// are processed in design-length chunks.
//
// This package provides the processing runtime only. Band coefficient design
// (windowed-sinc) lives in dsp/filterbank/design.
package fir
