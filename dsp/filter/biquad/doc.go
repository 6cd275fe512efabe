// Package biquad provides second-order-section (biquad) filter runtime
// primitives for the cascaded filterbank variant.
//
// A [Section] implements Direct Form II Transposed processing for a single
// section defined by [Coefficients]. Sections are cascaded via [Chain] so
// that higher-order crossover filters are never run as a single
// high-order direct-form recursion.
//
// All block methods are allocation free and safe to call from the audio
// tick. Coefficient design lives in dsp/filter/design/pass and
// dsp/filter/crossover.
package biquad
