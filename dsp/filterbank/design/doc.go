// Package design computes per-band filter coefficients for a multi-band
// filterbank from a crossover layout.
//
// Two designers are provided. [FIRDesigner] builds linear-phase
// windowed-sinc bands that share one group delay and sum to a delayed
// impulse. [BiquadDesigner] builds cascades of second-order sections from
// complementary crossover pairs, one pair per boundary.
//
// Designers are pure: they validate the full request before computing
// anything and return either a complete spec set or an error.
package design
