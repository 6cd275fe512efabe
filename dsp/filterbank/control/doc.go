// Package control decodes the three-symbol live-tuning commands of a
// filterbank: nudge a crossover up or down by a semitone, toggle a band's
// output, or publish a snapshot of the current layout.
//
// A [Surface] holds its filterbank through the [filterbank.Filterbank]
// interface and must be driven from the same goroutine as Update.
// Rejected commands are reported by a false return only.
package control
