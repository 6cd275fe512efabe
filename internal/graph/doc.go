// Package graph is a minimal block-streaming host: a bounded input queue,
// a per-band output collector and a ticker that runs processing nodes at
// block cadence. It stands in for the audio graph a filterbank runs in.
package graph
