// Package filterbank runs a multi-band filterbank once per audio block.
//
// A filterbank pulls one block from a [BlockSource], filters it through
// every designed band and pushes each active band's output to a
// [BlockSink]. Two variants share the [Filterbank] interface: [FIRBank]
// (linear-phase bands with a common delay) and [BiquadBank] (cascaded
// second-order sections from Linkwitz-Riley or Butterworth crossovers).
//
// Redesign through [Filterbank.Design] is all-or-nothing: the request is
// validated and fully designed before the running filter set is replaced,
// so a rejected request leaves layout, coefficients and filter state as
// they were. The first successful design switches processing on; later
// designs keep the forwarding limit set by [Filterbank.SetActiveBands]
// while the band count is unchanged. Update never allocates, blocks or
// logs.
//
// A Filterbank is not safe for concurrent use. Update and control calls
// must be serialised by the host, typically on one audio goroutine.
package filterbank
