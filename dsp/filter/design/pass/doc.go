// Package pass designs low-pass and high-pass cascades of second-order
// sections: RBJ biquads, Butterworth cascades and Linkwitz-Riley cascades.
//
// Designers return nil for invalid parameters (non-positive order, cutoff
// outside (0, Nyquist), non-positive sample rate); callers that need an
// error wrap them, as dsp/filter/crossover does.
package pass
