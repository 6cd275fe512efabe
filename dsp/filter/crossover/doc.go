// Package crossover designs the matched low-pass/high-pass pair that
// realises one band boundary of a cascaded multi-band filterbank.
//
// Even orders use Linkwitz-Riley alignment (HP polarity inverted for
// orders ≡ 2 mod 4); odd orders use Butterworth alignment. In both cases
// the pair sums to an allpass, so two adjacent bands recombine with a flat
// magnitude response around their shared crossover.
package crossover
