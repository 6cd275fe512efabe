// Package layout computes crossover frequencies for a filterbank.
//
// Octave follows the IEC 61260 base-10 band system: band centres sit at
// 1000 * G^(k/N) with G = 10^(3/10), and the crossover between two
// neighbouring bands is their shared band edge. LogSpaced distributes a
// fixed number of crossovers geometrically over a frequency range.
package layout
