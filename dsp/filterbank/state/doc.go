// Package state holds the crossover layout shared by a filterbank's
// designer, runtime and control surface: active band count, filter order,
// sample rate and the ascending list of crossover frequencies.
//
// Storage is allocated once for a fixed capacity. Capacity may only change
// before the owning filterbank starts processing; after [State.Freeze]
// every capacity change fails with [ErrFrozen].
package state
