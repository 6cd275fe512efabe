package state

import "errors"

var (
	// ErrConfiguration reports an invalid layout: wrong crossover count,
	// unsorted or out-of-band frequencies, bad order or sample rate.
	ErrConfiguration = errors.New("invalid filterbank configuration")

	// ErrCapacity reports a band count or order above the configured limit.
	ErrCapacity = errors.New("filterbank capacity exceeded")

	// ErrFrozen reports a configuration-phase change after processing began.
	ErrFrozen = errors.New("filterbank state is frozen")
)
