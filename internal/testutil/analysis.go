package testutil

// Energy returns the sum of squares of x.
func Energy(x []float64) float64 {
	e := 0.0
	for _, v := range x {
		e += v * v
	}
	return e
}

// Sum adds the signals sample by sample. The result has the length of the
// shortest input.
func Sum(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	n := len(signals[0])
	for _, s := range signals[1:] {
		n = min(n, len(s))
	}
	out := make([]float64, n)
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}

// Delayed returns x delayed by d samples, truncated to len(x).
func Delayed(x []float64, d int) []float64 {
	out := make([]float64, len(x))
	if d < len(x) {
		copy(out[max(d, 0):], x)
	}
	return out
}

// Loudest returns the index of the signal with the most energy in its
// second half, skipping the filter transient.
func Loudest(signals [][]float64) int {
	best, bestE := -1, -1.0
	for i, s := range signals {
		if e := Energy(s[len(s)/2:]); e > bestE {
			best, bestE = i, e
		}
	}
	return best
}
