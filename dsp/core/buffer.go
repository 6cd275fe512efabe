package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Zero sets all values in buf to 0.
func Zero(buf []float64) {
	for i := range buf {
		buf[i] = 0
	}
}

// CopyInto copies src into dst and returns the number of copied elements.
func CopyInto(dst, src []float64) int {
	n := min(len(dst), len(src))
	copy(dst[:n], src[:n])
	return n
}

// NewBlocks allocates count blocks of blockLen samples each, backed by a
// single contiguous array so per-band outputs stay cache friendly.
func NewBlocks(count, blockLen int) [][]float64 {
	if count <= 0 || blockLen <= 0 {
		return nil
	}
	backing := make([]float64, count*blockLen)
	blocks := make([][]float64, count)
	for i := range blocks {
		blocks[i] = backing[i*blockLen : (i+1)*blockLen : (i+1)*blockLen]
	}
	return blocks
}
