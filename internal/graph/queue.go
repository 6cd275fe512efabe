package graph

import (
	"sync"

	"github.com/cwbudde/algo-filterbank/dsp/core"
)

// Queue is a bounded FIFO of fixed-length blocks. Push copies into a
// preallocated slot, Receive hands out the slot without copying. The block
// returned by Receive stays valid until the next Receive.
type Queue struct {
	mu       sync.Mutex
	slots    [][]float64
	depth    int
	head     int
	size     int
	blockLen int
	dropped  uint64
}

// NewQueue returns a queue holding up to depth blocks of blockLen samples.
func NewQueue(depth, blockLen int) *Queue {
	depth = max(depth, 1)
	blockLen = max(blockLen, 1)

	// One extra slot keeps the last received block intact while the
	// producer refills the queue.
	slots := make([][]float64, depth+1)
	for i := range slots {
		slots[i] = make([]float64, blockLen)
	}
	return &Queue{slots: slots, depth: depth, blockLen: blockLen}
}

// Push enqueues a copy of block, truncated or zero-padded to the block
// length. It returns false and counts a drop when the queue is full.
func (q *Queue) Push(block []float64) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == q.depth {
		q.dropped++
		return false
	}
	slot := q.slots[(q.head+q.size)%len(q.slots)]
	n := core.CopyInto(slot, block)
	core.Zero(slot[n:])
	q.size++
	return true
}

// Receive dequeues the oldest block. It never blocks.
func (q *Queue) Receive() ([]float64, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == 0 {
		return nil, false
	}
	slot := q.slots[q.head]
	q.head = (q.head + 1) % len(q.slots)
	q.size--
	return slot, true
}

// Len returns the number of queued blocks.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.size
}

// Dropped returns the number of blocks rejected by Push.
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}

// BlockLen returns the length of every queued block.
func (q *Queue) BlockLen() int { return q.blockLen }
