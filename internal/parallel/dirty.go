package parallel

import (
	"math/bits"
	"sync/atomic"
)

// DirtySet tracks which partition cells received work during a frame using
// an atomic bitmap. It provides lock-free, thread-safe operations for
// concurrent access.
//
// The bitmap uses one bit per cell, packed into uint64 words (64 cells per
// word). All methods are safe for concurrent use without external
// synchronization.
type DirtySet struct {
	// words is the atomic bitmap where each bit represents a cell.
	// Word index = cell / 64, bit position = cell % 64.
	words []atomic.Uint64

	// size is the number of cells tracked.
	size int
}

// NewDirtySet creates a set tracking size cells. All cells start clean.
// Returns nil if size is negative.
func NewDirtySet(size int) *DirtySet {
	if size < 0 {
		return nil
	}
	return &DirtySet{
		words: make([]atomic.Uint64, (size+63)/64),
		size:  size,
	}
}

// Mark marks cell i as dirty.
// This is a lock-free O(1) operation using atomic OR.
// Does nothing if i is out of range.
func (d *DirtySet) Mark(i int) {
	if i < 0 || i >= d.size {
		return
	}
	d.words[i/64].Or(1 << (i & 63))
}

// Count returns the number of marked cells.
func (d *DirtySet) Count() int {
	count := 0
	for i := range d.words {
		count += bits.OnesCount64(d.words[i].Load())
	}
	return count
}

// Clear marks every cell clean.
func (d *DirtySet) Clear() {
	for i := range d.words {
		d.words[i].Store(0)
	}
}

// Size returns the number of cells tracked.
func (d *DirtySet) Size() int {
	return d.size
}
