// Package arena provides a per-frame bump allocator.
//
// An Arena hands out pointers to zeroed values carved from fixed-size chunks.
// Individual values are never freed; Reset invalidates every value at once
// and keeps the chunks for the next frame, so a steady-state frame loop
// allocates nothing after warm-up.
package arena

import "sync"

// DefaultChunkSize is the number of values per chunk when none is given.
const DefaultChunkSize = 256

// Arena is a growable bump allocator for values of type T.
//
// Pointers returned by Alloc stay valid (chunks are never moved) until the
// next Reset, after which the memory is zeroed and handed out again.
//
// Thread safety: Alloc is safe for concurrent use. Reset must not run
// concurrently with Alloc or with any use of previously allocated values.
type Arena[T any] struct {
	mu        sync.Mutex
	chunks    [][]T
	chunkSize int

	// chunk and next locate the next free slot.
	chunk int
	next  int

	// allocs counts values handed out since the last Reset.
	allocs int
}

// New creates an arena whose chunks hold chunkSize values.
// If chunkSize is 0 or negative, DefaultChunkSize is used.
// No memory is allocated until the first Alloc.
func New[T any](chunkSize int) *Arena[T] {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena[T]{chunkSize: chunkSize}
}

// Alloc returns a pointer to a zeroed T owned by the arena.
// A new chunk is added when the current ones are exhausted.
func (a *Arena[T]) Alloc() *T {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chunk < len(a.chunks) && a.next == a.chunkSize {
		a.chunk++
		a.next = 0
	}
	if a.chunk == len(a.chunks) {
		a.chunks = append(a.chunks, make([]T, a.chunkSize))
		a.next = 0
	}

	v := &a.chunks[a.chunk][a.next]
	a.next++
	a.allocs++
	return v
}

// Reset invalidates every value handed out since the previous Reset.
// Used slots are zeroed so the arena does not retain stale references.
func (a *Arena[T]) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := 0; i < a.chunk && i < len(a.chunks); i++ {
		clear(a.chunks[i])
	}
	if a.chunk < len(a.chunks) {
		clear(a.chunks[a.chunk][:a.next])
	}

	a.chunk = 0
	a.next = 0
	a.allocs = 0
}

// Len returns the number of values allocated since the last Reset.
func (a *Arena[T]) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocs
}

// Cap returns the number of values the arena can hold without growing.
func (a *Arena[T]) Cap() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.chunks) * a.chunkSize
}
