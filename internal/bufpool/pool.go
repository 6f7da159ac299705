// Package bufpool reuses the RGBA conversion buffers of frame presenters.
package bufpool

import (
	"image"
	"sync"
)

// Pool is a thread-safe pool for reusing *image.NRGBA buffers.
//
// Pool groups buffers by their dimensions, so presenters that convert and
// scale every frame to the same sizes stop allocating after the first few
// frames.
//
// Thread safety: All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	buckets map[image.Point][]*image.NRGBA
	maxSize int // max buffers per bucket
}

// New creates a pool retaining at most maxPerBucket buffers of each size.
// A maxPerBucket of 0 means unlimited.
func New(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[image.Point][]*image.NRGBA),
		maxSize: maxPerBucket,
	}
}

// Get returns a width x height buffer with origin (0, 0), reused from the
// pool when one is available. Reused buffers are not cleared; callers are
// expected to overwrite every pixel.
// Returns nil if width or height is non-positive.
func (p *Pool) Get(width, height int) *image.NRGBA {
	if width <= 0 || height <= 0 {
		return nil
	}
	key := image.Pt(width, height)

	p.mu.Lock()
	if bucket := p.buckets[key]; len(bucket) > 0 {
		buf := bucket[len(bucket)-1]
		p.buckets[key] = bucket[:len(bucket)-1]
		p.mu.Unlock()
		return buf
	}
	p.mu.Unlock()

	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

// Put returns a buffer to the pool for reuse.
// If buf is nil, not based at the origin, or its bucket is full, the
// buffer is discarded.
func (p *Pool) Put(buf *image.NRGBA) {
	if buf == nil || buf.Rect.Min != (image.Point{}) || buf.Rect.Empty() {
		return
	}
	key := buf.Rect.Size()

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, buf)
}

// Len returns the number of buffers currently retained.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	n := 0
	for _, bucket := range p.buckets {
		n += len(bucket)
	}
	return n
}
