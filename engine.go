package quadraster

import (
	"sync"

	"github.com/gogpu/quadraster/internal/arena"
	"github.com/gogpu/quadraster/internal/parallel"
)

// delivery is one shape queued to one leaf cell, together with the back
// buffer it must be rasterized into.
type delivery struct {
	shape Shape
	dst   *Image
}

// Engine rasterizes shapes into a double-buffered frame using one worker
// goroutine per partition cell.
//
// A frame is built by any number of Submit/SubmitCircle calls followed by
// Present, which waits until every delivered shape is rasterized and then
// swaps buffers.
//
// Thread safety: Submit and SubmitCircle are safe for concurrent use, also
// concurrently with Present; a submission that starts after Present has
// taken the frame lands in the next frame. Resize and Close stop the world
// and must not be called concurrently with a frame in progress from another
// goroutine.
type Engine struct {
	// mu is held shared by submissions and exclusively by Present, Resize
	// and Close, so the arena and swapchain never change under a submitter.
	mu sync.RWMutex

	opts      options
	blend     blendFunc
	width     int
	height    int
	threshold int

	chain   *Swapchain
	tree    *quadtree
	pending *parallel.Counter
	circles *arena.Arena[Circle]

	frame  uint64
	tally  frameTally
	last   FrameStats
	closed bool
}

// New creates an engine for a width x height frame.
//
// Returns ErrInvalidDimensions, ErrInvalidThreshold, ErrInvalidQueueCapacity
// or ErrInvalidBlendMode if the configuration is invalid; nothing is started
// in that case.
func New(width, height int, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if o.queueCapacity < 1 {
		return nil, ErrInvalidQueueCapacity
	}
	if o.blend != BlendAdd && o.blend != BlendOver {
		return nil, ErrInvalidBlendMode
	}
	threshold := o.threshold(width, height)
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}

	chain, err := NewSwapchain(width, height)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		opts:    o,
		blend:   o.blend.fn(),
		chain:   chain,
		pending: parallel.NewCounter(),
		circles: arena.New[Circle](o.arenaChunk),
	}
	e.build(width, height, threshold)
	return e, nil
}

// build creates the partition for the given frame size.
// The caller holds mu exclusively or owns e outright.
func (e *Engine) build(width, height, threshold int) {
	e.width = width
	e.height = height
	e.threshold = threshold
	e.tree = newQuadtree(width, height, threshold, e.opts.queueCapacity, e.leafHandler, e.onFault, e.pending.Done)
	e.tally.reset(len(e.tree.leaves))

	Logger().Debug("quadraster: partition built",
		"width", width,
		"height", height,
		"threshold", threshold,
		"nodes", len(e.tree.nodes),
		"leaves", len(e.tree.leaves),
		"lanes", e.tree.lanes.Lanes())
}

// leafHandler returns the worker body for a leaf cell. The lane decrements
// the completion counter after each delivery, including faulted ones.
func (e *Engine) leafHandler(_ int, box Box) func(delivery) {
	return func(d delivery) {
		e.rasterize(box, d)
	}
}

// rasterize blends the shape's samples into dst over the part of the cell
// the shape may cover.
func (e *Engine) rasterize(cell Box, d delivery) {
	r := cell.Intersect(d.shape.Bounds())
	if r.Empty() {
		return
	}

	dst := d.dst
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := y * dst.Width
		for x := r.Min.X; x < r.Max.X; x++ {
			i := row + x
			dst.Pix[i] = e.blend(dst.Pix[i], d.shape.Sample(Vec2i{X: x, Y: y}))
		}
	}
}

// onFault records a shape whose rasterization panicked.
func (e *Engine) onFault(leaf int, err error) {
	e.tally.faults.Add(1)
	Logger().Warn("quadraster: shape fault recovered", "leaf", leaf, "err", err)
}

// Submit fans the shape out to every leaf cell its bounds intersect.
//
// Submit does not wait for rasterization, but blocks while a target cell's
// queue is full. The shape must stay valid and unchanged until the next
// Present returns. Submit on a closed engine is ignored.
func (e *Engine) Submit(s Shape) {
	if s == nil {
		return
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		Logger().Debug("quadraster: submit on closed engine ignored")
		return
	}
	e.submit(s)
}

// SubmitCircle submits a filled circle centered at (x, y) in frame
// coordinates. The circle is allocated from the per-frame arena and is
// invalidated by the next Present.
func (e *Engine) SubmitCircle(x, y, radius int, color Pixel) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.closed {
		Logger().Debug("quadraster: submit on closed engine ignored")
		return
	}

	c := e.circles.Alloc()
	c.set(V2i(x, y), radius, color, B(0, 0, e.width, e.height))
	e.submit(c)
}

// submit performs the fan-out. The caller holds mu shared.
// The counter is incremented before each enqueue so it cannot reach zero
// while a delivery is still queued.
func (e *Engine) submit(s Shape) {
	dst := e.chain.Back()
	e.tally.shapes.Add(1)

	e.tree.visit(s.Bounds(), func(n *quadnode) {
		e.pending.Add(1)
		e.tally.deliveries.Add(1)
		e.tally.touched.Mark(n.leaf)
		n.lane.Send(delivery{shape: s, dst: dst})
	})
}

// Present completes the current frame and returns it.
//
// Present waits until every submitted shape is rasterized, resets the
// per-frame arena, swaps the buffers and clears the new back buffer. The
// returned image is read-only for the caller and stays stable until the
// next Present. Returns nil if the engine is closed.
func (e *Engine) Present() *Image {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}

	backlog := e.tree.lanes.QueuedWork()
	e.pending.Wait()

	e.frame++
	e.last = e.tally.snapshot(e.frame, backlog)
	e.tally.reset(len(e.tree.leaves))

	Logger().Debug("quadraster: frame presented",
		"frame", e.frame,
		"shapes", e.last.Shapes,
		"backlog", backlog,
		"circles", e.circles.Len(),
		"arena_cap", e.circles.Cap())
	e.circles.Reset()

	return e.chain.Swap()
}

// Resize rebuilds the swapchain and partition for a new frame size.
//
// Resize waits for in-flight rasterization, stops every leaf worker and
// starts new ones. Shapes submitted since the last Present are discarded.
// Resizing to the current size is a no-op.
func (e *Engine) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	threshold := e.opts.threshold(width, height)
	if threshold < 1 {
		return ErrInvalidThreshold
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if width == e.width && height == e.height {
		return nil
	}

	chain, err := NewSwapchain(width, height)
	if err != nil {
		return err
	}

	e.pending.Wait()
	e.tree.close()
	e.circles.Reset()

	e.chain = chain
	e.build(width, height, threshold)
	return nil
}

// Close stops every leaf worker after in-flight work drains.
// Close is safe to call multiple times.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true

	e.pending.Wait()
	e.tree.close()
	e.circles.Reset()

	Logger().Debug("quadraster: engine closed", "frames", e.frame)
}

// Width returns the frame width in pixels.
func (e *Engine) Width() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.width
}

// Height returns the frame height in pixels.
func (e *Engine) Height() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.height
}

// Threshold returns the partition threshold in effect.
func (e *Engine) Threshold() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.threshold
}

// BlendMode returns the compositing operator used by leaf workers.
func (e *Engine) BlendMode() BlendMode {
	return e.opts.blend
}

// Leaves returns the boxes of all leaf cells.
func (e *Engine) Leaves() []Box {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.tree.leafBoxes()
}

// Pending returns the number of deliveries not yet rasterized.
func (e *Engine) Pending() int {
	return e.pending.Load()
}

// Stats returns statistics for the most recently presented frame.
func (e *Engine) Stats() FrameStats {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.last
}
