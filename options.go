package quadraster

import "github.com/gogpu/quadraster/internal/parallel"

// DefaultQueueCapacity is the default number of shapes a leaf cell can hold
// before Submit blocks.
const DefaultQueueCapacity = parallel.DefaultQueueSize

// ThresholdFunc returns the partition threshold for a frame size.
// Cells whose width and height are both at most the threshold are not split
// further. A cell exactly at the threshold is a leaf, so a 100x100 frame
// with threshold 50 has four 50x50 cells; a strict below-threshold rule
// would cut it into sixteen.
type ThresholdFunc func(width, height int) int

// DefaultThreshold splits the frame until cells are at most a quarter of
// the frame width on each axis.
func DefaultThreshold(width, _ int) int {
	return max(width/4, 1)
}

// Option configures an Engine during creation.
//
// Example:
//
//	e, err := quadraster.New(800, 600,
//	    quadraster.WithThreshold(128),
//	    quadraster.WithBlendMode(quadraster.BlendOver),
//	)
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	threshold     ThresholdFunc
	queueCapacity int
	blend         BlendMode
	arenaChunk    int
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		threshold:     DefaultThreshold,
		queueCapacity: DefaultQueueCapacity,
		blend:         BlendAdd,
	}
}

// WithThreshold uses a fixed partition threshold for every frame size.
func WithThreshold(n int) Option {
	return func(o *options) {
		o.threshold = func(int, int) int { return n }
	}
}

// WithThresholdFunc derives the partition threshold from the frame size.
// The function is consulted on creation and on every Resize.
func WithThresholdFunc(fn ThresholdFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.threshold = fn
		}
	}
}

// WithQueueCapacity sets the bounded queue capacity of every leaf cell.
func WithQueueCapacity(n int) Option {
	return func(o *options) {
		o.queueCapacity = n
	}
}

// WithBlendMode selects the compositing operator used by leaf workers.
func WithBlendMode(m BlendMode) Option {
	return func(o *options) {
		o.blend = m
	}
}

// WithArenaChunk sets how many circles the per-frame arena allocates at a
// time. The arena grows by whole chunks.
func WithArenaChunk(n int) Option {
	return func(o *options) {
		o.arenaChunk = n
	}
}
