package parallel

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// DefaultQueueSize is the default buffer size of a lane's queue.
const DefaultQueueSize = 64

// FaultFunc is called when a lane's handler panics while processing an item.
// The lane keeps running after a fault.
type FaultFunc func(lane int, err error)

// Pool owns a set of lanes, each a bounded queue serviced by exactly one
// dedicated goroutine.
//
// Unlike a work-stealing pool, items sent to a lane are only ever processed
// by that lane's goroutine, in the order they were sent. This lets callers
// bind a lane to an exclusively owned resource (for example a region of a
// pixel buffer) without further locking.
//
// Thread safety: Spawn and Close must not race with each other. Send on
// distinct lanes, or on the same lane, is safe for concurrent use while the
// pool is running.
type Pool[T any] struct {
	// lanes holds every lane spawned so far, in spawn order.
	lanes []*Lane[T]

	// wg waits for all lane goroutines to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool

	// onFault receives recovered handler panics. May be nil.
	onFault FaultFunc

	// onDone runs after every item, after onFault. May be nil.
	onDone func()
}

// NewPool creates an empty running pool.
// onFault is invoked for recovered handler panics; nil discards them.
// onDone is invoked once per processed item, including items whose handler
// panicked, after onFault returns; nil disables it.
func NewPool[T any](onFault FaultFunc, onDone func()) *Pool[T] {
	p := &Pool[T]{onFault: onFault, onDone: onDone}
	p.running.Store(true)
	return p
}

// Lane is a bounded FIFO queue drained by one goroutine.
type Lane[T any] struct {
	id     int
	queue  chan T
	handle func(T)
	pool   *Pool[T]
}

// Spawn creates a lane with the given queue capacity and starts its worker.
// If capacity is 0 or negative, DefaultQueueSize is used.
// Returns nil if the pool is closed.
func (p *Pool[T]) Spawn(capacity int, handle func(T)) *Lane[T] {
	if !p.running.Load() || handle == nil {
		return nil
	}
	if capacity <= 0 {
		capacity = DefaultQueueSize
	}

	l := &Lane[T]{
		id:     len(p.lanes),
		queue:  make(chan T, capacity),
		handle: handle,
		pool:   p,
	}
	p.lanes = append(p.lanes, l)

	p.wg.Add(1)
	go l.run()

	return l
}

// run is the main loop of a lane goroutine.
// It exits once the queue is closed and every queued item was processed.
func (l *Lane[T]) run() {
	defer l.pool.wg.Done()

	for item := range l.queue {
		l.process(item)
	}
}

// process runs the handler for one item, recovering from panics.
func (l *Lane[T]) process(item T) {
	if l.pool.onDone != nil {
		defer l.pool.onDone()
	}
	defer func() {
		if r := recover(); r != nil {
			if l.pool.onFault != nil {
				l.pool.onFault(l.id, fmt.Errorf("parallel: lane %d: %v", l.id, r))
			}
		}
	}()
	l.handle(item)
}

// Send enqueues an item, blocking while the queue is full.
// Send must not be called after the pool is closed.
func (l *Lane[T]) Send(item T) {
	l.queue <- item
}

// Close stops accepting work, lets every lane drain its queue, and waits
// for all lane goroutines to exit.
// Close is safe to call multiple times.
func (p *Pool[T]) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}

	for _, l := range p.lanes {
		close(l.queue)
	}

	p.wg.Wait()
}

// Lanes returns the number of lanes spawned.
func (p *Pool[T]) Lanes() int {
	return len(p.lanes)
}

// QueuedWork returns the total number of items currently queued.
// This is an approximation as queues can change while iterating.
func (p *Pool[T]) QueuedWork() int {
	total := 0
	for _, l := range p.lanes {
		total += len(l.queue)
	}
	return total
}
