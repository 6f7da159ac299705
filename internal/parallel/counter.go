package parallel

import "sync"

// Counter tracks outstanding work items and lets a caller block until the
// count drains to zero.
//
// Unlike sync.WaitGroup, Add may be called from zero concurrently with Wait:
// a waiter that observes zero returns, and a later Add simply starts a new
// round. This matches a frame loop where submissions and the end-of-frame
// barrier are not strictly ordered.
//
// Thread safety: Counter is safe for concurrent use.
type Counter struct {
	mu   sync.Mutex
	cond *sync.Cond
	n    int
}

// NewCounter creates a counter starting at zero.
func NewCounter() *Counter {
	c := &Counter{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Add adds delta to the counter. It panics if the counter goes negative.
func (c *Counter) Add(delta int) {
	c.mu.Lock()
	c.n += delta
	n := c.n
	c.mu.Unlock()

	if n < 0 {
		panic("parallel: negative Counter")
	}
	if n == 0 {
		c.cond.Broadcast()
	}
}

// Done decrements the counter by one.
func (c *Counter) Done() {
	c.Add(-1)
}

// Wait blocks until the counter is zero.
func (c *Counter) Wait() {
	c.mu.Lock()
	for c.n != 0 {
		c.cond.Wait()
	}
	c.mu.Unlock()
}

// Load returns the current count.
func (c *Counter) Load() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}
