package engine

import "sync"

// LiveCounter is the census every worker contributes to once per generation.
// The lock is held only for the duration of a single call.
type LiveCounter struct {
	mu    sync.Mutex
	total int
}

// Reset zeroes the counter. Only the leader calls it, inside the swap
// barrier's release.
func (c *LiveCounter) Reset() {
	c.mu.Lock()
	c.total = 0
	c.mu.Unlock()
}

// Add contributes one worker's tally.
func (c *LiveCounter) Add(n int) {
	c.mu.Lock()
	c.total += n
	c.mu.Unlock()
}

// Value returns the current total. It is only meaningful after the
// aggregation barrier.
func (c *LiveCounter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}
