package pprimes

import "sync"

// cursor is the shared work cursor: the one piece of mutable state shared
// between workers. next is the lowest unclaimed candidate and only ever
// moves forward.
type cursor struct {
	mu   sync.Mutex
	next int64
	max  int64
}

// newCursor returns a cursor seeded at the low bound of the range.
func newCursor(max int64) *cursor {
	return &cursor{next: rangeStart, max: max}
}

// claim hands out the next unclaimed candidate, or reports exhaustion once
// next has passed max. The critical section is only the
// read-compare-increment; hold time is constant regardless of how
// expensive the claimed candidate turns out to be.
func (c *cursor) claim() (int64, bool) {
	c.mu.Lock()
	if c.next > c.max {
		c.mu.Unlock()
		return 0, false
	}
	n := c.next
	c.next++
	c.mu.Unlock()
	return n, true
}
