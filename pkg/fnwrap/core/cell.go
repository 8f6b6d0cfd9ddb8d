package core

import "sync/atomic"

// Cell holds a callable that may be taken at most once.
// Taking it a second time, or after Discard, fails.
type Cell[F any] struct {
	used atomic.Uintptr
	fn   F
}

func NewCell[F any](fn F) *Cell[F] {
	return &Cell[F]{fn: fn}
}

// Take returns the callable and marks the cell consumed.
// Returns (zero, false) if it was already taken or discarded.
func (c *Cell[F]) Take() (F, bool) {
	var zero F
	if c.used.Add(1) != 1 {
		return zero, false
	}
	fn := c.fn
	c.fn = zero
	return fn, true
}

// Discard marks the cell consumed without handing out the callable.
func (c *Cell[F]) Discard() {
	if c.used.Add(1) == 1 {
		var zero F
		c.fn = zero
	}
}

func (c *Cell[F]) Consumed() bool {
	return c.used.Load() != 0
}
