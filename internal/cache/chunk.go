package cache

// chunk is a fixed-capacity buffer of pre-generated samples plus a read
// cursor. It has no synchronization of its own; exclusive ownership is
// enforced by the producer/cache swap protocol.
//
// Cursor invariants:
//   - next == len(values): drained (safe to refill)
//   - next == 0:           full (safe to hand to the consumer)
type chunk[T any] struct {
	next   int
	values []T
}

// newChunk allocates a chunk of the given capacity in the drained state,
// so the first refill needs no special case.
func newChunk[T any](size int) *chunk[T] {
	return &chunk[T]{
		next:   size,
		values: make([]T, size),
	}
}

// pop returns the sample under the cursor and advances it.
// Popping a drained chunk is a bug in the refill protocol, not a
// recoverable condition.
func (c *chunk[T]) pop() T {
	if c.empty() {
		panic("rngcache: pop from drained chunk")
	}
	v := c.values[c.next]
	c.next++
	return v
}

func (c *chunk[T]) empty() bool {
	return c.next == len(c.values)
}

func (c *chunk[T]) full() bool {
	return c.next == 0
}

// refill writes exactly cap samples in call order and rewinds the
// cursor. The caller must own the chunk and it must be drained.
func (c *chunk[T]) refill(sample Sampler[T]) {
	if !c.empty() {
		panic("rngcache: refill of undrained chunk")
	}
	for i := range c.values {
		c.values[i] = sample()
	}
	c.next = 0
}
