// Package cache implements the chunked producer/consumer sample supply.
//
// This package is INTERNAL - clients MUST use the public API in the
// rngcache package. Reason: allows internal refactoring without breaking
// changes.
package cache

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// cache is the concrete implementation of the Cache interface.
//
// Goroutine topology:
//   - N fixed: producer fill goroutines (spawned by New, joined by Close)
//   - 1 external: the consumer calling Next (not managed here)
//
// The active chunk and round-robin cursor are touched only by the
// consumer goroutine; Stats and Close use atomics and their own lock.
type cache[T any] struct {
	active    *chunk[T]
	producers []*producer[T]
	cursor    int

	draws atomic.Uint64
	swaps atomic.Uint64

	closeMu sync.Mutex
	closed  atomic.Bool
}

// New validates and resolves the config, derives one child seed per
// producer from a root engine, and starts the producers.
//
// Seed derivation: a single root engine is seeded with the cache seed
// and drawn from N times in sequence; draw i seeds producer i. The fixed
// derivation order, together with the fixed round-robin visit order, is
// what makes the output stream a pure function of the configuration.
func New[T any](d Distribution[T], cfg Config) (Cache[T], error) {
	if d == nil {
		return nil, ErrNilDistribution
	}

	engine := cfg.Engine
	if engine == nil {
		engine = PCG
	}

	producers := cfg.Producers
	if producers == 0 {
		producers = runtime.NumCPU()
	}
	if producers < 1 {
		return nil, ErrNoProducers
	}

	chunkSize := cfg.ChunkSize
	if chunkSize == 0 {
		chunkSize = DefaultChunkSize
	}
	if chunkSize < 1 {
		return nil, ErrBadChunkSize
	}

	seed := entropySeed()
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	root := engine(seed)
	ps := make([]*producer[T], producers)
	for i := range ps {
		ps[i] = newProducer(d, engine, root.Uint64(), chunkSize)
	}

	return &cache[T]{
		active:    newChunk[T](chunkSize),
		producers: ps,
	}, nil
}

// Next implements Cache.Next.
//
// Algorithm:
//  1. Refuse if the cache has been closed.
//  2. If the active chunk is drained, swap it with the next producer in
//     fixed cyclic order (blocking until that producer's refill is done).
//  3. Pop one sample from the active chunk.
//
// Because producers are visited in fixed order and each chunk is drained
// strictly front to back, no sample is ever skipped, duplicated, or
// reordered by thread timing.
func (c *cache[T]) Next() (T, error) {
	if c.closed.Load() {
		var zero T
		return zero, ErrCacheClosed
	}

	if c.active.empty() {
		p := c.producers[c.cursor]
		c.cursor++
		if c.cursor == len(c.producers) {
			c.cursor = 0
		}

		full, err := p.swap(c.active)
		if err != nil {
			var zero T
			return zero, err
		}
		c.active = full
		c.swaps.Add(1)
	}

	c.draws.Add(1)
	return c.active.pop(), nil
}

// Close implements Cache.Close. Every producer is stopped and its fill
// goroutine joined before Close returns; none is left running detached.
//
// Idempotent: safe to call multiple times.
func (c *cache[T]) Close() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	if c.closed.Load() {
		return nil // Already closed (idempotent)
	}
	c.closed.Store(true)

	for _, p := range c.producers {
		p.stop()
	}
	return nil
}
