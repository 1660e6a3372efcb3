package cache

// Stats implements Cache.Stats.
//
// All fields are read from atomics or immutable state, so the snapshot
// is safe to take concurrently with Next, the fill goroutines, and
// Close. Counters may be mutually slightly stale; acceptable for
// monitoring.
func (c *cache[T]) Stats() CacheStats {
	stats := CacheStats{
		Draws:     c.draws.Load(),
		Swaps:     c.swaps.Load(),
		Producers: make([]ProducerStats, len(c.producers)),
	}

	for i, p := range c.producers {
		ps := ProducerStats{
			Index:  i,
			Seed:   p.seed,
			Fills:  p.fills.Load(),
			Swaps:  p.swaps.Load(),
			Stalls: p.stalls.Load(),
		}
		stats.Stalls += ps.Stalls
		stats.Producers[i] = ps
	}

	return stats
}
