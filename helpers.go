package rngcache

// CalculateStallRate returns the fraction of chunk swaps that had to
// wait for an unfinished refill (0.0 to 1.0). Returns 0.0 before the
// first swap. In steady state this should be ~0; a sustained non-zero
// rate means the consumer outruns the producers (add producers or grow
// the chunk size).
func CalculateStallRate(stats CacheStats) float64 {
	if stats.Swaps == 0 {
		return 0.0
	}
	return float64(stats.Stalls) / float64(stats.Swaps)
}

// CalculateProducerStallRate returns the stall rate for a single
// producer index. Returns 0.0 if the index is out of range or the
// producer has not served a swap yet. A single producer stalling while
// the others do not points at an expensive distribution tail or an
// unlucky core assignment rather than global undersupply.
func CalculateProducerStallRate(stats CacheStats, index int) float64 {
	if index < 0 || index >= len(stats.Producers) {
		return 0.0
	}

	p := stats.Producers[index]
	if p.Swaps == 0 {
		return 0.0
	}
	return float64(p.Stalls) / float64(p.Swaps)
}
