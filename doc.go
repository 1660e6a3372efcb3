// Package rngcache supplies pseudo-random samples from a user-specified
// distribution, pre-generated in fixed-size chunks by background
// producers so a hot consumer loop almost never pays the per-sample
// cost of the distribution.
//
// # Philosophy
//
// "Fill ahead, swap whole chunks, never lose determinism."
//
// Sampling a non-trivial distribution (Normal, Poisson, ...) over a
// pseudo-random engine is expensive relative to a buffer read. rngcache
// moves that cost off the consumer's goroutine: N producers each own a
// privately-seeded engine and keep a chunk of samples filled; the
// consumer drains an active chunk and, when it runs dry, exchanges it
// for a full one. The exchange transfers ownership of whole buffers,
// never copies, and never shares.
//
// # Architecture
//
// One cache owns one active chunk and a fixed, ordered set of producers:
//
//	consumer → Cache.Next() → active chunk
//	                 ↓ (drained)
//	          round-robin swap ⇄ Producer[i] (cond-var handshake)
//	                              fill loop, private engine
//
// Chunks: N+1 total, each exclusively owned by either the cache or one
// producer at any instant. The swap happens under the producer's lock;
// there is no window where both sides see the same buffer.
//
// # Determinism
//
// For a fixed (seed, producer count, chunk size, engine family) the
// sequence returned by Next is identical across runs and machines,
// independent of scheduling: producers are visited in fixed cyclic
// order, each producer's stream is a pure function of its child seed,
// and a chunk is drained strictly front to back. Child seeds are drawn
// in order from a single root engine seeded with the cache seed.
//
// Changing the producer count changes the output sequence (different
// child seeds, different interleaving). Omitting WithSeed draws the
// seed from OS entropy and gives a different stream every run.
//
// # Basic Usage
//
// Consumer side:
//
//	cache, err := rngcache.New(dist.Normal(0, 1), rngcache.WithSeed(42))
//	if err != nil {
//	    log.Fatalf("rngcache: %v", err)
//	}
//	defer cache.Close()
//
//	for i := 0; i < 1_000_000; i++ {
//	    v, err := cache.Next()
//	    if err != nil {
//	        break // only possible after Close
//	    }
//	    consume(v)
//	}
//
// Custom distributions are closures over an engine:
//
//	coinFlips := rngcache.Distribution[bool](func(e rngcache.Engine) rngcache.Sampler[bool] {
//	    return func() bool { return e.Uint64()&1 == 1 }
//	})
//
// # Monitoring
//
// Stats() returns an operational snapshot:
//
//	stats := cache.Stats()
//	if rate := rngcache.CalculateStallRate(stats); rate > 0.01 {
//	    log.Printf("consumer outrunning producers: stall rate %.1f%%", rate*100)
//	}
//
// Stalls count the swaps that had to wait for an unfinished refill. In
// steady state (fill rate >= consumption rate) they stay at zero.
//
// # Thread Safety
//
// A cache serves one logical consumer:
//
//   - Next(): MUST be called from a single goroutine
//   - Close(): safe from any goroutine, idempotent
//   - Stats(): safe from any goroutine (snapshot)
//
// Racing Next against Close does not corrupt state: the losing Next
// returns ErrCacheClosed.
//
// # Lifecycle
//
//  1. New(): derives child seeds, starts N producer goroutines (they
//     begin filling immediately)
//  2. Next(): normal operation
//  3. Close(): stops and joins every producer; no goroutine outlives it
//
// Close is required: Go has no destructors, and an unclosed cache keeps
// its producer goroutines parked forever.
//
// # Module Context
//
//   - Bounded context: sample supply only (not distribution math, not
//     entropy policy)
//   - Engines: math/rand/v2 sources (PCG default, ChaCha8 available)
//   - Ready-made distributions: see the dist subpackage (gonum-backed)
package rngcache
