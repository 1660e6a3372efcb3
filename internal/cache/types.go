package cache

import (
	"errors"
	"math/rand/v2"
)

// Internal errors - mapped to public errors in the rngcache package
var (
	ErrCacheClosed     = errors.New("rngcache: use of closed cache")
	ErrNoProducers     = errors.New("rngcache: producer count must be at least 1")
	ErrBadChunkSize    = errors.New("rngcache: chunk size must be at least 1")
	ErrNilDistribution = errors.New("rngcache: nil distribution")
)

// Engine is the raw pseudo-random source behind every distribution.
// It is math/rand/v2's Source: a stream of uint64s advancing internal
// state on each call. gonum's distuv distributions accept it directly
// via their Src field.
type Engine = rand.Source

// Sampler produces one sample per call, drawing from a private engine
// bound at construction. A sampler is never shared between goroutines.
type Sampler[T any] func() T

// Distribution binds distribution parameters to a private engine and
// returns the sampler that a producer runs in its fill loop. The binding
// is called once per producer, so any per-producer state (gonum distuv
// structs, lookup tables) lives in the returned closure.
type Distribution[T any] func(engine Engine) Sampler[T]

// EngineFactory builds an engine from a seed. The same factory seeds the
// root engine (child-seed derivation) and every producer engine, so the
// whole output stream is a function of (seed, producer count, chunk
// size, factory).
type EngineFactory func(seed uint64) Engine

// DefaultChunkSize is the number of samples per chunk when none is
// configured: 128 KiB worth of 8-byte samples. Chunk size is a sample
// count, not a byte budget, so odd-sized sample types never round.
const DefaultChunkSize = 128 * 1024 / 8

// Config carries construction parameters. Zero values select defaults;
// see the option functions in the rngcache package.
type Config struct {
	// Seed for the root engine. Nil draws a seed from the OS entropy
	// source, which trades reproducibility for convenience.
	Seed *uint64

	// Producers is the number of background fill goroutines.
	// Zero resolves to runtime.NumCPU(). Resolving below 1 is a
	// construction error.
	Producers int

	// ChunkSize is the number of samples per chunk. Zero resolves to
	// DefaultChunkSize. Resolving below 1 is a construction error.
	ChunkSize int

	// Engine selects the engine family. Nil resolves to PCG.
	Engine EngineFactory
}

// Cache is the consumer-facing sample supply.
//
// A Cache instance serves exactly one logical consumer: Next must not be
// called concurrently. Stats and Close are safe from any goroutine.
type Cache[T any] interface {
	// Next returns one sample. It blocks only when the active chunk is
	// exhausted and the targeted producer has not finished its refill.
	// The only error it can return is ErrCacheClosed, after Close.
	Next() (T, error)

	// Close shuts down every producer and joins its goroutine before
	// returning. Idempotent.
	Close() error

	// Stats returns an operational snapshot. Safe for concurrent use.
	Stats() CacheStats
}

// CacheStats is a snapshot of cache operational state.
type CacheStats struct {
	// Draws counts samples returned by Next.
	Draws uint64

	// Swaps counts chunk exchanges with producers.
	Swaps uint64

	// Stalls counts swaps that found the producer's refill unfinished
	// and had to wait. Should be ~0 when fill rate >= consumption rate.
	Stalls uint64

	// Producers holds per-producer statistics, in round-robin order.
	Producers []ProducerStats
}

// ProducerStats tracks per-producer operational state.
type ProducerStats struct {
	// Index is the producer's position in the round-robin order.
	Index int

	// Seed is the child seed derived from the root engine for this
	// producer. Useful for reproducing a single producer's stream.
	Seed uint64

	// Fills counts completed chunk refills.
	Fills uint64

	// Swaps counts chunks handed to the consumer.
	Swaps uint64

	// Stalls counts swaps that had to wait on this producer's refill.
	Stalls uint64
}
