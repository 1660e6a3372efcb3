package rngcache

import "github.com/e7canasta/rngcache/internal/cache"

// Public API - Re-export internal types as stable contract

// Engine is the raw pseudo-random source: math/rand/v2's Source.
// gonum's distuv distributions accept it directly via their Src field.
type Engine = cache.Engine

// Sampler produces one sample per call from a privately bound engine.
type Sampler[T any] = cache.Sampler[T]

// Distribution binds distribution parameters to a private engine,
// returning the sampler a producer runs in its fill loop.
type Distribution[T any] = cache.Distribution[T]

// EngineFactory builds an engine from a 64-bit seed.
type EngineFactory = cache.EngineFactory

// Cache is the consumer-facing sample supply (one logical consumer).
type Cache[T any] = cache.Cache[T]

// CacheStats is a snapshot of cache operational state.
type CacheStats = cache.CacheStats

// ProducerStats tracks per-producer operational state.
type ProducerStats = cache.ProducerStats

// DefaultChunkSize is the per-chunk sample count used when
// WithChunkSize is not given (128 KiB worth of 8-byte samples).
const DefaultChunkSize = cache.DefaultChunkSize

// Public API errors - Re-export internal errors as stable contract
var (
	// ErrCacheClosed is returned by Next after (or racing) Close. It
	// indicates a lifecycle bug in the caller; a correctly sequenced
	// consumer never sees it.
	ErrCacheClosed = cache.ErrCacheClosed

	// ErrNoProducers is returned by New when the producer count
	// resolves below 1.
	ErrNoProducers = cache.ErrNoProducers

	// ErrBadChunkSize is returned by New when the chunk size resolves
	// below 1.
	ErrBadChunkSize = cache.ErrBadChunkSize

	// ErrNilDistribution is returned by New for a nil distribution.
	ErrNilDistribution = cache.ErrNilDistribution
)
