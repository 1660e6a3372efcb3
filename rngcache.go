package rngcache

import "github.com/e7canasta/rngcache/internal/cache"

// Options collects construction parameters. The zero value gives an
// entropy-seeded cache with runtime.NumCPU() producers and
// DefaultChunkSize samples per chunk.
type Options struct {
	// Seed for the root engine. Nil draws a seed from the OS entropy
	// source, trading reproducibility for convenience.
	Seed *uint64

	// Producers is the number of background fill goroutines. Zero
	// resolves to runtime.NumCPU(); resolving below 1 fails with
	// ErrNoProducers.
	Producers int

	// ChunkSize is the number of samples per chunk. Zero resolves to
	// DefaultChunkSize; resolving below 1 fails with ErrBadChunkSize.
	ChunkSize int

	// Engine selects the engine family for the root and producer
	// engines. Nil resolves to PCG.
	Engine EngineFactory
}

// Option adjusts a single construction parameter.
type Option func(*Options)

// WithSeed fixes the root seed, making the output stream reproducible:
// identical (seed, producer count, chunk size, engine) give identical
// sequences regardless of scheduling. Without it the seed comes from
// the OS entropy source.
func WithSeed(seed uint64) Option {
	return func(opts *Options) {
		opts.Seed = &seed
	}
}

// WithProducers sets the number of background producers.
func WithProducers(n int) Option {
	return func(opts *Options) {
		opts.Producers = n
	}
}

// WithChunkSize sets the number of samples per chunk.
func WithChunkSize(n int) Option {
	return func(opts *Options) {
		opts.ChunkSize = n
	}
}

// WithEngine selects the engine family used for the root engine and
// every producer engine.
func WithEngine(factory EngineFactory) Option {
	return func(opts *Options) {
		opts.Engine = factory
	}
}

// New creates a cache and starts its producer goroutines; they begin
// filling their chunks before the first call to Next.
//
// Lifecycle:
//  1. cache, err := rngcache.New(dist, rngcache.WithSeed(42))
//  2. v, err := cache.Next()  // hot loop, single consumer
//  3. cache.Close()           // stops and joins every producer
//
// Returns: Cache interface (implementation is internal).
func New[T any](d Distribution[T], opts ...Option) (Cache[T], error) {
	var resolved Options
	for _, opt := range opts {
		opt(&resolved)
	}
	return cache.New(d, cache.Config{
		Seed:      resolved.Seed,
		Producers: resolved.Producers,
		ChunkSize: resolved.ChunkSize,
		Engine:    resolved.Engine,
	})
}
