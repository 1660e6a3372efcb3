package rngcache

import "github.com/e7canasta/rngcache/internal/cache"

// PCG is the default engine family: math/rand/v2's permuted
// congruential generator. Fast, small state, deterministic from a
// single 64-bit seed.
func PCG(seed uint64) Engine {
	return cache.PCG(seed)
}

// ChaCha8 is an alternative engine family built on math/rand/v2's
// ChaCha8 stream cipher. Slower than PCG but with much stronger
// statistical guarantees; still deterministic from the same 64-bit
// seed shape.
func ChaCha8(seed uint64) Engine {
	return cache.ChaCha8(seed)
}
