package cache

import (
	"encoding/binary"
	"math/rand/v2"
)

// PCG is the default engine family: math/rand/v2's permuted congruential
// generator, seeded deterministically from a single 64-bit seed.
func PCG(seed uint64) Engine {
	return rand.NewPCG(seed, 0)
}

// ChaCha8 builds a cryptographically stronger engine from the same
// 64-bit seed shape. The 256-bit key is expanded from the seed by
// drawing four words from a PCG, so equal seeds give equal engines.
func ChaCha8(seed uint64) Engine {
	var key [32]byte
	src := rand.NewPCG(seed, 0)
	for i := 0; i < len(key); i += 8 {
		binary.LittleEndian.PutUint64(key[i:], src.Uint64())
	}
	return rand.NewChaCha8(key)
}
