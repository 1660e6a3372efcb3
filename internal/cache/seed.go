package cache

import (
	crand "crypto/rand"
	"encoding/binary"
)

// entropySeed draws a 64-bit seed from the OS entropy source. Used only
// when no seed is configured; a run seeded this way is not reproducible.
func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		// crypto/rand documents Read as never failing on supported
		// platforms; a failure here means the platform is unusable.
		panic("rngcache: entropy source unavailable: " + err.Error())
	}
	return binary.LittleEndian.Uint64(b[:])
}
