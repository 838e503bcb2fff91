// Package entropy provides non-deterministic seeds for worlds created
// without an explicit one. Everything downstream of the seed is a plain
// seeded math/rand stream; crypto/rand is only ever consulted here.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
)

// Seed32 returns a random non-zero 32-bit seed widened to int64.
func Seed32() int64 {
	var buf [4]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively impossible; fall back to a
		// fixed seed rather than propagate an error into generation.
		return 1
	}
	seed := int64(binary.LittleEndian.Uint32(buf[:]))
	if seed == 0 {
		seed = 1
	}
	return seed
}
