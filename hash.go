package cardinality

import (
	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"
)

// rankHash returns the 32-bit hash whose trailing one-bits encode an item's
// rank. Low 32 bits of the xxh3 hash.
func rankHash(data []byte) uint32 {
	return uint32(xxh3.Hash(data))
}

// rankHashString is rankHash for strings, avoiding the []byte conversion
// allocation.
func rankHashString(s string) uint32 {
	return uint32(xxh3.HashString(s))
}

// bucketHash returns the 32-bit hash used to route an item to a register.
// It is drawn from a different hash family (xxhash64) than rankHash:
// deriving both from one value would correlate bucket choice with rank and
// bias the estimates.
func bucketHash(data []byte) uint32 {
	return uint32(xxhash.Sum64(data))
}

// bucketHashString is bucketHash for strings without allocating.
func bucketHashString(s string) uint32 {
	return uint32(xxhash.Sum64String(s))
}
