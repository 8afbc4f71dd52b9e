// Package hash wraps xxHash64 for item hashing and payload checksums.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of a payload.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Keyed computes the xxHash64 of data seeded with key.
//
// Different keys give independent hash families, so a filter keyed per block
// does not share false positives with a filter built under another key.
func Keyed(key uint64, data []byte) uint64 {
	var d xxhash.Digest
	d.ResetWithSeed(key)
	_, _ = d.Write(data)

	return d.Sum64()
}
