// Package hash fingerprints sample material so assessment records can be
// tied back to the exact bytes they were computed from.
package hash

import "github.com/cespare/xxhash/v2"

// Fingerprint computes the xxHash64 of raw sample bytes.
func Fingerprint(samples []byte) uint64 {
	return xxhash.Sum64(samples)
}

// ID computes the xxHash64 of a noise source label.
func ID(label string) uint64 {
	return xxhash.Sum64String(label)
}
