// Package hash provides the xxHash64 content fingerprint used to key
// snapshot archives by the bytecode they were decoded from.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
