// Package fingerprint computes an order-independent checksum over a
// slice of elements, for verifying that a sort permutes its input
// without dropping or duplicating elements. It's the same hash-then-sum
// pattern cmd/bio-pamtool's checksum.go uses to make a per-read hash
// commutative across shard ordering: hash each element's byte
// representation individually, then sum the hashes, so element order
// never affects the result.
package fingerprint

import (
	"blainsmith.com/go/seahash"
)

// Of returns a checksum of elems that does not depend on their order.
// encode must produce a stable byte representation of a single element;
// the caller chooses it so pointer-identity and unrelated struct fields
// don't leak into the hash.
func Of[T any](elems []T, encode func(T) []byte) uint64 {
	h := seahash.New()
	var sum uint64
	for _, e := range elems {
		h.Reset()
		h.Write(encode(e))
		sum += h.Sum64()
	}
	return sum
}
