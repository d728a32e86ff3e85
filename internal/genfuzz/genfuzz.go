// Package genfuzz builds deterministic int slices for exercising Sort
// across its adaptive cases: presorted, reverse-sorted, random,
// few-distinct, and organ-pipe/saw-tooth shapes. Every generator is
// seed-in, slice-out with no global or wall-clock state, so a failing
// case reproduces exactly from its seed and size alone.
package genfuzz

import (
	farm "github.com/dgryski/go-farm"
)

// hashAt returns a well-distributed uint64 for (seed, i), the same
// "hash an integer via farmhash of zero bytes with the integer as the
// seed" trick fusion/kmer_index.go uses to hash a kmer without
// allocating a byte representation for it.
func hashAt(seed uint64, i int) uint64 {
	return farm.Hash64WithSeed(nil, seed^uint64(i)*0x9E3779B97F4A7C15)
}

// Sorted returns [0, 1, ..., n-1].
func Sorted(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Reversed returns [n-1, n-2, ..., 0].
func Reversed(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}
	return out
}

// Random returns a deterministic pseudo-random permutation of [0, n)
// derived from seed via a Fisher-Yates shuffle driven by hashAt.
func Random(seed uint64, n int) []int {
	out := Sorted(n)
	for i := n - 1; i > 0; i-- {
		j := int(hashAt(seed, i) % uint64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// FewDistinct returns a deterministic pseudo-random slice of n values
// drawn from [0, distinct) (distinct below 1 is treated as 1),
// reproducing crumsort's "generic data" many-duplicates case.
func FewDistinct(seed uint64, n, distinct int) []int {
	if distinct < 1 {
		distinct = 1
	}
	out := make([]int, n)
	for i := range out {
		out[i] = int(hashAt(seed, i) % uint64(distinct))
	}
	return out
}

// OrganPipe returns a slice that ascends from 0 to n/2 then descends
// back down to 1, the classic adversarial shape for median-of-three pivot
// selection that crumsort's cube-root sampling is meant to resist.
func OrganPipe(n int) []int {
	out := make([]int, n)
	half := n / 2
	for i := 0; i < n; i++ {
		if i <= half {
			out[i] = i
		} else {
			out[i] = n - i
		}
	}
	return out
}
