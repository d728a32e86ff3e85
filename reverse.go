package crumsort

// rangeReverse reverses a[lo..hi] in place, inclusive of both ends
// (quad_reversal in the source): a pure index-swap, no scratch
// involved.
func rangeReverse[T any](a []T, lo, hi int) {
	for lo < hi {
		a[lo], a[hi] = a[hi], a[lo]
		lo++
		hi--
	}
}
