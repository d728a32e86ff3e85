package crumsort

// CompareFunc reports the relative order of a and b: negative if
// a precedes b, zero if they are equivalent, positive if a follows b.
// It must define a strict weak order; behavior under a non-order
// comparator is undefined, and CompareFunc must not mutate a, b, or
// any other state it closes over.
type CompareFunc[T any] func(a, b T) int

// DefaultScratchSize (CRUM_AUX) is the size of the scratch region Sort
// reserves on its own activation frame when the caller doesn't supply
// one.
const DefaultScratchSize = 512

// shortCircuit is the largest n handled directly by smallSort without
// ever reaching the analyzer.
const shortCircuit = 256

// QuadCacheThreshold (QUAD_CACHE in the source) is the quad1 size
// above which the analyzer always takes the per-quadrant dispatch
// branch instead of merging whole halves, approximating an L2 cache
// footprint. It's a package var, not a constant, so an embedder can
// tune it for its target hardware; the default sits in the middle of
// the recommended 32K-128K element range.
var QuadCacheThreshold = 64 * 1024

// Sort sorts data in place using cmp, reserving its own fixed-size
// scratch region. n <= 1 is a no-op. Inputs with n <= 256 go directly
// to smallSort; larger inputs are handed to the adaptive analyzer with
// a DefaultScratchSize-element scratch array.
func Sort[T any](data []T, cmp CompareFunc[T]) {
	n := len(data)
	if n < 2 {
		return
	}
	if n <= shortCircuit {
		var buf [shortCircuit]T
		smallSort(data, buf[:n], n, cmp)
		return
	}
	defer recoverAndLog("crumsort.Sort")()
	var swap [DefaultScratchSize]T
	analyze(data, swap[:], n, cmp)
}

// SortSwap sorts data in place using cmp, with the caller supplying the
// scratch buffer swap (and implicitly its size via len(swap)). n <= 1
// is a no-op. Inputs with n <= 256 go directly to smallSort, bypassing
// the analyzer entirely, same as Sort.
func SortSwap[T any](data []T, swap []T, cmp CompareFunc[T]) {
	n := len(data)
	if n < 2 {
		return
	}
	if n <= shortCircuit {
		smallSort(data, swap, n, cmp)
		return
	}
	defer recoverAndLog("crumsort.SortSwap")()
	analyze(data, swap, n, cmp)
}
