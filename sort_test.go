package crumsort

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/crumsort/internal/fingerprint"
	"github.com/grailbio/crumsort/internal/genfuzz"
)

func intCmp(a, b int) int { return a - b }

func intBytes(v int) []byte {
	var b [8]byte
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
	return b[:]
}

func isSorted(t *testing.T, data []int) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		assert.LessOrEqualf(t, data[i-1], data[i], "not sorted at index %d", i)
	}
}

// checkSort verifies that Sort's output is non-descending and that the
// multiset of elements is unchanged.
func checkSort(t *testing.T, data []int) {
	t.Helper()
	before := fingerprint.Of(data, intBytes)
	cp := append([]int(nil), data...)
	Sort(cp, intCmp)
	isSorted(t, cp)
	after := fingerprint.Of(cp, intBytes)
	assert.Equal(t, before, after, "Sort must preserve the input multiset")
}

func TestSortBoundarySizes(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 131, 132, 133, 256, 257, 2048, 2049} {
		data := genfuzz.Random(uint64(n)+1, n)
		checkSort(t, data)
	}
}

func TestSortAlreadySorted(t *testing.T) {
	checkSort(t, genfuzz.Sorted(5000))
}

func TestSortReversed(t *testing.T) {
	checkSort(t, genfuzz.Reversed(5000))
}

func TestSortRandom(t *testing.T) {
	for seed := uint64(0); seed < 5; seed++ {
		checkSort(t, genfuzz.Random(seed, 10000))
	}
}

func TestSortOrganPipe(t *testing.T) {
	checkSort(t, genfuzz.OrganPipe(8000))
}

func TestSortFewDistinct(t *testing.T) {
	checkSort(t, genfuzz.FewDistinct(42, 20000, 3))
	checkSort(t, genfuzz.FewDistinct(43, 20000, 1))
}

func TestSortEmptyAndSingleton(t *testing.T) {
	var empty []int
	Sort(empty, intCmp)
	assert.Empty(t, empty)

	one := []int{7}
	Sort(one, intCmp)
	assert.Equal(t, []int{7}, one)
}

// TestSortIdempotent checks that sorting an already-sorted slice again
// is a no-op.
func TestSortIdempotent(t *testing.T) {
	data := genfuzz.Random(9, 4000)
	Sort(data, intCmp)
	once := append([]int(nil), data...)
	Sort(data, intCmp)
	assert.Equal(t, once, data)
}

// TestSortDeterministic checks that sorting the same input twice from
// scratch produces the same output.
func TestSortDeterministic(t *testing.T) {
	seed := genfuzz.Random(17, 6000)
	a := append([]int(nil), seed...)
	b := append([]int(nil), seed...)
	Sort(a, intCmp)
	Sort(b, intCmp)
	assert.Equal(t, a, b)
}

// TestSortReverseEquivalence checks that sorting with a flipped
// comparator yields the reverse of the ascending sort.
func TestSortReverseEquivalence(t *testing.T) {
	data := genfuzz.Random(23, 4500)
	asc := append([]int(nil), data...)
	desc := append([]int(nil), data...)
	Sort(asc, intCmp)
	Sort(desc, func(a, b int) int { return b - a })

	want := make([]int, len(asc))
	for i, v := range asc {
		want[len(asc)-1-i] = v
	}
	assert.Equal(t, want, desc)
}

// TestSortAgainstStdlib cross-checks against sort.Ints on a spread of
// random sizes that straddle the size thresholds shortCircuit and 2048
// (QuadCacheThreshold is covered by TestSortQuadCacheThresholdOverride).
func TestSortAgainstStdlib(t *testing.T) {
	sizes := []int{0, 1, 2, 50, 255, 256, 257, 1000, 2047, 2048, 2049, 100000}
	for _, n := range sizes {
		data := genfuzz.Random(uint64(n*7+3), n)
		want := append([]int(nil), data...)
		sort.Ints(want)

		got := append([]int(nil), data...)
		Sort(got, intCmp)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestSortSwapMatchesSort(t *testing.T) {
	data := genfuzz.Random(99, 30000)
	a := append([]int(nil), data...)
	b := append([]int(nil), data...)

	Sort(a, intCmp)

	var swap [DefaultScratchSize]int
	SortSwap(b, swap[:], intCmp)

	assert.Equal(t, a, b)
}

// TestSortQuadCacheThresholdOverride exercises the per-quadrant
// dispatch branch by lowering QuadCacheThreshold below the dataset's
// quad1 size.
func TestSortQuadCacheThresholdOverride(t *testing.T) {
	old := QuadCacheThreshold
	QuadCacheThreshold = 100
	defer func() { QuadCacheThreshold = old }()

	checkSort(t, genfuzz.Random(7, 50000))
	checkSort(t, genfuzz.OrganPipe(40000))
}

func TestSortNonTransitiveComparatorFallsBackSafely(t *testing.T) {
	// A comparator that always reports "less" is not an order at all;
	// Sort must still return rather than hang or panic.
	data := genfuzz.Random(11, 5000)
	always := func(a, b int) int { return -1 }
	assert.NotPanics(t, func() {
		Sort(data, always)
	})
}
