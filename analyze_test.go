package crumsort

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/grailbio/crumsort/internal/genfuzz"
)

// TestAnalyzeFastExitOnSortedInput exercises the fast-exit branch: a
// fully ascending input should come back unchanged without needing any
// partition or merge work. n stays at or below 516 so the block scan's
// skip step, which adds 48 to every balance, never fires.
func TestAnalyzeFastExitOnSortedInput(t *testing.T) {
	n := 500
	data := genfuzz.Sorted(n)
	want := append([]int(nil), data...)

	var swap [DefaultScratchSize]int
	analyze(data, swap[:], n, intCmp)
	assert.Equal(t, want, data)
}

// TestAnalyzeReverseRepair exercises the reverse-run repair: a fully
// descending input trips every quadrant's "fully descending"
// check and should be handled by a single whole-range reversal.
func TestAnalyzeReverseRepair(t *testing.T) {
	n := 9000
	data := genfuzz.Reversed(n)

	var swap [DefaultScratchSize]int
	analyze(data, swap[:], n, intCmp)
	assert.Equal(t, genfuzz.Sorted(n), data)
}

// TestAnalyzePartiallyDescendingQuadrants builds an input where only
// some quadrants are fully descending, to exercise the partial-span
// reversal cases rather than the all-quadrants one.
func TestAnalyzePartiallyDescendingQuadrants(t *testing.T) {
	n := 8000
	half1 := n / 2

	data := genfuzz.Random(71, n)
	// Force the front half into a single descending run, leaving the
	// back half untouched (still random).
	sort.Sort(sort.Reverse(sort.IntSlice(data[:half1])))

	want := append([]int(nil), data...)
	sort.Ints(want)

	var swap [DefaultScratchSize]int
	analyze(data, swap[:], n, intCmp)
	assert.Equal(t, want, data)
}

func TestAnalyzeManyDuplicates(t *testing.T) {
	n := 50000
	data := genfuzz.FewDistinct(3, n, 4)
	want := append([]int(nil), data...)
	sort.Ints(want)

	var swap [DefaultScratchSize]int
	analyze(data, swap[:], n, intCmp)
	assert.Equal(t, want, data)
}

func TestAnalyzeOrganPipe(t *testing.T) {
	n := 30000
	data := genfuzz.OrganPipe(n)
	want := append([]int(nil), data...)
	sort.Ints(want)

	var swap [DefaultScratchSize]int
	analyze(data, swap[:], n, intCmp)
	assert.Equal(t, want, data)
}
