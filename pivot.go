package crumsort

// medianOfThree returns whichever of the indices i0, i1, i2 holds the
// middle-ranked element of a[i0], a[i1], a[i2], per the three-comparison
// formula from crum_median_of_three: v[(x==y) + (y^z)] where
// x = a[i0]>a[i1], y = a[i0]>a[i2], z = a[i1]>a[i2].
func medianOfThree[T any](a []T, i0, i1, i2 int, cmp CompareFunc[T]) int {
	v := [3]int{i0, i1, i2}

	x := cmp(a[i0], a[i1]) > 0
	y := cmp(a[i0], a[i2]) > 0
	z := cmp(a[i1], a[i2]) > 0

	idx := 0
	if x == y {
		idx++
	}
	if y != z {
		idx++
	}
	return v[idx]
}

// medianOfNine samples nine elements at fixed fractional offsets of
// a[:n], takes a median-of-three of three medians-of-three, and returns
// the index of the resulting pivot candidate.
func medianOfNine[T any](a []T, n int, cmp CompareFunc[T]) int {
	div := n / 16

	x := medianOfThree(a, div*2, div*1, div*4, cmp)
	y := medianOfThree(a, div*8, div*6, div*10, cmp)
	z := medianOfThree(a, div*14, div*12, div*15, cmp)

	return medianOfThree(a, x, y, z, cmp)
}

// binaryMedian descends two contiguous, equal-length, independently
// sorted sample runs starting at ptaIdx and ptbIdx, halving the stride
// each step and keeping whichever pointer's next element is smaller,
// then returns the index of the larger of the two final candidates.
// This is crum_binary_median.
func binaryMedian[T any](a []T, ptaIdx, ptbIdx, length int, cmp CompareFunc[T]) int {
	for {
		length /= 2
		if length == 0 {
			break
		}
		if cmp(a[ptaIdx+length], a[ptbIdx+length]) <= 0 {
			ptaIdx += length
		} else {
			ptbIdx += length
		}
	}
	if cmp(a[ptaIdx], a[ptbIdx]) > 0 {
		return ptaIdx
	}
	return ptbIdx
}

// sampleOffset replaces the source's ASLR-seeded stack-address offset
// with a deterministic multiplicative hash of the input size and
// stride, so the cube-root sample is perturbed without depending on
// memory layout.
func sampleOffset(nmemb, div int) int {
	if div <= 0 {
		return 0
	}
	h := uint64(nmemb)*2654435761 + uint64(div)*40503
	return int(h % uint64(div))
}

// medianOfCubeRoot gathers cbrt(n) (rounded up to a power of two,
// capped at len(swap)) samples from a[:nmemb] into a[0:cbrt), sorts the
// two halves of that sample region, and returns the index of the
// binary median of the halves together with a "generic" flag that's
// true when the sample is dominated by few distinct values (the two
// sorted halves are "flat" relative to the low sample).
func medianOfCubeRoot[T any](a []T, swap []T, nmemb int, cmp CompareFunc[T]) (pivIdx int, generic bool) {
	cbrt := 32
	for nmemb > cbrt*cbrt*cbrt && cbrt < len(swap) {
		cbrt *= 2
	}

	div := nmemb / cbrt
	offset := sampleOffset(nmemb, div)

	ptaIdx := nmemb - 1 - offset
	pivBase := cbrt

	for cnt := cbrt; cnt > 0; cnt-- {
		pivBase--
		a[pivBase], a[ptaIdx] = a[ptaIdx], a[pivBase]
		ptaIdx -= div
	}

	cbrt /= 2

	smallSort(a[0:cbrt], swap, cbrt, cmp)
	smallSort(a[cbrt:cbrt*2], swap, cbrt, cmp)

	generic = cmp(a[cbrt*2-1], a[0]) <= 0 && cmp(a[cbrt-1], a[0]) <= 0

	pivIdx = binaryMedian(a, 0, cbrt, cbrt, cmp)
	return pivIdx, generic
}
