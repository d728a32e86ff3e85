package crumsort

// partitionLeaf (CRUM_OUT) is the subrange size below which
// fulcrumPartition stops recursing and hands the range to smallSort.
const partitionLeaf = 96

// defaultPartition is the branchless one-pass "fulcrum" partition.
// Precondition: n >= 64. It decouples the read and
// write fronts using a fixed 64-element auxiliary region: the first
// and last 32 elements of a[:n] are copied into swap before the pass
// touches them, then drained through the same kernel at the end.
//
// Two converging cursors, pta (forward) and tpa (backward), feed a
// single write front at index m (elements <= piv, growing from the
// left) and ptr+m (elements > piv, growing backward from the right as
// ptr falls while m climbs); the kernel writes every element to both
// fronts and only advances m when the element belongs on the left, so
// exactly one write per front is "real" and the other is overwritten
// later. Returns m, the count of elements <= piv.
func defaultPartition[T any](a []T, swap []T, piv T, n int, cmp CompareFunc[T]) int {
	copy(swap[0:32], a[0:32])
	copy(swap[32:64], a[n-32:n])

	ptr := n - 1
	pta := 32
	tpa := n - 33
	m := 0

	cnt := n/16 - 4
	for {
		if pta-m <= 48 {
			if cnt == 0 {
				break
			}
			cnt--
			for i := 0; i < 16; i++ {
				e := a[pta]
				v := 0
				if cmp(e, piv) <= 0 {
					v = 1
				}
				a[m] = e
				a[ptr+m] = e
				pta++
				m += v
				ptr--
			}
		}
		if pta-m >= 16 {
			if cnt == 0 {
				break
			}
			cnt--
			for i := 0; i < 16; i++ {
				e := a[tpa]
				v := 0
				if cmp(e, piv) <= 0 {
					v = 1
				}
				a[m] = e
				a[ptr+m] = e
				tpa--
				m += v
				ptr--
			}
		}
	}

	if pta-m <= 48 {
		for rem := n % 16; rem > 0; rem-- {
			e := a[pta]
			v := 0
			if cmp(e, piv) <= 0 {
				v = 1
			}
			a[m] = e
			a[ptr+m] = e
			pta++
			m += v
			ptr--
		}
	} else {
		for rem := n % 16; rem > 0; rem-- {
			e := a[tpa]
			v := 0
			if cmp(e, piv) <= 0 {
				v = 1
			}
			a[m] = e
			a[ptr+m] = e
			tpa--
			m += v
			ptr--
		}
	}

	si := 0
	for cnt := 16; cnt > 0; cnt-- {
		for k := 0; k < 4; k++ {
			e := swap[si]
			v := 0
			if cmp(e, piv) <= 0 {
				v = 1
			}
			a[m] = e
			a[ptr+m] = e
			si++
			m += v
			ptr--
		}
	}
	return m
}

// reversePartition is defaultPartition with the predicate flipped to
// cmp(piv, e) > 0, so it keeps strictly-< elements on the left and
// sends elements equal to piv right. It's used when the parent call's
// pivot is known to be >= every element here, to
// isolate a cluster of duplicates equal to the parent's pivot instead
// of re-partitioning them pointlessly.
func reversePartition[T any](a []T, swap []T, piv T, n int, cmp CompareFunc[T]) int {
	copy(swap[0:32], a[0:32])
	copy(swap[32:64], a[n-32:n])

	ptr := n - 1
	pta := 32
	tpa := n - 33
	m := 0

	cnt := n/16 - 4
	for {
		if pta-m <= 48 {
			if cnt == 0 {
				break
			}
			cnt--
			for i := 0; i < 16; i++ {
				e := a[pta]
				v := 0
				if cmp(piv, e) > 0 {
					v = 1
				}
				a[m] = e
				a[ptr+m] = e
				pta++
				m += v
				ptr--
			}
		}
		if pta-m >= 16 {
			if cnt == 0 {
				break
			}
			cnt--
			for i := 0; i < 16; i++ {
				e := a[tpa]
				v := 0
				if cmp(piv, e) > 0 {
					v = 1
				}
				a[m] = e
				a[ptr+m] = e
				tpa--
				m += v
				ptr--
			}
		}
	}

	if pta-m <= 48 {
		for rem := n % 16; rem > 0; rem-- {
			e := a[pta]
			v := 0
			if cmp(piv, e) > 0 {
				v = 1
			}
			a[m] = e
			a[ptr+m] = e
			pta++
			m += v
			ptr--
		}
	} else {
		for rem := n % 16; rem > 0; rem-- {
			e := a[tpa]
			v := 0
			if cmp(piv, e) > 0 {
				v = 1
			}
			a[m] = e
			a[ptr+m] = e
			tpa--
			m += v
			ptr--
		}
	}

	si := 0
	for cnt := 16; cnt > 0; cnt-- {
		for k := 0; k < 4; k++ {
			e := swap[si]
			v := 0
			if cmp(piv, e) > 0 {
				v = 1
			}
			a[m] = e
			a[ptr+m] = e
			si++
			m += v
			ptr--
		}
	}
	return m
}

// maxPartitionDepth is the recursion-depth safety cap: fall back to
// smallSort once it's exceeded rather than recurse further. A
// well-behaved median-of-cube-root recursion stays within a small
// constant multiple of log2(n); 96 covers n up to 2^96 with room to
// spare, so tripping it only ever happens against an adversarial or
// non-order comparator.
const maxPartitionDepth = 96

// fulcrumPartition partitions a[:nmemb] around a pivot chosen by
// median-of-nine (n <= 2048) or median-of-cube-root (n > 2048),
// recurses on the right (> pivot) side and iterates on the left side,
// bounding recursion depth to O(log n) on well-behaved input. max,
// when non-nil, is the pivot of an enclosing partition step and is >=
// every element here: if the new pivot is not below it, a reverse
// partition isolates the duplicate cluster instead of pivoting on it
// again, to keep many-duplicates input from degrading recursion.
func fulcrumPartition[T any](a []T, swap []T, max *T, nmemb int, depth int, cmp CompareFunc[T]) {
	if depth > maxPartitionDepth {
		logRecursionCapTripped(nmemb)
		smallSort(a[:nmemb], swap, nmemb, cmp)
		return
	}
	// analyze can hand over a quadrant as small as 64 elements, which
	// would leave defaultPartition below its n >= 64 precondition once
	// the pivot is set aside.
	if nmemb <= partitionLeaf {
		smallSort(a[:nmemb], swap, nmemb, cmp)
		return
	}
	for {
		var pivIdx int
		var generic bool
		if nmemb <= 2048 {
			pivIdx = medianOfNine(a[:nmemb], nmemb, cmp)
		} else {
			pivIdx, generic = medianOfCubeRoot(a[:nmemb], swap, nmemb, cmp)
			if generic {
				break
			}
		}
		piv := a[pivIdx]

		if max != nil && cmp(*max, piv) <= 0 {
			aSize := reversePartition(a[:nmemb], swap, piv, nmemb, cmp)
			sSize := nmemb - aSize
			nmemb = aSize
			if sSize <= aSize/32 || aSize <= partitionLeaf {
				break
			}
			max = nil
			continue
		}

		a[pivIdx] = a[nmemb-1]
		nmemb--
		aSize := defaultPartition(a[:nmemb], swap, piv, nmemb, cmp)
		sSize := nmemb - aSize

		a[nmemb] = a[aSize]
		a[aSize] = piv

		if aSize <= sSize/32 || sSize <= partitionLeaf {
			smallSort(a[aSize+1:aSize+1+sSize], swap, sSize, cmp)
		} else {
			fulcrumPartition(a[aSize+1:aSize+1+sSize], swap, max, sSize, depth+1, cmp)
		}
		nmemb = aSize

		if sSize <= aSize/32 || aSize <= partitionLeaf {
			if aSize <= partitionLeaf {
				break
			}
			aSize2 := reversePartition(a[:nmemb], swap, piv, nmemb, cmp)
			sSize2 := nmemb - aSize2
			nmemb = aSize2
			if sSize2 <= aSize2/32 || aSize2 <= partitionLeaf {
				break
			}
			max = nil
			continue
		}
		pivCopy := piv
		max = &pivCopy
	}
	smallSort(a[:nmemb], swap, nmemb, cmp)
}
