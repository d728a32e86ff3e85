package crumsort

// analyze is the top-level dispatcher (crum_analyze in the source):
// split a[:n] into four roughly-equal quadrants, measure how
// much of each is already ascending, repair any quadrant boundary that
// turns out to be fully descending by reversing it in place, then route
// each quadrant to either smallSort (already sorted enough) or a
// recursive fulcrumPartition, and finally stitch the up to four sorted
// quadrants back together with rotateMerge.
func analyze[T any](a []T, swap []T, n int, cmp CompareFunc[T]) {
	half1 := n / 2
	quad1 := half1 / 2
	quad2 := half1 - quad1
	half2 := n - half1
	quad3 := half2 / 2
	quad4 := half2 - quad3

	ia, ib, ic, id := 0, quad1, half1, half1+quad3

	var astreaks, bstreaks, cstreaks, dstreaks int
	var abalance, bbalance, cbalance, dbalance int

	cnt := n
	for cnt > 132 {
		var asum, bsum, csum, dsum int
		for loop := 0; loop < 32; loop++ {
			if cmp(a[ia], a[ia+1]) > 0 {
				asum++
			}
			ia++
			if cmp(a[ib], a[ib+1]) > 0 {
				bsum++
			}
			ib++
			if cmp(a[ic], a[ic+1]) > 0 {
				csum++
			}
			ic++
			if cmp(a[id], a[id+1]) > 0 {
				dsum++
			}
			id++
		}
		abalance += asum
		if asum == 0 || asum == 32 {
			astreaks++
		}
		bbalance += bsum
		if bsum == 0 || bsum == 32 {
			bstreaks++
		}
		cbalance += csum
		if csum == 0 || csum == 32 {
			cstreaks++
		}
		dbalance += dsum
		if dsum == 0 || dsum == 32 {
			dstreaks++
		}

		if cnt > 516 && asum+bsum+csum+dsum == 0 {
			abalance += 48
			ia += 96
			bbalance += 48
			ib += 96
			cbalance += 48
			ic += 96
			dbalance += 48
			id += 96
			cnt -= 384
		}
		cnt -= 128
	}

	for cnt > 7 {
		if cmp(a[ia], a[ia+1]) > 0 {
			abalance++
		}
		ia++
		if cmp(a[ib], a[ib+1]) > 0 {
			bbalance++
		}
		ib++
		if cmp(a[ic], a[ic+1]) > 0 {
			cbalance++
		}
		ic++
		if cmp(a[id], a[id+1]) > 0 {
			dbalance++
		}
		id++
		cnt -= 4
	}

	if quad1 < quad2 {
		if cmp(a[ib], a[ib+1]) > 0 {
			bbalance++
		}
		ib++
	}
	if quad1 < quad3 {
		if cmp(a[ic], a[ic+1]) > 0 {
			cbalance++
		}
		ic++
	}
	if quad1 < quad4 {
		if cmp(a[id], a[id+1]) > 0 {
			dbalance++
		}
		id++
	}

	if abalance+bbalance+cbalance+dbalance == 0 {
		if cmp(a[ia], a[ia+1]) <= 0 && cmp(a[ib], a[ib+1]) <= 0 && cmp(a[ic], a[ic+1]) <= 0 {
			return
		}
	}

	// A quadrant whose balance is exactly one short of its length is
	// fully descending: every one of its length-1 adjacent pairs is
	// descending. span1-3 detect runs of
	// such quadrants spanning a boundary, so one reversal can repair
	// several quadrants at once instead of one reversal per quadrant.
	aFull := quad1-abalance == 1
	bFull := quad2-bbalance == 1
	cFull := quad3-cbalance == 1
	dFull := quad4-dbalance == 1

	if aFull || bFull || cFull || dFull {
		span1 := aFull && bFull && cmp(a[ia], a[ia+1]) > 0
		span2 := bFull && cFull && cmp(a[ib], a[ib+1]) > 0
		span3 := cFull && dFull && cmp(a[ic], a[ic+1]) > 0

		code := 0
		if span1 {
			code |= 1
		}
		if span2 {
			code |= 2
		}
		if span3 {
			code |= 4
		}

		switch code {
		case 1:
			rangeReverse(a, 0, ib)
			abalance, bbalance = 0, 0
		case 2:
			rangeReverse(a, ia+1, ic)
			bbalance, cbalance = 0, 0
		case 3:
			rangeReverse(a, 0, ic)
			abalance, bbalance, cbalance = 0, 0, 0
		case 4:
			rangeReverse(a, ib+1, id)
			cbalance, dbalance = 0, 0
		case 5:
			rangeReverse(a, 0, ib)
			rangeReverse(a, ib+1, id)
			abalance, bbalance, cbalance, dbalance = 0, 0, 0, 0
		case 6:
			rangeReverse(a, ia+1, id)
			bbalance, cbalance, dbalance = 0, 0, 0
		case 7:
			rangeReverse(a, 0, id)
			return
		}

		if aFull && abalance != 0 {
			rangeReverse(a, 0, ia)
			abalance = 0
		}
		if bFull && bbalance != 0 {
			rangeReverse(a, ia+1, ib)
			bbalance = 0
		}
		if cFull && cbalance != 0 {
			rangeReverse(a, ib+1, ic)
			cbalance = 0
		}
		if dFull && dbalance != 0 {
			rangeReverse(a, ic+1, id)
			dbalance = 0
		}
	}

	// cmp is always an indirect call here (no inlined-comparator
	// build), so the threshold is n/512 throughout: a quadrant counts as
	// ordered (smallSort rather than fulcrumPartition) once more than
	// about 25% of its 32-element blocks are monotone, rather than 50%.
	streakThreshold := n / 512
	asum := astreaks > streakThreshold
	bsum := bstreaks > streakThreshold
	csum := cstreaks > streakThreshold
	dsum := dstreaks > streakThreshold

	perQuadrant := func(asum, bsum, csum, dsum bool) {
		if asum {
			if abalance != 0 {
				smallSort(a[0:quad1], swap, quad1, cmp)
			}
		} else {
			fulcrumPartition(a[0:quad1], swap, nil, quad1, 0, cmp)
		}
		if bsum {
			if bbalance != 0 {
				smallSort(a[ia+1:ia+1+quad2], swap, quad2, cmp)
			}
		} else {
			fulcrumPartition(a[ia+1:ia+1+quad2], swap, nil, quad2, 0, cmp)
		}
		if csum {
			if cbalance != 0 {
				smallSort(a[ib+1:ib+1+quad3], swap, quad3, cmp)
			}
		} else {
			fulcrumPartition(a[ib+1:ib+1+quad3], swap, nil, quad3, 0, cmp)
		}
		if dsum {
			if dbalance != 0 {
				smallSort(a[ic+1:ic+1+quad4], swap, quad4, cmp)
			}
		} else {
			fulcrumPartition(a[ic+1:ic+1+quad4], swap, nil, quad4, 0, cmp)
		}
	}

	// Above QuadCacheThreshold, always take the per-quadrant branch
	// using the streak verdicts already computed, rather than the
	// merge-whole-halves shortcuts
	// below — those shortcuts assume an unsorted half fits comfortably
	// in cache during fulcrumPartition's recursion, which stops holding
	// once quad1 alone exceeds it.
	if quad1 > QuadCacheThreshold {
		perQuadrant(asum, bsum, csum, dsum)
	} else {
		verdict := 0
		if asum {
			verdict |= 1
		}
		if bsum {
			verdict |= 2
		}
		if csum {
			verdict |= 4
		}
		if dsum {
			verdict |= 8
		}

		switch verdict {
		case 0:
			fulcrumPartition(a[0:n], swap, nil, n, 0, cmp)
			return
		case 1:
			if abalance != 0 {
				smallSort(a[0:quad1], swap, quad1, cmp)
			}
			fulcrumPartition(a[ia+1:ia+1+quad2+half2], swap, nil, quad2+half2, 0, cmp)
		case 2:
			fulcrumPartition(a[0:quad1], swap, nil, quad1, 0, cmp)
			if bbalance != 0 {
				smallSort(a[ia+1:ia+1+quad2], swap, quad2, cmp)
			}
			fulcrumPartition(a[ib+1:ib+1+half2], swap, nil, half2, 0, cmp)
		case 3:
			if abalance != 0 {
				smallSort(a[0:quad1], swap, quad1, cmp)
			}
			if bbalance != 0 {
				smallSort(a[ia+1:ia+1+quad2], swap, quad2, cmp)
			}
			fulcrumPartition(a[ib+1:ib+1+half2], swap, nil, half2, 0, cmp)
		case 4:
			fulcrumPartition(a[0:half1], swap, nil, half1, 0, cmp)
			if cbalance != 0 {
				smallSort(a[ib+1:ib+1+quad3], swap, quad3, cmp)
			}
			fulcrumPartition(a[ic+1:ic+1+quad4], swap, nil, quad4, 0, cmp)
		case 8:
			fulcrumPartition(a[0:half1+quad3], swap, nil, half1+quad3, 0, cmp)
			if dbalance != 0 {
				smallSort(a[ic+1:ic+1+quad4], swap, quad4, cmp)
			}
		case 9:
			if abalance != 0 {
				smallSort(a[0:quad1], swap, quad1, cmp)
			}
			fulcrumPartition(a[ia+1:ia+1+quad2+quad3], swap, nil, quad2+quad3, 0, cmp)
			if dbalance != 0 {
				smallSort(a[ic+1:ic+1+quad4], swap, quad4, cmp)
			}
		case 12:
			fulcrumPartition(a[0:half1], swap, nil, half1, 0, cmp)
			if cbalance != 0 {
				smallSort(a[ib+1:ib+1+quad3], swap, quad3, cmp)
			}
			if dbalance != 0 {
				smallSort(a[ic+1:ic+1+quad4], swap, quad4, cmp)
			}
		default: // 5, 6, 7, 10, 11, 13, 14, 15
			perQuadrant(asum, bsum, csum, dsum)
		}
	}

	if cmp(a[ia], a[ia+1]) <= 0 {
		if cmp(a[ic], a[ic+1]) <= 0 {
			if cmp(a[ib], a[ib+1]) <= 0 {
				return
			}
		} else {
			rotateMerge(a[half1:n], swap, quad3, quad4, cmp)
		}
	} else {
		rotateMerge(a[0:half1], swap, quad1, quad2, cmp)
		if cmp(a[ic], a[ic+1]) > 0 {
			rotateMerge(a[half1:n], swap, quad3, quad4, cmp)
		}
	}
	rotateMerge(a[0:n], swap, half1, half2, cmp)
}
