// Package crumsort implements crumsort, an adaptive, in-place,
// comparison-based sort over a caller-supplied total order. It is not
// stable: callers that need to preserve the relative order of equal
// keys should fold a secondary tie-breaker into the comparator.
//
// The sort is adaptive: inputs that are already (reverse-)sorted, or
// close to it, are detected by a quadrant scan and repaired with a
// handful of reversals and merges rather than a full partition; inputs
// dominated by a small number of distinct keys are detected during
// pivot selection and handed to a small-array sort, and a pivot equal
// to an enclosing pivot triggers a reverse partition that sets the
// duplicates aside, so recursion does not degrade. Random input falls
// through to a branchless single-pivot partition ("fulcrum") with a
// fixed 64-element auxiliary region, recursing on the right side,
// looping on the left side, and handing small sides to a small-array
// sort.
//
// Working memory is bounded: Sort reserves a fixed-size scratch array
// on the stack (512 elements, see DefaultScratchSize) and never
// allocates on the heap for its own bookkeeping; SortSwap lets the
// caller supply and reuse that scratch across calls.
package crumsort
