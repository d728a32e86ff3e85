package crumsort

import (
	"github.com/grailbio/base/log"
)

// recoverAndLog returns a function to defer at the top of a public
// entry point. If the comparator (or anything beneath it) panics, the
// panic is logged with enough context to diagnose a misbehaving
// comparator before it's re-raised to the caller — nothing here
// retries or swallows the fault, it only adds a line of diagnostics on
// the way out.
func recoverAndLog(entryPoint string) func() {
	return func() {
		if r := recover(); r != nil {
			log.Error.Printf("%s: comparator or partition fault: %v", entryPoint, r)
			panic(r)
		}
	}
}

// logRecursionCapTripped reports that fulcrumPartition hit
// maxPartitionDepth and fell back to smallSort for the remainder of
// the range. This only fires against an adversarial or non-transitive
// comparator; well-behaved input never approaches it.
func logRecursionCapTripped(nmemb int) {
	log.Error.Printf("crumsort: fulcrum partition recursion cap (%d) exceeded at %d elements; "+
		"falling back to smallsort, check the comparator for a non-transitive order", maxPartitionDepth, nmemb)
}
