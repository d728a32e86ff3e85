// crumsort-bench generates a deterministic dataset and times crumsort
// against it, reporting elapsed time and verifying the result with a
// fingerprint check.
//
// Usage: crumsort-bench -shape=random -n=1000000 -seed=1
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/grailbio/crumsort"
	"github.com/grailbio/crumsort/internal/fingerprint"
	"github.com/grailbio/crumsort/internal/genfuzz"
)

var (
	shapeFlag    = flag.String("shape", "random", "dataset shape: sorted, reversed, random, organpipe, fewdistinct")
	nFlag        = flag.Int("n", 1_000_000, "number of elements to sort")
	seedFlag     = flag.Uint64("seed", 1, "seed for random/fewdistinct shapes")
	distinctFlag = flag.Int("distinct", 8, "number of distinct values for the fewdistinct shape")
)

func generate(shape string, n int, seed uint64, distinct int) ([]int, error) {
	switch shape {
	case "sorted":
		return genfuzz.Sorted(n), nil
	case "reversed":
		return genfuzz.Reversed(n), nil
	case "random":
		return genfuzz.Random(seed, n), nil
	case "organpipe":
		return genfuzz.OrganPipe(n), nil
	case "fewdistinct":
		return genfuzz.FewDistinct(seed, n, distinct), nil
	default:
		return nil, errors.Errorf("unknown shape %q", shape)
	}
}

func intBytes(v int) []byte {
	var b [8]byte
	u := uint64(v)
	for i := 0; i < 8; i++ {
		b[i] = byte(u >> (8 * i))
	}
	return b[:]
}

func run() error {
	data, err := generate(*shapeFlag, *nFlag, *seedFlag, *distinctFlag)
	if err != nil {
		return errors.Wrap(err, "generate dataset")
	}
	before := fingerprint.Of(data, intBytes)

	var comparisons int64
	cmp := func(a, b int) int {
		comparisons++
		return a - b
	}
	start := time.Now()
	crumsort.Sort(data, cmp)
	elapsed := time.Since(start)

	after := fingerprint.Of(data, intBytes)
	if before != after {
		return errors.Errorf("fingerprint mismatch: sort did not preserve the multiset (before=%x after=%x)", before, after)
	}
	for i := 1; i < len(data); i++ {
		if data[i-1] > data[i] {
			return errors.Errorf("output not sorted at index %d: %d > %d", i, data[i-1], data[i])
		}
	}

	fmt.Printf("shape=%s n=%d elapsed=%s comparisons=%d\n", *shapeFlag, *nFlag, elapsed, comparisons)
	return nil
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	flag.Parse()
	if err := run(); err != nil {
		log.Panicf("crumsort-bench: %v", err)
	}
}
