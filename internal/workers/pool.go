// Package workers provides a bounded parallel runner used by the
// evaluation pass.
package workers

import (
	"runtime"
	"sync"
)

// Parallel runs fn for every index in [0, n) across at most limit
// goroutines and waits for all of them. A limit below 1 defaults to
// GOMAXPROCS. Callers write results by index, so output order does
// not depend on scheduling.
func Parallel(limit, n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}
	if limit > n {
		limit = n
	}

	indices := make(chan int)
	var wg sync.WaitGroup
	wg.Add(limit)
	for w := 0; w < limit; w++ {
		go func() {
			defer wg.Done()
			for i := range indices {
				fn(i)
			}
		}()
	}

	for i := 0; i < n; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()
}
