package game

import (
	"runtime"
	"sync"

	"github.com/bwcd-123/snowdrift/graph"
)

// sweepParallelThreshold is the minimum number of cost values to fan out
// across workers. Below this, dispatch overhead beats the win.
const sweepParallelThreshold = 4

// Sweep runs one convergence run per cost value in rList, each against the
// same initial configuration, and returns results in rList order. An empty
// rList yields an empty result set.
//
// Runs are independent and the initial configuration is read-only during a
// step, so runs execute on a bounded worker pool; each worker writes only
// its own result slot, which keeps output order deterministic.
func (d *Driver) Sweep(initial *graph.Configuration, rList []float64) []Result {
	results := make([]Result, len(rList))
	if len(rList) == 0 {
		return results
	}

	if len(rList) < sweepParallelThreshold {
		for i, r := range rList {
			results[i] = d.Run(initial, r)
		}
		return results
	}

	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(rList) {
		numWorkers = len(rList)
	}

	work := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = d.Run(initial, rList[i])
			}
		}()
	}

	for i := range rList {
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}
