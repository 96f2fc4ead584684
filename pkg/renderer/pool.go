package renderer

import (
	"runtime"
	"sync"
)

// WorkerPool fans independent rows of pixel work out over a fixed
// number of goroutines. Rows never overlap, so workers write to the
// shared buffer without coordination.
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a pool with the given worker count. Zero or
// negative means one worker per CPU.
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// Run invokes fn once for every row in [0, rows), spread across the
// pool's workers, and blocks until all rows are done.
func (wp *WorkerPool) Run(rows int, fn func(v int)) {
	tasks := make(chan int, rows)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for v := range tasks {
				fn(v)
			}
		}()
	}

	for v := 0; v < rows; v++ {
		tasks <- v
	}
	close(tasks)
	wg.Wait()
}
