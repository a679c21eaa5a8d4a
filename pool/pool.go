// ABOUTME: Bounded worker pool for running independent loading tasks in parallel
// ABOUTME: Provides submit-and-wait with first-error reporting on top of errgroup

package pool

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs submitted tasks on at most workers goroutines at a time
type WorkerPool struct {
	workers int
	group   errgroup.Group
}

// NewWorkerPool creates a pool of workers goroutines; workers <= 0 uses one per CPU
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p := &WorkerPool{workers: workers}
	p.group.SetLimit(workers)

	return p
}

// Workers returns the maximum number of concurrent tasks
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Submit adds a task to the pool
// Blocks while all workers are busy
func (p *WorkerPool) Submit(task func() error) {
	p.group.Go(task)
}

// Wait blocks until all submitted tasks have completed and returns the first task error
func (p *WorkerPool) Wait() error {
	return p.group.Wait()
}
