package renderer

import (
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/df07/go-pathtracer/pkg/core"
)

// workerSeedStride spaces the per-worker random seeds apart
const workerSeedStride = 7919

// DefaultWorkers returns the number of logical CPUs, falling back to the Go
// runtime's count when the system cannot be queried
func DefaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// CPUModel returns the name of the first CPU, or "" if it is unknown
func CPUModel() string {
	info, err := cpu.Info()
	if err != nil || len(info) == 0 {
		return ""
	}
	return info[0].ModelName
}

// WorkerPool is a fixed set of workers, each owning the WorkerContext it
// keeps for the whole render. Workers are goroutines spawned per job and
// joined before Run returns.
type WorkerPool struct {
	contexts []*core.WorkerContext
}

// NewWorkerPool creates numWorkers contexts with seeds seed + id*7919.
// A non-positive count uses DefaultWorkers.
func NewWorkerPool(numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers()
	}
	wp := &WorkerPool{contexts: make([]*core.WorkerContext, numWorkers)}
	for id := range wp.contexts {
		wp.contexts[id] = core.NewWorkerContext(id, seed+int64(id)*workerSeedStride)
	}
	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.contexts)
}

// Run resets every ray counter, runs job once per worker concurrently and
// waits for all of them. It returns the rays traced across all workers,
// which is only safe to sum once every worker has finished.
func (wp *WorkerPool) Run(job func(ctx *core.WorkerContext)) uint64 {
	for _, ctx := range wp.contexts {
		ctx.ResetRayCount()
	}

	var wg sync.WaitGroup
	for _, ctx := range wp.contexts {
		wg.Add(1)
		go func(ctx *core.WorkerContext) {
			defer wg.Done()
			job(ctx)
		}(ctx)
	}
	wg.Wait()

	var rays uint64
	for _, ctx := range wp.contexts {
		rays += ctx.RayCount()
	}
	return rays
}
