package compute

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/san-kum/mandelscope/internal/fractal"
)

// minRowsPerWorker keeps tiny grids on a single goroutine.
const minRowsPerWorker = 4

type CPUBackend struct {
	workers int
}

// NewCPUBackend returns a backend with the given worker count; workers <= 0
// means one per core.
func NewCPUBackend(workers int) *CPUBackend {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &CPUBackend{workers: workers}
}

func (c *CPUBackend) Name() string { return "cpu" }
func (c *CPUBackend) Workers() int { return c.workers }

// Fill partitions the rows into contiguous chunks. Each chunk owns its rows
// outright, so no cell is written by more than one goroutine.
func (c *CPUBackend) Fill(ctx context.Context, p fractal.Params, x, y []float32, n *fractal.Grid) error {
	var canceled atomic.Bool

	ParallelFor(c.workers, len(y), minRowsPerWorker, func(start, end int) {
		for j := start; j < end; j++ {
			if canceled.Load() {
				return
			}
			if ctx.Err() != nil {
				canceled.Store(true)
				return
			}
			row := n.Row(j)
			yj := y[j]
			for i, xi := range x {
				row[i] = int32(p.EscapeAt(xi, yj))
			}
		}
	})

	return ctx.Err()
}
