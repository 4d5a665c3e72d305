package convo

import (
	"runtime"

	"github.com/lucasbarrosxd/convo/internal/parallel"
)

// ApplyParallel is [Kernel.Apply] with the output rows distributed across a
// pool of worker goroutines. The result is identical to Apply: each output
// cell is computed once, by one worker, with the same arithmetic.
//
// src must be safe to invoke concurrently from multiple goroutines (pure or
// read-only). If workers is 0 or negative, GOMAXPROCS is used. Domains too
// small to be worth fanning out are convolved sequentially.
func (k *Kernel) ApplyParallel(src Sampler, width, height int, weight, fill float64, workers int) *Grid {
	out := NewGrid(width, height)

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || out.height < 2*minRowsPerTask {
		k.applyRows(src, out, 0, out.height, weight, fill)
		return out
	}

	// Several bands per worker so stealing can rebalance uneven progress.
	bandRows := out.height / (workers * bandsPerWorker)
	if bandRows < minRowsPerTask {
		bandRows = minRowsPerTask
	}

	work := make([]func(), 0, (out.height+bandRows-1)/bandRows)
	for y0 := 0; y0 < out.height; y0 += bandRows {
		y1 := y0 + bandRows
		if y1 > out.height {
			y1 = out.height
		}
		lo, hi := y0, y1
		work = append(work, func() {
			k.applyRows(src, out, lo, hi, weight, fill)
		})
	}

	Logger().Debug("convo: parallel apply",
		"width", width, "height", height,
		"workers", workers, "bands", len(work))

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()
	pool.ExecuteAll(work)

	return out
}

const (
	// minRowsPerTask keeps per-band scheduling overhead below the cost of
	// the rows themselves.
	minRowsPerTask = 8

	// bandsPerWorker trades scheduling overhead for steal granularity.
	bandsPerWorker = 4
)
