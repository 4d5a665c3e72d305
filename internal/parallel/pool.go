// Package parallel provides the worker pool backing parallel convolution.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool distributes row-band convolution tasks across worker
// goroutines. Each worker has its own queue and steals from other workers
// when its queue runs dry, which rebalances load when some bands are slower
// than others (an expensive sampler near one edge, for example).
//
// Thread safety: WorkerPool is safe for concurrent use.
type WorkerPool struct {
	workers int

	// queues holds per-worker work queues. A worker primarily pulls from
	// its own queue but can steal from any other.
	queues []chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used. Workers start
// immediately and wait for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]

	for {
		select {
		case <-p.done:
			p.drain(own)
			return

		case task := <-own:
			if task != nil {
				task()
			}

		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing to steal anywhere, block on own queue.
			select {
			case <-p.done:
				p.drain(own)
				return
			case task := <-own:
				if task != nil {
					task()
				}
			}
		}
	}
}

// drain executes all remaining work in a queue.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case task := <-queue:
			if task != nil {
				task()
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.queues {
		if i == myID {
			continue
		}
		select {
		case task := <-p.queues[i]:
			return task
		default:
		}
	}
	return nil
}

// ExecuteAll distributes tasks round-robin across workers and blocks until
// every task has completed. If the pool is closed, this is a no-op.
func (p *WorkerPool) ExecuteAll(tasks []func()) {
	if len(tasks) == 0 || !p.running.Load() {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(tasks))

	for i, task := range tasks {
		run := task
		wrapped := func() {
			defer completion.Done()
			run()
		}

		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			// Pool is closing; the task will never run.
			completion.Done()
		}
	}

	completion.Wait()
}

// Close gracefully shuts down the pool: it stops accepting new work, lets
// queued work finish, and stops all workers. Safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}
