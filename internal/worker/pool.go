package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/osse101/ShardHarvest_Go/internal/logger"
)

// Job represents a task to be executed by a worker
type Job interface {
	Process(ctx context.Context) error
}

// JobFunc adapts a function to the Job interface
type JobFunc func(ctx context.Context) error

// Process calls f
func (f JobFunc) Process(ctx context.Context) error {
	return f(ctx)
}

// Pool runs jobs on a fixed number of goroutines
type Pool struct {
	workers  int
	jobQueue chan Job
	wg       sync.WaitGroup
	stopOnce sync.Once

	processed atomic.Int64
	failed    atomic.Int64
}

// NewPool creates a new worker pool. Workers below one are raised to one.
func NewPool(workers int, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers:  workers,
		jobQueue: make(chan Job, queueSize),
	}
}

// Start starts the workers. Every queued job runs with ctx and is expected
// to honour its cancellation.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()
	log := logger.FromContext(ctx)

	for job := range p.jobQueue {
		p.processed.Add(1)
		if err := job.Process(ctx); err != nil {
			// Log error but don't crash worker
			p.failed.Add(1)
			log.Debug(LogMsgWorkerJobFailed, "worker", id, "error", err)
		}
	}
}

// Enqueue adds a job to the queue, blocking while it is full. It must not be
// called after Stop.
func (p *Pool) Enqueue(job Job) {
	p.jobQueue <- job
}

// Stop closes the queue and waits for the workers to drain it
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.jobQueue)
	})
	p.wg.Wait()
}

// Processed returns how many jobs have run
func (p *Pool) Processed() int64 {
	return p.processed.Load()
}

// Failed returns how many jobs returned an error
func (p *Pool) Failed() int64 {
	return p.failed.Load()
}
