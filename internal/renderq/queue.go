// Package renderq provides a single-worker FIFO queue through which every
// grid mutation flows. The browser this SDK models mutates its document from
// one event loop; funneling appends, removals and selection marks through one
// worker gives the same ordering guarantee without locks in the model layer.
//
// **Contract**: jobs run exactly once, in submission order, and are never
// retried. A job that fails is reported to the ErrorHandler and dropped.
package renderq

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

type queuedJob struct {
	ctx context.Context
	job Job
}

// Queue executes Jobs on a single worker goroutine in FIFO order.
type Queue struct {
	cfg  Config
	jobs chan queuedJob

	done   chan struct{} // closed in Stop()
	closed uint32        // 0 → running, 1 → closed

	wg sync.WaitGroup
}

// New constructs the queue and starts its worker.
func New(cfg Config) *Queue {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.EnqueueTimeout <= 0 {
		cfg.EnqueueTimeout = 100 * time.Millisecond
	}

	q := &Queue{
		cfg:  cfg,
		jobs: make(chan queuedJob, cfg.QueueSize),
		done: make(chan struct{}),
	}
	q.wg.Add(1)
	go q.runWorker()
	return q
}

// Submit enqueues job.
//
//   - Returns nil on success.
//   - Returns ErrQueueClosed if the queue is stopped.
//   - Returns a *QueueFullError (wrapping ErrQueueFull) if no space frees up
//     within EnqueueTimeout.
//   - Returns ctx.Err() if the caller-provided context is cancelled first.
func (q *Queue) Submit(ctx context.Context, job Job) error {
	// Fast check to avoid accepting work after Stop(). The flag may be set
	// before q.done is closed, so check both.
	if atomic.LoadUint32(&q.closed) == 1 {
		return ErrQueueClosed
	}
	select {
	case <-q.done:
		return ErrQueueClosed
	default:
	}

	timer := time.NewTimer(q.cfg.EnqueueTimeout)
	defer timer.Stop()

	select {
	case q.jobs <- queuedJob{ctx: ctx, job: job}:
		submissionsTotal.Inc()
		return nil

	case <-q.done: // Stop() may be called while waiting for space
		return ErrQueueClosed

	case <-ctx.Done():
		return ctx.Err()

	case <-timer.C:
		queueFullTotal.Inc()
		return &QueueFullError{Length: len(q.jobs), Capacity: cap(q.jobs)}
	}
}

// Barrier enqueues a no-op job and waits until it runs, ensuring all
// previously submitted jobs have completed. Tests use it to settle the grid
// before asserting on it.
func (q *Queue) Barrier(ctx context.Context) error {
	done := make(chan struct{})
	j := JobFunc(func(context.Context) error {
		close(done)
		return nil
	})
	if err := q.Submit(ctx, j); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Stop signals the worker to finish draining its queue, waits for it to
// terminate, and then returns. It is idempotent and safe for concurrent use.
func (q *Queue) Stop() {
	if !atomic.CompareAndSwapUint32(&q.closed, 0, 1) {
		return // already closed
	}
	close(q.done)
	q.wg.Wait()
}

// Close lets Queue satisfy io.Closer.
func (q *Queue) Close() error {
	q.Stop()
	return nil
}

// ------------------------- internals -------------------------

func (q *Queue) runWorker() {
	defer q.wg.Done()

	for {
		select {
		case qj := <-q.jobs:
			q.runOne(qj)
			queueDepth.Set(float64(len(q.jobs)))

		case <-q.done:
			// Drain remaining jobs, preserving FIFO, then exit.
			drained := 0
			for {
				select {
				case qj := <-q.jobs:
					q.runOne(qj)
					drained++
				default:
					if drained > 0 {
						log.Debug().Int("jobs", drained).Msg("renderq: drained on stop")
					}
					queueDepth.Set(0)
					return
				}
			}
		}
	}
}

func (q *Queue) runOne(qj queuedJob) {
	if qj.job == nil {
		return
	}
	// Honour caller context so a cancelled job doesn't stall the worker.
	select {
	case <-qj.ctx.Done():
		q.safeHandleError(qj.ctx.Err())
		return
	default:
	}

	defer func() {
		if r := recover(); r != nil {
			jobFailuresTotal.Inc()
			log.Error().Interface("panic", r).Msg("renderq: job panic")
		}
	}()

	start := time.Now()
	err := qj.job.Run(qj.ctx)
	runDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		jobFailuresTotal.Inc()
		q.safeHandleError(err)
	}
}

func (q *Queue) safeHandleError(err error) {
	if err == nil || q.cfg.ErrorHandler == nil {
		return
	}
	func() {
		// Guard against panics in the user-supplied handler.
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Msg("renderq: error handler panic")
			}
		}()
		q.cfg.ErrorHandler(err)
	}()
}
