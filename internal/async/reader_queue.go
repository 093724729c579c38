package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/teerapat-ng/docbox/internal/pipeline"
)

// ReaderQueue fans jobs out to a fixed pool of workers, each running the
// read-decode-place pipeline for one file at a time. Files are
// independent: a failed job never blocks its siblings, and results may
// land in any order.
type ReaderQueue struct {
	proc    *pipeline.Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ReaderQueue)

func WithWorkers(n int) Option {
	return func(q *ReaderQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *ReaderQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *ReaderQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewReaderQueue(proc *pipeline.Processor, logger *slog.Logger, opts ...Option) *ReaderQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ReaderQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 2 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ReaderQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("reader worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.proc.ProcessDocument(ctx, job.DocumentID, job.ExtractionID, job.Path)
					cancel()

					if err != nil {
						q.logger.Error("document processing failed",
							"worker_id", workerID, "document_id", job.DocumentID, "error", err)
					} else {
						q.logger.Info("document processed",
							"worker_id", workerID, "document_id", job.DocumentID)
					}
				}

				q.logger.Info("reader worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ReaderQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "document_id", job.DocumentID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for reading", "document_id", job.DocumentID)
	default:
		q.logger.Warn("queue full, applying backpressure", "document_id", job.DocumentID)
		q.ch <- job
	}
	return nil
}

func (q *ReaderQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()
	select {
	case <-done:
	case <-ctx.Done():
		q.logger.Warn("shutdown deadline reached before workers drained")
	}
}
