package inmemory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finix-labs/insights/internal/reports"
)

const defaultWorkerCount = 4

// Queue is an in-memory report job publisher and consumer built on a buffered
// channel. It is safe for concurrent use and suitable for a single-instance
// deployment, which is all this system runs.
type Queue struct {
	jobChan   chan *reports.ReportJob
	closeChan chan struct{}
	wg        sync.WaitGroup
	mu        sync.RWMutex
	store     reports.Store
	closed    bool
}

// NewQueue creates an in-memory queue. bufferSize determines how many jobs
// can wait before PublishReport blocks.
func NewQueue(bufferSize int, store reports.Store) *Queue {
	return &Queue{
		jobChan:   make(chan *reports.ReportJob, bufferSize),
		closeChan: make(chan struct{}),
		store:     store,
	}
}

// PublishReport enqueues a report job for asynchronous processing, filling in
// defaults for ID, status, and retry budget.
func (q *Queue) PublishReport(ctx context.Context, job *reports.ReportJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return fmt.Errorf("queue is closed")
	}

	if job.JobID == "" {
		job.JobID = uuid.NewString()
	}
	if job.Status == "" {
		job.Status = reports.StatusPending
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	if job.MaxRetries == 0 {
		job.MaxRetries = 3
	}

	if q.store != nil {
		if err := q.store.SaveJob(ctx, job); err != nil {
			return fmt.Errorf("failed to save job: %w", err)
		}
	}

	select {
	case q.jobChan <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-q.closeChan:
		return fmt.Errorf("queue is closed")
	}
}

// Start launches the worker pool. Each worker invokes handler per job.
func (q *Queue) Start(ctx context.Context, handler reports.Handler) error {
	q.mu.RLock()
	if q.closed {
		q.mu.RUnlock()
		return fmt.Errorf("queue is closed")
	}
	q.mu.RUnlock()

	for i := 0; i < defaultWorkerCount; i++ {
		q.wg.Add(1)
		go q.worker(ctx, handler)
	}

	return nil
}

func (q *Queue) worker(ctx context.Context, handler reports.Handler) {
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-q.closeChan:
			return
		case job := <-q.jobChan:
			if job == nil {
				return
			}
			q.processJob(ctx, job, handler)
		}
	}
}

// processJob executes a single job with retry and linear backoff.
func (q *Queue) processJob(ctx context.Context, job *reports.ReportJob, handler reports.Handler) {
	job.Status = reports.StatusRunning
	now := time.Now()
	job.StartedAt = &now

	if q.store != nil {
		_ = q.store.SaveJob(ctx, job)
	}

	err := handler(ctx, job)

	completedAt := time.Now()
	job.CompletedAt = &completedAt

	if err != nil {
		job.Error = err.Error()

		if job.RetryCount < job.MaxRetries {
			job.RetryCount++
			job.Status = reports.StatusRetrying

			backoff := time.Duration(job.RetryCount) * time.Second
			time.AfterFunc(backoff, func() {
				job.Status = reports.StatusPending
				job.StartedAt = nil
				job.CompletedAt = nil
				_ = q.PublishReport(ctx, job)
			})
		} else {
			job.Status = reports.StatusFailed
		}
	} else {
		job.Status = reports.StatusCompleted
		job.Error = ""
	}

	if q.store != nil {
		_ = q.store.SaveJob(ctx, job)
	}
}

// Stop stops the queue and waits for in-flight jobs to complete.
func (q *Queue) Stop(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.closeChan)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close implements the Publisher interface.
func (q *Queue) Close() error {
	return q.Stop(context.Background())
}

// Ensure Queue implements both Publisher and Consumer interfaces.
var _ reports.Publisher = (*Queue)(nil)
var _ reports.Consumer = (*Queue)(nil)
