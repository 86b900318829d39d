// Package reports defines the asynchronous insight-report job model: a batch
// of raw transactions goes in, a full analytics report comes out. The
// Publisher/Consumer/Store split keeps the queue implementation swappable;
// the in-memory implementation under reports/inmemory is the only one today.
package reports

import (
	"context"
	"time"

	"github.com/finix-labs/insights/internal/domain"
	"github.com/finix-labs/insights/internal/insights"
)

// JobStatus represents the current status of a report job.
type JobStatus string

const (
	// StatusPending indicates the job is waiting to be processed.
	StatusPending JobStatus = "pending"
	// StatusRunning indicates the job is currently being processed.
	StatusRunning JobStatus = "running"
	// StatusCompleted indicates the job completed and Result is populated.
	StatusCompleted JobStatus = "completed"
	// StatusFailed indicates the job failed after exhausting retries.
	StatusFailed JobStatus = "failed"
	// StatusRetrying indicates the job failed and will run again.
	StatusRetrying JobStatus = "retrying"
)

// ReportJob is one queued analytics run over an uploaded transaction batch.
type ReportJob struct {
	// JobID is the unique identifier for this job.
	JobID string `json:"job_id"`

	// Filename is the name of the uploaded file the batch came from.
	Filename string `json:"filename,omitempty"`

	// HorizonDays is the forecast horizon to use; 0 means the default.
	HorizonDays int `json:"horizon_days,omitempty"`

	// Transactions is the raw (uncategorized) input batch.
	Transactions []domain.Transaction `json:"-"`

	// Status is the current status of the job.
	Status JobStatus `json:"status"`

	// Result holds the computed report once the job completes.
	Result *insights.Report `json:"result,omitempty"`

	// CreatedAt is when the job was enqueued.
	CreatedAt time.Time `json:"created_at"`

	// StartedAt is when the job started processing.
	StartedAt *time.Time `json:"started_at,omitempty"`

	// CompletedAt is when the job completed (success or failure).
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Error contains error details if the job failed.
	Error string `json:"error,omitempty"`

	// RetryCount is the number of times this job has been retried.
	RetryCount int `json:"retry_count"`

	// MaxRetries is the maximum number of retries allowed.
	MaxRetries int `json:"max_retries"`
}

// Handler processes one report job. Implementations populate job.Result and
// return an error when the job should be retried.
type Handler func(ctx context.Context, job *ReportJob) error

// Publisher enqueues report jobs.
type Publisher interface {
	// PublishReport enqueues a job for asynchronous processing.
	PublishReport(ctx context.Context, job *ReportJob) error

	// Close closes the publisher and releases resources.
	Close() error
}

// Consumer drains report jobs from a queue.
type Consumer interface {
	// Start begins consuming jobs, invoking handler for each one.
	Start(ctx context.Context, handler Handler) error

	// Stop stops consuming and waits for in-flight jobs to complete.
	Stop(ctx context.Context) error
}

// Store tracks job state so callers can poll for results.
type Store interface {
	// SaveJob saves or updates a job's state.
	SaveJob(ctx context.Context, job *ReportJob) error

	// GetJob retrieves a job by ID.
	GetJob(ctx context.Context, jobID string) (*ReportJob, error)

	// ListJobs retrieves jobs with optional filtering.
	ListJobs(ctx context.Context, filter Filter) ([]*ReportJob, error)
}

// Filter defines filtering criteria for listing jobs.
type Filter struct {
	// Status filters jobs by status.
	Status JobStatus

	// Limit limits the number of results.
	Limit int

	// Offset for pagination.
	Offset int
}
