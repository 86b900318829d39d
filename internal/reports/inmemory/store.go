package inmemory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/finix-labs/insights/internal/reports"
)

// Store is an in-memory implementation of reports.Store. It is safe for
// concurrent use; data is lost on restart, which matches the system's
// no-persistence contract.
type Store struct {
	mu   sync.RWMutex
	jobs map[string]*reports.ReportJob
}

// NewStore creates a new in-memory report job store.
func NewStore() *Store {
	return &Store{
		jobs: make(map[string]*reports.ReportJob),
	}
}

// SaveJob saves or updates a job in memory.
func (s *Store) SaveJob(ctx context.Context, job *reports.ReportJob) error {
	if job.JobID == "" {
		return fmt.Errorf("job ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy so callers cannot mutate tracked state.
	jobCopy := *job
	s.jobs[job.JobID] = &jobCopy

	return nil
}

// GetJob retrieves a job by ID.
func (s *Store) GetJob(ctx context.Context, jobID string) (*reports.ReportJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, exists := s.jobs[jobID]
	if !exists {
		return nil, fmt.Errorf("report job not found: %s", jobID)
	}

	jobCopy := *job
	return &jobCopy, nil
}

// ListJobs retrieves jobs matching the filter, newest first.
func (s *Store) ListJobs(ctx context.Context, filter reports.Filter) ([]*reports.ReportJob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*reports.ReportJob
	for _, job := range s.jobs {
		if filter.Status != "" && job.Status != filter.Status {
			continue
		}
		jobCopy := *job
		result = append(result, &jobCopy)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return []*reports.ReportJob{}, nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(result) {
		result = result[:filter.Limit]
	}

	return result, nil
}

// Ensure Store implements the reports.Store interface.
var _ reports.Store = (*Store)(nil)
