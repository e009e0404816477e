package file

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driven"
)

// Ensure JobStore implements the interface.
var _ driven.JobStore = (*JobStore)(nil)

// JobStore persists jobs as one JSON array in jobs.json. Jobs and
// resumes are independent collections with independent locks.
type JobStore struct {
	mu   sync.Mutex
	path string
}

// NewJobStore creates a job store under dataDir.
func NewJobStore(dataDir string) *JobStore {
	return &JobStore{path: filepath.Join(dataDir, jobsFile)}
}

// Append adds a job: read the whole collection, append, rewrite.
func (s *JobStore) Append(_ context.Context, job *domain.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs, err := readArray[domain.Job](s.path)
	if err != nil {
		return err
	}
	jobs = append(jobs, *job)
	return writeArray(s.path, jobs)
}

// List returns all jobs in insertion order.
func (s *JobStore) List(_ context.Context) ([]domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readArray[domain.Job](s.path)
}
