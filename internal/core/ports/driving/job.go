package driving

import (
	"context"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

// JobService manages job postings.
type JobService interface {
	// Create validates the input, assigns an id and timestamp, and
	// persists the job. Invalid input yields domain.ErrInvalidInput.
	Create(ctx context.Context, input domain.JobInput) (*domain.Job, error)

	// List returns all jobs in insertion order.
	List(ctx context.Context) ([]domain.Job, error)

	// Get returns the job with the given id, or domain.ErrNotFound.
	Get(ctx context.Context, jobID string) (*domain.Job, error)
}
