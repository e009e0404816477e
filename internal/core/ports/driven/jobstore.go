package driven

import (
	"context"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

// JobStore is a durable collection of job postings.
//
// Mutations must be serialized per collection; see ResumeStore.
type JobStore interface {
	// Append adds a job to the collection.
	Append(ctx context.Context, job *domain.Job) error

	// List returns all jobs in insertion order.
	// An absent backing collection is an empty one, never an error.
	List(ctx context.Context) ([]domain.Job, error)
}
