package driven

import (
	"context"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

// ResumeStore is a durable collection of resumes.
//
// The whole collection is the consistency unit: implementations must
// serialize mutations so that concurrent appends never lose updates.
type ResumeStore interface {
	// Append adds a resume to the collection.
	Append(ctx context.Context, resume *domain.Resume) error

	// List returns all resumes in insertion order.
	// An absent backing collection is an empty one, never an error.
	List(ctx context.Context) ([]domain.Resume, error)

	// Delete removes the resume with the given id and reports whether
	// anything was removed. A missing id is not an error.
	Delete(ctx context.Context, resumeID string) (bool, error)
}
