package driving

import (
	"context"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

// ResumeService provides listing and deletion over stored resumes.
type ResumeService interface {
	// List returns one filtered, paginated page of resumes.
	// Ordering follows store insertion order.
	List(ctx context.Context, query domain.ResumeQuery) (*domain.ResumePage, error)

	// Delete hard-deletes a resume by id and reports whether it existed.
	Delete(ctx context.Context, resumeID string) (bool, error)
}
