package driving

import (
	"context"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

// MatchService ranks stored resumes against a job posting.
type MatchService interface {
	// Match scores every stored resume against the job, drops zero
	// scores, and returns the rest sorted by descending score. Ties keep
	// store insertion order.
	Match(ctx context.Context, job *domain.Job) ([]domain.MatchResult, error)
}
