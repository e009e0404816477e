package driving

import (
	"context"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

// IngestService turns candidate documents into persisted resumes.
type IngestService interface {
	// IngestDocument runs the full pipeline: text extraction, AI
	// extraction, normalisation, and persistence. Extraction collaborator
	// failures propagate; normalisation trouble degrades to a
	// NEEDS_REVIEW resume instead of aborting.
	IngestDocument(ctx context.Context, content []byte, mimeType string) (*domain.Resume, error)

	// CreateResume assigns identity, builds the canonical professional
	// record, and persists the resume. confidence is expected in [0, 0.99];
	// requestID is the extraction correlation id.
	CreateResume(ctx context.Context, cv domain.ExtractedCV, sourceText string, confidence float64, requestID string) (*domain.Resume, error)
}
