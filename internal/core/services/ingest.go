package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driven"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driving"
	"github.com/custodia-labs/cvmatch/internal/normalise"
)

// Ensure IngestService implements the interface.
var _ driving.IngestService = (*IngestService)(nil)

// excerptLimit is how much of the source text a resume keeps verbatim.
const excerptLimit = 2000

// IngestService runs the ingestion pipeline: document text extraction,
// AI extraction, normalisation, identity assignment, persistence.
type IngestService struct {
	texts     driven.TextExtractor
	extractor driven.CVExtractor
	resumes   driven.ResumeStore
	logger    *zap.Logger
}

// NewIngestService creates a new ingest service. The logger may be nil.
func NewIngestService(
	texts driven.TextExtractor,
	extractor driven.CVExtractor,
	resumes driven.ResumeStore,
	logger *zap.Logger,
) *IngestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IngestService{
		texts:     texts,
		extractor: extractor,
		resumes:   resumes,
		logger:    logger,
	}
}

// IngestDocument turns raw document bytes into a persisted resume.
// Collaborator failures propagate typed; an unusable extraction response
// still produces a (low-confidence) resume.
func (s *IngestService) IngestDocument(ctx context.Context, content []byte, mimeType string) (*domain.Resume, error) {
	if s.texts == nil {
		return nil, domain.ErrUnsupportedType
	}
	if s.extractor == nil {
		return nil, domain.ErrExtractorUnavailable
	}

	text, err := s.texts.ExtractText(ctx, content, mimeType)
	if err != nil {
		return nil, fmt.Errorf("extracting document text: %w", err)
	}

	s.logger.Debug("document text extracted",
		zap.String("mime_type", mimeType),
		zap.Int("text_length", len(text)),
	)

	result, err := s.extractor.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}

	confidence := normalise.Confidence(result.CV)

	return s.CreateResume(ctx, result.CV, text, confidence, result.RequestID)
}

// CreateResume builds the canonical record, assigns identifiers and the
// content hash, derives the status, and persists the resume. A resume is
// always produced; low confidence flags it NEEDS_REVIEW instead of
// aborting the upload.
func (s *IngestService) CreateResume(ctx context.Context, cv domain.ExtractedCV, sourceText string, confidence float64, requestID string) (*domain.Resume, error) {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 0.99 {
		confidence = 0.99
	}

	hash := hashText(sourceText)
	s.warnOnDuplicate(ctx, hash)

	resume := &domain.Resume{
		ResumeID:            uuid.NewString(),
		CandidateID:         uuid.NewString(),
		JSONData:            cv,
		Professional:        normalise.BuildRecord(cv),
		RawTextExcerpt:      excerpt(sourceText),
		OverallConfidence:   confidence,
		Status:              domain.StatusFor(confidence),
		CreatedAt:           time.Now().UTC(),
		CVHash:              hash,
		ExtractionRequestID: requestID,
	}

	if err := s.resumes.Append(ctx, resume); err != nil {
		return nil, fmt.Errorf("saving resume: %w", err)
	}

	s.logger.Info("resume created",
		zap.String("resume_id", resume.ResumeID),
		zap.String("candidate_id", resume.CandidateID),
		zap.Float64("confidence", confidence),
		zap.String("status", string(resume.Status)),
	)

	return resume, nil
}

// warnOnDuplicate logs when an identical source text was ingested
// before. Duplicates are detected, not blocked: re-uploads stay allowed
// and the hash stays on the record for later policy changes.
func (s *IngestService) warnOnDuplicate(ctx context.Context, hash string) {
	existing, err := s.resumes.List(ctx)
	if err != nil {
		return
	}
	for i := range existing {
		if existing[i].CVHash == hash {
			s.logger.Warn("duplicate source text detected",
				zap.String("cv_hash", hash),
				zap.String("existing_resume_id", existing[i].ResumeID),
			)
			return
		}
	}
}

// hashText returns the deterministic sha256 hex digest of the source text.
func hashText(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// excerpt keeps the first 2000 characters of the source text.
func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLimit {
		return text
	}
	return string(runes[:excerptLimit])
}
