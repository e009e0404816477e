package cli

import (
	"context"

	"github.com/custodia-labs/cvmatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/services"
)

// setupTestServices installs real services over in-memory stores so
// commands execute without touching disk or the network. The returned
// cleanup restores the uninitialised state.
func setupTestServices() func() {
	resumes := memory.NewResumeStore()
	jobs := memory.NewJobStore()

	resumeService = services.NewResumeService(resumes)
	jobService = services.NewJobService(jobs)
	matchService = services.NewMatchService(resumes)
	ingestService = &stubIngestService{resumes: resumes}

	return func() {
		ingestService = nil
		resumeService = nil
		jobService = nil
		matchService = nil
	}
}

// stubIngestService persists a canned resume without AI extraction.
type stubIngestService struct {
	resumes *memory.ResumeStore
}

func (s *stubIngestService) IngestDocument(ctx context.Context, content []byte, _ string) (*domain.Resume, error) {
	cv := domain.ExtractedCV{Name: "Test Candidate", Skills: []string{"go"}}
	return s.CreateResume(ctx, cv, string(content), 0.8, "req-test")
}

func (s *stubIngestService) CreateResume(ctx context.Context, cv domain.ExtractedCV, sourceText string, confidence float64, requestID string) (*domain.Resume, error) {
	resume := &domain.Resume{
		ResumeID:            "resume-test",
		CandidateID:         "candidate-test",
		JSONData:            cv,
		RawTextExcerpt:      sourceText,
		OverallConfidence:   confidence,
		Status:              domain.StatusFor(confidence),
		ExtractionRequestID: requestID,
	}
	if err := s.resumes.Append(ctx, resume); err != nil {
		return nil, err
	}
	return resume, nil
}

// seedResume stores a resume directly for listing and matching tests.
func seedResume(ctx context.Context, id, name string, skills []string) error {
	svc, ok := ingestService.(*stubIngestService)
	if !ok {
		panic("seedResume requires setupTestServices")
	}
	return svc.resumes.Append(ctx, &domain.Resume{
		ResumeID:    id,
		CandidateID: "candidate-" + id,
		JSONData:    domain.ExtractedCV{Name: name},
		Professional: domain.ProfessionalRecord{
			Skills: skills,
		},
		Status: domain.StatusOK,
	})
}
