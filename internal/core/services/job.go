package services

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driven"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driving"
)

// Ensure JobService implements the interface.
var _ driving.JobService = (*JobService)(nil)

//go:embed job.schema.json
var jobSchema string

// JobService validates and persists job postings.
type JobService struct {
	jobs driven.JobStore
}

// NewJobService creates a new job service.
func NewJobService(jobs driven.JobStore) *JobService {
	return &JobService{jobs: jobs}
}

// Create validates the posting, assigns a UUID and timestamp, and
// persists it. UUIDs keep ids unique under concurrent requests, unlike
// time-derived ids.
func (s *JobService) Create(ctx context.Context, input domain.JobInput) (*domain.Job, error) {
	if err := validateJobInput(input); err != nil {
		return nil, err
	}

	job := &domain.Job{
		JobID:        uuid.NewString(),
		Title:        input.Title,
		Seniority:    input.Seniority,
		Location:     input.Location,
		WorkMode:     input.WorkMode,
		ContractType: input.ContractType,
		Languages:    input.Languages,
		MustHave:     input.MustHave,
		NiceToHave:   input.NiceToHave,
		SalaryMin:    input.SalaryMin,
		SalaryMax:    input.SalaryMax,
		Currency:     input.Currency,
		Keywords:     input.Keywords,
		RawText:      input.RawText,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.jobs.Append(ctx, job); err != nil {
		return nil, fmt.Errorf("saving job: %w", err)
	}

	return job, nil
}

// List returns all jobs in insertion order.
func (s *JobService) List(ctx context.Context) ([]domain.Job, error) {
	return s.jobs.List(ctx)
}

// Get returns the job with the given id.
func (s *JobService) Get(ctx context.Context, jobID string) (*domain.Job, error) {
	jobs, err := s.jobs.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].JobID == jobID {
			return &jobs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// validateJobInput checks the posting against the embedded JSON schema,
// then enforces the salary ordering the schema cannot express.
func validateJobInput(input domain.JobInput) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(jobSchema),
		gojsonschema.NewGoLoader(input),
	)
	if err != nil {
		return fmt.Errorf("validating job: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, strings.Join(msgs, "; "))
	}

	if input.SalaryMin > input.SalaryMax {
		return fmt.Errorf("%w: salaryMin must not exceed salaryMax", domain.ErrInvalidInput)
	}

	return nil
}
