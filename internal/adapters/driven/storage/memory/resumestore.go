package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driven"
)

// Ensure ResumeStore implements the interface.
var _ driven.ResumeStore = (*ResumeStore)(nil)

// ResumeStore is an in-memory implementation of driven.ResumeStore.
type ResumeStore struct {
	mu      sync.RWMutex
	resumes []domain.Resume
}

// NewResumeStore creates a new in-memory resume store.
func NewResumeStore() *ResumeStore {
	return &ResumeStore{}
}

// Append adds a resume to the collection.
func (s *ResumeStore) Append(_ context.Context, resume *domain.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumes = append(s.resumes, *resume)
	return nil
}

// List returns all resumes in insertion order.
func (s *ResumeStore) List(_ context.Context) ([]domain.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Resume, len(s.resumes))
	copy(out, s.resumes)
	return out, nil
}

// Delete removes the resume with the given id.
func (s *ResumeStore) Delete(_ context.Context, resumeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.resumes {
		if s.resumes[i].ResumeID == resumeID {
			s.resumes = append(s.resumes[:i], s.resumes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
