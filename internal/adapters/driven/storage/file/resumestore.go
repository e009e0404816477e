package file

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driven"
)

// Ensure ResumeStore implements the interface.
var _ driven.ResumeStore = (*ResumeStore)(nil)

// ResumeStore persists resumes as one JSON array in resumes.json.
type ResumeStore struct {
	mu   sync.Mutex
	path string
}

// NewResumeStore creates a resume store under dataDir. Nothing touches
// the filesystem until the first operation.
func NewResumeStore(dataDir string) *ResumeStore {
	return &ResumeStore{path: filepath.Join(dataDir, resumesFile)}
}

// Append adds a resume: read the whole collection, append, rewrite.
// The mutex serializes the read-modify-write against other mutations.
func (s *ResumeStore) Append(_ context.Context, resume *domain.Resume) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumes, err := readArray[domain.Resume](s.path)
	if err != nil {
		return err
	}
	resumes = append(resumes, *resume)
	return writeArray(s.path, resumes)
}

// List returns all resumes in insertion order.
func (s *ResumeStore) List(_ context.Context) ([]domain.Resume, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readArray[domain.Resume](s.path)
}

// Delete rewrites the collection without the target id and reports
// whether anything was removed.
func (s *ResumeStore) Delete(_ context.Context, resumeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	resumes, err := readArray[domain.Resume](s.path)
	if err != nil {
		return false, err
	}

	kept := resumes[:0]
	for i := range resumes {
		if resumes[i].ResumeID != resumeID {
			kept = append(kept, resumes[i])
		}
	}
	if len(kept) == len(resumes) {
		return false, nil
	}

	if err := writeArray(s.path, kept); err != nil {
		return false, err
	}
	return true, nil
}
