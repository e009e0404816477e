package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driven"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driving"
)

// Ensure ResumeService implements the interface.
var _ driving.ResumeService = (*ResumeService)(nil)

// defaultPageSize applies when a listing request gives no limit.
const defaultPageSize = 10

// ResumeService provides filtered, paginated listing and deletion over
// stored resumes.
type ResumeService struct {
	resumes driven.ResumeStore
}

// NewResumeService creates a new resume service.
func NewResumeService(resumes driven.ResumeStore) *ResumeService {
	return &ResumeService{resumes: resumes}
}

// List returns the [offset, offset+limit) window of the filtered set,
// the filtered total, and whether more results remain. Filters compose
// as a logical AND; pagination applies after filtering. No ordering
// beyond store insertion order.
func (s *ResumeService) List(ctx context.Context, query domain.ResumeQuery) (*domain.ResumePage, error) {
	all, err := s.resumes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	filtered := filterResumes(all, query.Search, query.Skills)
	total := len(filtered)

	start := offset
	if start > total {
		start = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return &domain.ResumePage{
		Resumes: filtered[start:end],
		Total:   total,
		HasMore: offset+limit < total,
	}, nil
}

// Delete hard-deletes a resume and reports whether it existed.
func (s *ResumeService) Delete(ctx context.Context, resumeID string) (bool, error) {
	resumeID = strings.TrimSpace(resumeID)
	if resumeID == "" {
		return false, domain.ErrInvalidInput
	}
	return s.resumes.Delete(ctx, resumeID)
}

// filterResumes applies the free-text search and the comma-separated
// skills filter, both case-insensitive, ANDed together.
func filterResumes(all []domain.Resume, search, skills string) []domain.Resume {
	filtered := all

	if search = strings.ToLower(strings.TrimSpace(search)); search != "" {
		var kept []domain.Resume
		for i := range filtered {
			if matchesSearch(&filtered[i], search) {
				kept = append(kept, filtered[i])
			}
		}
		filtered = kept
	}

	if wanted := splitSkills(skills); len(wanted) > 0 {
		var kept []domain.Resume
		for i := range filtered {
			if matchesAnySkill(&filtered[i], wanted) {
				kept = append(kept, filtered[i])
			}
		}
		filtered = kept
	}

	return filtered
}

// matchesSearch checks candidate name, email, and canonical skills for a
// case-insensitive substring hit.
func matchesSearch(resume *domain.Resume, search string) bool {
	if strings.Contains(strings.ToLower(resume.JSONData.Name), search) {
		return true
	}
	if strings.Contains(strings.ToLower(resume.JSONData.Email), search) {
		return true
	}
	for _, skill := range resume.Professional.Skills {
		if strings.Contains(strings.ToLower(skill), search) {
			return true
		}
	}
	return false
}

// matchesAnySkill reports whether ANY requested skill is a substring of
// ANY canonical resume skill.
func matchesAnySkill(resume *domain.Resume, wanted []string) bool {
	for _, want := range wanted {
		for _, skill := range resume.Professional.Skills {
			if strings.Contains(strings.ToLower(skill), want) {
				return true
			}
		}
	}
	return false
}

// splitSkills parses the comma-separated skills filter, dropping blanks.
func splitSkills(skills string) []string {
	var wanted []string
	for _, part := range strings.Split(skills, ",") {
		if part = strings.ToLower(strings.TrimSpace(part)); part != "" {
			wanted = append(wanted, part)
		}
	}
	return wanted
}
