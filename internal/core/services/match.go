package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driven"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driving"
)

// Ensure MatchService implements the interface.
var _ driving.MatchService = (*MatchService)(nil)

// Weights and caps of the four score terms. Each term is capped
// independently; the sum is clamped to 100.
const (
	mustHaveWeight     = 50.0
	niceToHaveWeight   = 20.0
	experienceHitScore = 2
	experienceCap      = 20.0
	seniorityCap       = 10
	seniorityStep      = 3
)

// MatchService ranks every stored resume against a job posting.
// Scoring itself is pure; the service only adds the store scan.
type MatchService struct {
	resumes driven.ResumeStore
}

// NewMatchService creates a new match service.
func NewMatchService(resumes driven.ResumeStore) *MatchService {
	return &MatchService{resumes: resumes}
}

// Match scores all resumes against the job. Zero scores are excluded
// from the result set, not ranked last. Results sort by descending
// score; ties keep store insertion order.
func (s *MatchService) Match(ctx context.Context, job *domain.Job) ([]domain.MatchResult, error) {
	if job == nil {
		return nil, domain.ErrInvalidInput
	}

	resumes, err := s.resumes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing resumes: %w", err)
	}

	results := make([]domain.MatchResult, 0, len(resumes))
	for i := range resumes {
		score := Score(job, &resumes[i])
		if score == 0 {
			continue
		}
		results = append(results, domain.MatchResult{
			ResumeID:    resumes[i].ResumeID,
			CandidateID: resumes[i].CandidateID,
			Score:       score,
			Reasons:     Reasons(job, &resumes[i], score),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results, nil
}

// Score computes the 0-100 fit of a resume for a job. It is pure and
// deterministic: no I/O, no side effects, identical inputs give
// identical output.
func Score(job *domain.Job, resume *domain.Resume) int {
	score := 0.0
	skills := resume.Professional.Skills

	if len(job.MustHave) > 0 {
		matched := matchedSkills(job.MustHave, skills)
		score += float64(len(matched)) / float64(len(job.MustHave)) * mustHaveWeight
	}

	if len(job.NiceToHave) > 0 {
		matched := matchedSkills(job.NiceToHave, skills)
		score += float64(len(matched)) / float64(len(job.NiceToHave)) * niceToHaveWeight
	}

	hits := experienceHits(job, resume)
	score += math.Min(float64(hits*experienceHitScore), experienceCap)

	score += float64(seniorityScore(job.Seniority, resume.Professional.Seniority))

	rounded := int(math.Round(score))
	if rounded > 100 {
		rounded = 100
	}
	return rounded
}

// Reasons re-derives the evidence behind a score as ordered
// human-readable strings. Falls back to a generic line when no
// individual reason applies.
func Reasons(job *domain.Job, resume *domain.Resume, score int) []string {
	var reasons []string
	skills := resume.Professional.Skills

	if matched := matchedSkills(job.MustHave, skills); len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Matches %d required skills: %s",
			len(matched), strings.Join(matched, ", ")))
	}

	if matched := matchedSkills(job.NiceToHave, skills); len(matched) > 0 {
		reasons = append(reasons, fmt.Sprintf("Has %d preferred skills: %s",
			len(matched), strings.Join(matched, ", ")))
	}

	if relevant := relevantExperienceCount(job, resume); relevant > 0 {
		reasons = append(reasons, fmt.Sprintf("%d relevant experience(s) found", relevant))
	}

	if score >= 80 {
		reasons = append(reasons, "Excellent overall match")
	} else if score >= 60 {
		reasons = append(reasons, "Good match")
	}

	if len(reasons) == 0 {
		return []string{"Some relevant skills found"}
	}
	return reasons
}

// matchedSkills returns the job-side terms contained, case-insensitively,
// in any canonical resume skill. Terms keep their original casing for
// reason reporting.
func matchedSkills(wanted, skills []string) []string {
	var matched []string
	for _, term := range wanted {
		lower := strings.ToLower(term)
		for _, skill := range skills {
			if strings.Contains(strings.ToLower(skill), lower) {
				matched = append(matched, term)
				break
			}
		}
	}
	return matched
}

// relevantTerms collects every term that counts as relevant for
// experience scanning: must-haves, nice-to-haves, and keywords.
func relevantTerms(job *domain.Job) []string {
	terms := make([]string, 0, len(job.MustHave)+len(job.NiceToHave)+len(job.Keywords))
	terms = append(terms, job.MustHave...)
	terms = append(terms, job.NiceToHave...)
	terms = append(terms, job.Keywords...)
	return terms
}

// experienceHits sums, over all experience descriptions, how many
// relevant terms each description contains.
func experienceHits(job *domain.Job, resume *domain.Resume) int {
	terms := relevantTerms(job)
	hits := 0
	for _, exp := range resume.Professional.Experience {
		if exp.Description == nil {
			continue
		}
		desc := strings.ToLower(*exp.Description)
		for _, term := range terms {
			if strings.Contains(desc, strings.ToLower(term)) {
				hits++
			}
		}
	}
	return hits
}

// relevantExperienceCount counts experience entries whose description
// contains at least one relevant term.
func relevantExperienceCount(job *domain.Job, resume *domain.Resume) int {
	terms := relevantTerms(job)
	count := 0
	for _, exp := range resume.Professional.Experience {
		if exp.Description == nil {
			continue
		}
		desc := strings.ToLower(*exp.Description)
		for _, term := range terms {
			if strings.Contains(desc, strings.ToLower(term)) {
				count++
				break
			}
		}
	}
	return count
}

// seniorityScore rewards proximity on the seniority ladder. It applies
// only when both sides declare a level that is on the scale.
func seniorityScore(jobLevel string, resumeLevel *string) int {
	if jobLevel == "" || resumeLevel == nil {
		return 0
	}

	jobIdx := domain.SeniorityIndex(strings.ToLower(jobLevel))
	resumeIdx := domain.SeniorityIndex(strings.ToLower(*resumeLevel))
	if jobIdx == -1 || resumeIdx == -1 {
		return 0
	}

	diff := jobIdx - resumeIdx
	if diff < 0 {
		diff = -diff
	}

	score := seniorityCap - seniorityStep*diff
	if score < 0 {
		return 0
	}
	return score
}
