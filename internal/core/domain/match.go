package domain

// MatchResult ranks one resume against a job posting. It is derived per
// request and never persisted; it has no lifecycle of its own.
type MatchResult struct {
	ResumeID    string `json:"resume_id"`
	CandidateID string `json:"candidate_id"`

	// Score is the 0-100 integer fit score.
	Score int `json:"score"`

	// Reasons are ordered human-readable explanations for the score.
	Reasons []string `json:"reasons"`
}

// SeniorityScale is the ordered seniority ladder used for proximity
// scoring. Index distance drives the seniority term of the match score.
var SeniorityScale = []string{"junior", "mid-level", "senior", "lead", "principal"}

// SeniorityIndex returns the position of level on the scale, or -1 when
// the level is not on it. Matching is case-insensitive by convention;
// callers lower-case before lookup.
func SeniorityIndex(level string) int {
	for i, s := range SeniorityScale {
		if s == level {
			return i
		}
	}
	return -1
}
