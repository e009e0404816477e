package domain

import "time"

// ResumeStatus marks whether a resume needs a human pass before use.
type ResumeStatus string

const (
	// StatusOK means extraction confidence was high enough to trust.
	StatusOK ResumeStatus = "OK"

	// StatusNeedsReview means extraction confidence fell below the
	// review threshold and the record should be checked by a human.
	StatusNeedsReview ResumeStatus = "NEEDS_REVIEW"
)

// ReviewThreshold is the confidence below which a resume is flagged
// for review. Status is a pure function of confidence.
const ReviewThreshold = 0.6

// StatusFor derives the resume status from its overall confidence.
func StatusFor(confidence float64) ResumeStatus {
	if confidence < ReviewThreshold {
		return StatusNeedsReview
	}
	return StatusOK
}

// ExtractedCV is the best-effort structured record returned by the AI
// extraction collaborator. Every field may be absent; pointers keep the
// distinction between "missing" and "empty" through persistence.
type ExtractedCV struct {
	Name       string       `json:"name,omitempty"`
	Email      string       `json:"email,omitempty"`
	Phone      string       `json:"phone,omitempty"`
	LinkedIn   string       `json:"linkedin,omitempty"`
	Location   *Location    `json:"location,omitempty"`
	Education  []Education  `json:"education,omitempty"`
	Experience []Experience `json:"experience,omitempty"`
	Skills     []string     `json:"skills,omitempty"`
	Languages  []Language   `json:"languages,omitempty"`
}

// Location is a candidate's extracted location.
type Location struct {
	City    *string `json:"city"`
	Country *string `json:"country"`
}

// Education is one extracted education entry.
type Education struct {
	Course      *string `json:"course"`
	Institution *string `json:"institution"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
}

// Experience is one extracted experience entry.
type Experience struct {
	Company     *string `json:"company"`
	Title       *string `json:"title"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
}

// Language is one extracted language entry.
type Language struct {
	Name  *string `json:"name"`
	Level *string `json:"level"`
}

// ProfessionalRecord is the canonical professional record built from an
// ExtractedCV: dates normalised to YYYY-MM, skills canonicalised, and the
// variable-length categories kept as ordered sequences in source order.
type ProfessionalRecord struct {
	// Seniority is never derived from the experience list in the current
	// design and stays nil. Kept in the model for forward compatibility.
	Seniority *string `json:"seniority"`

	// YearsExperience is modelled but has no derivation; always 0.
	YearsExperience int `json:"years_experience"`

	Experience []ExperienceRecord `json:"experience"`
	Education  []EducationRecord  `json:"education"`
	Skills     []string           `json:"skills"`
	Languages  []LanguageRecord   `json:"languages"`
}

// ExperienceRecord is a canonicalised experience entry.
// Dates that fail normalisation are nil, never an error.
type ExperienceRecord struct {
	Title       *string `json:"title"`
	Company     *string `json:"company"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

// EducationRecord is a canonicalised education entry.
type EducationRecord struct {
	Course      *string `json:"course"`
	Institution *string `json:"institution"`
	Start       *string `json:"start"`
	End         *string `json:"end"`
}

// LanguageRecord is a canonicalised language entry.
type LanguageRecord struct {
	Name  *string `json:"name"`
	Level *string `json:"level"`
}

// Resume is a persisted candidate record. It is created once and is
// immutable thereafter, except for hard deletion by ResumeID.
type Resume struct {
	// ResumeID and CandidateID are independent unique identifiers,
	// immutable once assigned and never reused.
	ResumeID    string `json:"resume_id"`
	CandidateID string `json:"candidate_id"`

	// JSONData is the raw extracted structure as returned by the
	// extraction collaborator, kept verbatim for auditability.
	JSONData ExtractedCV `json:"json_data"`

	// Professional is the canonical record used for querying and matching.
	Professional ProfessionalRecord `json:"professional"`

	// RawTextExcerpt is the first 2000 characters of the source text.
	RawTextExcerpt string `json:"raw_text_excerpt"`

	// OverallConfidence is the extraction completeness heuristic in [0, 0.99].
	OverallConfidence float64 `json:"overall_confidence"`

	// Status is OK or NEEDS_REVIEW, derived purely from confidence.
	Status ResumeStatus `json:"status"`

	CreatedAt time.Time `json:"created_at"`

	// CVHash is the sha256 hex digest of the source text. Duplicate
	// ingestion is detected through it but not blocked.
	CVHash string `json:"cv_hash"`

	// ExtractionRequestID is the opaque correlation id returned by the
	// extraction collaborator.
	ExtractionRequestID string `json:"extraction_request_id"`
}

// ResumeQuery configures a paginated resume listing.
type ResumeQuery struct {
	// Limit is the maximum number of results per page.
	Limit int

	// Offset is the number of filtered results to skip.
	Offset int

	// Search matches case-insensitively against candidate name, email,
	// or any canonical skill substring.
	Search string

	// Skills is a comma-separated filter: a resume matches when ANY
	// requested skill is a substring of ANY of its canonical skills.
	// Composes with Search as a logical AND.
	Skills string
}

// ResumePage is one page of a filtered resume listing.
type ResumePage struct {
	Resumes []Resume `json:"resumes"`

	// Total is the size of the filtered set, not of the page.
	Total int `json:"total"`

	// HasMore reports whether offset+limit is still inside the filtered set.
	HasMore bool `json:"hasMore"`
}
