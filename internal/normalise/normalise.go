package normalise

import (
	"regexp"
	"strings"
	"time"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

var (
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
	yearRe      = regexp.MustCompile(`^\d{4}$`)
)

// dateLayouts are the generic formats tried, in order, for dates that are
// not already YYYY-MM or YYYY.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"02/01/2006",
	"January 2006",
	"Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"01/2006",
	"2006.01",
}

// Date normalises a raw date string to "YYYY-MM". Strings already in
// "YYYY-MM" or "YYYY" form pass through unchanged; anything else goes
// through a generic parse and is truncated to year-month. Unparseable
// input returns the empty string. Never errors.
func Date(raw string) string {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return ""
	}

	if yearMonthRe.MatchString(cleaned) || yearRe.MatchString(cleaned) {
		return cleaned
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return t.Format("2006-01")
		}
	}

	return ""
}

// skillSynonyms maps well-known aliases to their canonical skill token.
// Lookup happens after lower-casing, trimming and diacritic stripping.
var skillSynonyms = map[string]string{
	"js":        "javascript",
	"nodejs":    "javascript",
	"node.js":   "javascript",
	"py":        "python",
	"aws":       "amazon web services",
	"gcp":       "google cloud platform",
	"sqlserver": "mssql",
	"c#":        "csharp",
	".net":      "dotnet",
}

// Skill canonicalises a skill token: lower-case, trim, strip the accented
// vowel ranges, then map through the synonym table. Unmapped tokens pass
// through unchanged; empty input returns the empty string.
func Skill(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}

	s = stripAccents(s)

	if canonical, ok := skillSynonyms[s]; ok {
		return canonical
	}
	return s
}

// stripAccents folds the fixed accented-vowel ranges onto their base
// vowels. Only these ranges are folded; other characters pass through.
func stripAccents(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'à' && r <= 'å':
			return 'a'
		case r >= 'è' && r <= 'ë':
			return 'e'
		case r >= 'ì' && r <= 'ï':
			return 'i'
		case r >= 'ò' && r <= 'ö':
			return 'o'
		case r >= 'ù' && r <= 'ü':
			return 'u'
		default:
			return r
		}
	}, s)
}

// extractionFieldCount is the number of top-level fields the extraction
// collaborator is asked for. Confidence is the filled fraction of these.
const extractionFieldCount = 9

// Confidence scores extraction completeness as the fraction of top-level
// fields that are non-empty, capped at 0.99. A fully empty extraction
// scores 0.0; by design the score never reaches 1.0.
func Confidence(cv domain.ExtractedCV) float64 {
	filled := 0

	for _, s := range []string{cv.Name, cv.Email, cv.Phone, cv.LinkedIn} {
		if strings.TrimSpace(s) != "" {
			filled++
		}
	}
	if cv.Location != nil && (cv.Location.City != nil || cv.Location.Country != nil) {
		filled++
	}
	if len(cv.Education) > 0 {
		filled++
	}
	if len(cv.Experience) > 0 {
		filled++
	}
	if len(cv.Skills) > 0 {
		filled++
	}
	if len(cv.Languages) > 0 {
		filled++
	}

	confidence := float64(filled) / float64(extractionFieldCount)
	if confidence > 0.99 {
		confidence = 0.99
	}
	return confidence
}

// BuildRecord flattens the extracted CV into the canonical professional
// record. Source order is preserved per category; absent subfields stay
// nil. Seniority and YearsExperience are never derived here: the model
// carries them, but no derivation exists in the current design.
func BuildRecord(cv domain.ExtractedCV) domain.ProfessionalRecord {
	record := domain.ProfessionalRecord{
		Seniority:       nil,
		YearsExperience: 0,
	}

	for _, exp := range cv.Experience {
		record.Experience = append(record.Experience, domain.ExperienceRecord{
			Title:       exp.Title,
			Company:     exp.Company,
			Start:       normaliseDatePtr(exp.Start),
			End:         normaliseDatePtr(exp.End),
			Description: exp.Description,
			Location:    exp.Location,
		})
	}

	for _, edu := range cv.Education {
		record.Education = append(record.Education, domain.EducationRecord{
			Course:      edu.Course,
			Institution: edu.Institution,
			Start:       normaliseDatePtr(edu.Start),
			End:         normaliseDatePtr(edu.End),
		})
	}

	for _, skill := range cv.Skills {
		if canonical := Skill(skill); canonical != "" {
			record.Skills = append(record.Skills, canonical)
		}
	}

	for _, lang := range cv.Languages {
		record.Languages = append(record.Languages, domain.LanguageRecord{
			Name:  lang.Name,
			Level: lang.Level,
		})
	}

	return record
}

// normaliseDatePtr applies Date to an optional raw date.
func normaliseDatePtr(raw *string) *string {
	if raw == nil {
		return nil
	}
	normalised := Date(*raw)
	if normalised == "" {
		return nil
	}
	return &normalised
}
