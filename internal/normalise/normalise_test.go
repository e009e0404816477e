package normalise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"year-month passes through", "2023-05", "2023-05"},
		{"bare year passes through", "2023", "2023"},
		{"month name is truncated", "May 2023", "2023-05"},
		{"full month name", "January 2021", "2021-01"},
		{"iso date is truncated", "2022-03-15", "2022-03"},
		{"surrounding whitespace", "  2023-05  ", "2023-05"},
		{"not a date", "not a date", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Date(tt.in))
		})
	}
}

func TestSkill(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"js alias", "JS", "javascript"},
		{"node alias", "Node.js", "javascript"},
		{"aws alias with spaces", " AWS ", "amazon web services"},
		{"gcp alias", "gcp", "google cloud platform"},
		{"csharp alias", "C#", "csharp"},
		{"dotnet alias", ".NET", "dotnet"},
		{"sqlserver alias", "SQLServer", "mssql"},
		{"unmapped passes through", "Kubernetes", "kubernetes"},
		{"accents stripped", "Gestão", "gestao"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Skill(tt.in))
		})
	}
}

func TestConfidence_Empty(t *testing.T) {
	assert.Equal(t, 0.0, Confidence(domain.ExtractedCV{}))
}

func TestConfidence_FullyPopulatedIsCapped(t *testing.T) {
	city := "Lisbon"
	course := "CS"
	company := "Acme"
	lang := "english"

	cv := domain.ExtractedCV{
		Name:       "Ada Lovelace",
		Email:      "ada@example.com",
		Phone:      "+351 900 000 000",
		LinkedIn:   "linkedin.com/in/ada",
		Location:   &domain.Location{City: &city},
		Education:  []domain.Education{{Course: &course}},
		Experience: []domain.Experience{{Company: &company}},
		Skills:     []string{"go"},
		Languages:  []domain.Language{{Name: &lang}},
	}

	confidence := Confidence(cv)
	assert.Greater(t, confidence, 0.9)
	assert.LessOrEqual(t, confidence, 0.99)
}

func TestConfidence_PartialExtraction(t *testing.T) {
	cv := domain.ExtractedCV{
		Name:   "Ada Lovelace",
		Email:  "ada@example.com",
		Skills: []string{"go"},
	}

	assert.InDelta(t, 3.0/9.0, Confidence(cv), 1e-9)
}

func TestBuildRecord_PreservesOrderAndNils(t *testing.T) {
	first := "First Corp"
	second := "Second Corp"
	start := "May 2020"
	bad := "whenever"

	cv := domain.ExtractedCV{
		Experience: []domain.Experience{
			{Company: &first, Start: &start},
			{Company: &second, Start: &bad},
		},
		Skills: []string{"JS", "", "Kubernetes"},
	}

	record := BuildRecord(cv)

	require.Len(t, record.Experience, 2)
	assert.Equal(t, "First Corp", *record.Experience[0].Company)
	require.NotNil(t, record.Experience[0].Start)
	assert.Equal(t, "2020-05", *record.Experience[0].Start)
	assert.Nil(t, record.Experience[1].Start)
	assert.Nil(t, record.Experience[0].Title)

	// Empty skills are dropped, order of the rest is kept.
	assert.Equal(t, []string{"javascript", "kubernetes"}, record.Skills)
}

func TestBuildRecord_NeverDerivesSeniority(t *testing.T) {
	title := "Principal Engineer"
	desc := "led a team of twelve for a decade"

	record := BuildRecord(domain.ExtractedCV{
		Experience: []domain.Experience{{Title: &title, Description: &desc}},
	})

	assert.Nil(t, record.Seniority)
	assert.Zero(t, record.YearsExperience)
}
