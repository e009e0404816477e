package normalise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExtraction_DirectJSON(t *testing.T) {
	cv := ParseExtraction(`{"name": "Ada Lovelace", "skills": ["go", "python"]}`)

	assert.Equal(t, "Ada Lovelace", cv.Name)
	assert.Equal(t, []string{"go", "python"}, cv.Skills)
}

func TestParseExtraction_FencedJSON(t *testing.T) {
	raw := "```json\n{\"name\": \"Ada Lovelace\", \"email\": \"ada@example.com\"}\n```"

	cv := ParseExtraction(raw)

	assert.Equal(t, "Ada Lovelace", cv.Name)
	assert.Equal(t, "ada@example.com", cv.Email)
}

func TestParseExtraction_EmbeddedFragment(t *testing.T) {
	raw := `Here is the extraction you asked for: {"name": "Ada Lovelace"} hope it helps!`

	cv := ParseExtraction(raw)

	assert.Equal(t, "Ada Lovelace", cv.Name)
}

func TestParseExtraction_WeaklyTypedFields(t *testing.T) {
	// A lone string where a list was asked for still decodes.
	cv := ParseExtraction(`{"skills": "go"}`)

	require.Len(t, cv.Skills, 1)
	assert.Equal(t, "go", cv.Skills[0])
}

func TestParseExtraction_NestedEntries(t *testing.T) {
	raw := `{"experience": [{"company": "Acme", "start": "2020-01", "description": null}]}`

	cv := ParseExtraction(raw)

	require.Len(t, cv.Experience, 1)
	require.NotNil(t, cv.Experience[0].Company)
	assert.Equal(t, "Acme", *cv.Experience[0].Company)
	assert.Nil(t, cv.Experience[0].Description)
}

func TestParseExtraction_GarbageFallsToEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"plain prose", "I could not extract anything from this document."},
		{"empty string", ""},
		{"broken json", `{"name": "Ada`},
		{"array not object", `["go", "python"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := ParseExtraction(tt.raw)
			assert.Empty(t, cv.Name)
			assert.Empty(t, cv.Skills)
		})
	}
}
