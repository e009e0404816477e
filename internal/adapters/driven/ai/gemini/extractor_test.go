package gemini

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtractor_RequiresAPIKey(t *testing.T) {
	_, err := NewExtractor(context.Background(), "   ", "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestPromptTemplate(t *testing.T) {
	assert.Contains(t, promptTemplate, "{{CV_TEXT}}")
	assert.Contains(t, promptTemplate, `"skills"`)

	prompt := strings.ReplaceAll(promptTemplate, "{{CV_TEXT}}", "Ada Lovelace, engineer")
	assert.NotContains(t, prompt, "{{CV_TEXT}}")
	assert.Contains(t, prompt, "Ada Lovelace, engineer")
}

func TestExtract_NotInitialized(t *testing.T) {
	var e *Extractor
	_, err := e.Extract(context.Background(), "text")
	assert.Error(t, err)
}
