// Package gemini implements the CV extraction port on the Gemini API.
package gemini

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/custodia-labs/cvmatch/internal/core/ports/driven"
	"github.com/custodia-labs/cvmatch/internal/logger"
	"github.com/custodia-labs/cvmatch/internal/normalise"
)

const (
	defaultModel = "gemini-2.5-flash"

	// defaultRequestsPerMinute throttles extraction calls.
	defaultRequestsPerMinute = 30

	// maxLogLen bounds response previews in debug logs.
	maxLogLen = 200
)

// Ensure Extractor implements the interface.
var _ driven.CVExtractor = (*Extractor)(nil)

//go:embed prompt.md
var promptTemplate string

// Extractor wraps the Google GenAI client for CV field extraction.
type Extractor struct {
	client    *genai.Client
	modelName string
	limiter   *rate.Limiter
	logger    *zap.Logger
}

// NewExtractor creates an Extractor for the Gemini API backend.
// The logger may be nil.
func NewExtractor(ctx context.Context, apiKey, model string, log *zap.Logger) (*Extractor, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Extractor{
		client:    client,
		modelName: model,
		limiter:   rate.NewLimiter(rate.Limit(defaultRequestsPerMinute)/60, 1),
		logger:    log,
	}, nil
}

// Extract sends the document text to Gemini and salvages a structured
// CV from whatever comes back. A malformed response degrades to an
// empty record; only transport-level failures return an error.
func (e *Extractor) Extract(ctx context.Context, text string) (*driven.ExtractionResult, error) {
	if e == nil || e.client == nil {
		return nil, errors.New("gemini extractor is not initialized")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("document text must not be empty")
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	prompt := strings.ReplaceAll(promptTemplate, "{{CV_TEXT}}", text)

	e.logger.Debug("gemini extraction request",
		zap.String("model", e.modelName),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	temperature := float32(0.1)
	cfg := &genai.GenerateContentConfig{Temperature: &temperature}

	resp, err := e.client.Models.GenerateContent(ctx, e.modelName, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := collectText(resp)

	e.logger.Debug("gemini extraction response",
		zap.String("request_id", resp.ResponseID),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.Truncate(raw, maxLogLen)),
	)

	return &driven.ExtractionResult{
		CV:        normalise.ParseExtraction(raw),
		RequestID: resp.ResponseID,
		Raw:       raw,
	}, nil
}

// collectText joins the textual parts of all candidates.
func collectText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return builder.String()
}

// Model returns the configured model name.
func (e *Extractor) Model() string {
	if e == nil {
		return ""
	}
	return e.modelName
}
