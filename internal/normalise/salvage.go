package normalise

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

var fenceRe = regexp.MustCompile("(?i)```(?:json|text)?\\s*")

// ParseExtraction salvages a structured CV from a collaborator response.
// The strategies run in order: strip code fences and parse directly, then
// parse the largest embedded {...} fragment, then give up with an empty
// record. A parse failure is never propagated as a pipeline failure.
func ParseExtraction(raw string) domain.ExtractedCV {
	for _, candidate := range []string{stripFences(raw), largestObject(raw)} {
		if candidate == "" {
			continue
		}
		if cv, ok := decodeCV(candidate); ok {
			return cv
		}
	}
	return domain.ExtractedCV{}
}

// stripFences removes markdown code fences around the payload.
func stripFences(s string) string {
	s = fenceRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// largestObject returns the widest brace-delimited fragment, from the
// first '{' to the last '}'.
func largestObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return ""
	}
	return s[start : end+1]
}

// decodeCV parses candidate JSON into an ExtractedCV. The loose map goes
// through a weakly typed mapstructure decode so that slightly wrong field
// types (a lone string where a list was asked for, numbers as strings)
// still yield a usable record.
func decodeCV(candidate string) (domain.ExtractedCV, bool) {
	var loose map[string]any
	if err := json.Unmarshal([]byte(candidate), &loose); err != nil {
		return domain.ExtractedCV{}, false
	}

	var cv domain.ExtractedCV
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &cv,
	})
	if err != nil {
		return domain.ExtractedCV{}, false
	}
	if err := decoder.Decode(loose); err != nil {
		return domain.ExtractedCV{}, false
	}
	return cv, true
}
