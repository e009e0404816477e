package driven

import (
	"context"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
)

// CVExtractor turns raw document text into a best-effort structured CV.
// Implementations must salvage what they can from malformed responses;
// an unusable response yields an empty record, not a parse failure.
type CVExtractor interface {
	// Extract runs the extraction collaborator on the document text.
	Extract(ctx context.Context, text string) (*ExtractionResult, error)
}

// ExtractionResult is the outcome of one extraction call.
type ExtractionResult struct {
	// CV is the structured record; possibly empty, never invalid.
	CV domain.ExtractedCV

	// RequestID is the opaque correlation id from the collaborator.
	RequestID string

	// Raw is the verbatim collaborator response, kept for diagnostics.
	Raw string
}

// TextExtractor extracts plain text from arbitrary binary content.
// The core treats the result as opaque beyond its length.
type TextExtractor interface {
	// ExtractText returns the plain text of content.
	// Unknown MIME types yield domain.ErrUnsupportedType.
	ExtractText(ctx context.Context, content []byte, mimeType string) (string, error)
}
