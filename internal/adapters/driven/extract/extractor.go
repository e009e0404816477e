// Package extract implements plain-text extraction from candidate
// documents. PDF and DOCX payloads are parsed; plain text passes
// through; everything else is an unsupported type.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/custodia-labs/cvmatch/internal/core/domain"
	"github.com/custodia-labs/cvmatch/internal/core/ports/driven"
)

// MIME types this extractor handles.
const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDocx      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor turns document bytes into plain text.
type Extractor struct{}

// New creates a new text extractor.
func New() *Extractor {
	return &Extractor{}
}

// ExtractText returns the plain text of content according to its MIME
// type. Unknown types yield domain.ErrUnsupportedType.
func (e *Extractor) ExtractText(_ context.Context, content []byte, mimeType string) (string, error) {
	switch mimeType {
	case MIMEPlainText:
		return string(content), nil
	case MIMEPDF:
		return extractPDF(content)
	case MIMEDocx:
		return extractDocx(content)
	default:
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedType, mimeType)
	}
}

func extractPDF(content []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
	}
	return builder.String(), nil
}

func extractDocx(content []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("reading docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

// ReadAll drains a document stream with a hard size cap. The boundary
// uses it to enforce the upload limit before extraction.
func ReadAll(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: document exceeds %d bytes", domain.ErrInvalidInput, maxBytes)
	}
	return data, nil
}
