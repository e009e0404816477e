package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates a document type no text extractor handles.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrExtractionFailed indicates the AI extraction collaborator failed
	// or returned an unusable response.
	ErrExtractionFailed = errors.New("extraction failed")

	// ErrExtractorUnavailable indicates no AI extraction client is configured.
	// Ingestion from raw documents is disabled without one.
	ErrExtractorUnavailable = errors.New("extractor unavailable")

	// ErrStorage indicates an I/O failure on the backing collection files.
	// Storage failures propagate to the caller; they are never retried here.
	ErrStorage = errors.New("storage failure")
)
