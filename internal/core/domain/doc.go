// Package domain defines the core business entities for cvmatch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Resume: A persisted candidate record with its canonical professional data
//   - Job: A persisted job posting
//   - MatchResult: A derived, never-persisted ranking of a resume against a job
//   - ExtractedCV: The best-effort structured record returned by AI extraction
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
