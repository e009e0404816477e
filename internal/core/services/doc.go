// Package services implements the driving port interfaces.
//
// Services contain the business logic of cvmatch: the ingestion
// pipeline, job validation, resume querying, and the match scoring
// engine. They depend only on domain types and driven ports.
package services
