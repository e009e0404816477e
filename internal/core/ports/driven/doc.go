// Package driven defines the outbound port interfaces for cvmatch.
//
// Driven ports are implemented by adapters (storage, AI extraction,
// document text extraction) and consumed by core services. Services
// depend on these interfaces, never on concrete adapters.
package driven
