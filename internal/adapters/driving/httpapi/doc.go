// Package httpapi exposes the cvmatch operations over HTTP.
//
// The surface mirrors the upload/resumes/jobs API the web frontend
// expects; every handler delegates to a driving port and translates
// domain errors to status codes in one place.
package httpapi
