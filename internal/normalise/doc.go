// Package normalise converts raw extracted CV fields into the canonical
// professional record: dates truncated to YYYY-MM, skills lower-cased,
// diacritic-stripped and synonym-mapped, and a completeness confidence
// derived from how many top-level extraction fields were filled.
//
// Everything in this package is pure. Nothing here errors: bad dates
// become nil, bad skills pass through, unusable extraction responses
// salvage down to an empty record.
package normalise
