// Package file provides JSON-file-backed implementations of the storage
// ports. Each collection is one human-readable JSON array at a fixed
// location under the data directory, rewritten wholesale per mutation.
//
// The whole collection is the consistency unit. Every read-modify-write
// runs under a per-collection mutex so concurrent mutations cannot drop
// each other's appends. A missing file or directory is an empty
// collection, never an error; both are created lazily on first write.
package file
