// Package memory provides in-memory implementations of the storage
// ports. Used in tests and anywhere durability is not needed.
package memory
