// Package file provides file-based configuration for cvmatch.
//
// Settings live in a TOML file under the cvmatch config directory.
// A .env file and environment variables override file values, so a
// deployment can keep the Gemini key out of the config file.
package file
