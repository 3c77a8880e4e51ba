// Package sources contains the thin readers that turn raw configuration
// inputs — environment variables, command-line flags, the options file, and
// the hosts file — into plain option mappings for the resolver. All layering
// and validation lives in internal/options; a source only knows how to read
// its own input shape.
package sources
