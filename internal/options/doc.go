// Package options resolves the final run configuration for rigctl.
//
// A run configuration is assembled from five layered sources and merged with
// a strict precedence (highest wins):
//
//  1. Environment variables (RIGCTL_*)
//  2. Command-line flags
//  3. The hosts file's embedded CONFIG section
//  4. The options file
//  5. Built-in presets
//
// The hosts file is the authoritative source of host topology: its HOSTS
// mapping is folded into the accumulated configuration host-by-host, while
// scalar keys from the command line and environment still override it.
//
// After merging, a normalization pass coerces list-like options into string
// slices, expands test paths into concrete .rb file lists, and rewrites
// well-known repository keywords (PUPPET/1.2.3) into full git URLs. The host
// validation pass in internal/hosts then repairs and checks the HOSTS
// mapping. Each stage takes a mapping and returns a new one; nothing is
// mutated in place, so precedence and normalization are testable in
// isolation.
//
// All failures are terminal: the first violated invariant aborts resolution
// with a *validate.Error describing the offending key, host, or path.
package options
