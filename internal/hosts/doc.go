// Package hosts validates and repairs the HOSTS mapping of a merged run
// configuration.
//
// Each host entry is decoded into an explicit Host record (platform is
// required, everything else optional), checked against the per-host rules,
// and annotated: SSH user overrides are promoted to the host's effective
// user, global host tags are merged under the host's own, and when no host
// carries the 'default' role one is chosen (the sole master, or the only
// host of a single-host run). Cross-host invariants — at most one default,
// exactly one master in multi-host sets, frictionless role compatibility,
// hypervisor credential files — are enforced with full visibility into the
// whole host set before any assignment is finalized.
package hosts
