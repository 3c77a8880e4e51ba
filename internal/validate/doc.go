// Package validate holds the invariant checks the configuration pipeline
// runs against a resolved run configuration.
//
// Every check is a pure predicate: it inspects its arguments and returns nil
// or a structured *Error describing what was violated. Nothing in this
// package aborts, logs, or mutates state — the pipeline driver in
// internal/options decides what to do with a failure (today: stop on the
// first one). This keeps each rule independently testable and keeps the
// error taxonomy (malformed input, invariant violation, missing resource)
// visible to callers that want to branch on it.
package validate
