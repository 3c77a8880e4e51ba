package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind classifies a validation failure.
type Kind int

const (
	// KindMalformed marks a required value that is missing or has the
	// wrong shape (e.g. a host without a platform).
	KindMalformed Kind = iota
	// KindInvariant marks a cross-cutting rule violation (multiple
	// masters, conflicting tags, disallowed role/platform combinations).
	KindInvariant
	// KindResource marks a required file or directory that does not exist
	// or yielded nothing usable.
	KindResource
)

func (k Kind) String() string {
	switch k {
	case KindMalformed:
		return "malformed"
	case KindInvariant:
		return "invariant"
	case KindResource:
		return "resource"
	default:
		return "unknown"
	}
}

// Error is a single validation failure. Subject names the offending key,
// host, or path so messages stay greppable.
type Error struct {
	Kind    Kind
	Subject string
	Message string
}

func (e *Error) Error() string {
	if e.Subject == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Subject, e.Message)
}

// Malformedf builds a KindMalformed error.
func Malformedf(subject, format string, args ...any) *Error {
	return &Error{Kind: KindMalformed, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

// Invariantf builds a KindInvariant error.
func Invariantf(subject, format string, args ...any) *Error {
	return &Error{Kind: KindInvariant, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

// Resourcef builds a KindResource error.
func Resourcef(subject, format string, args ...any) *Error {
	return &Error{Kind: KindResource, Subject: subject, Message: fmt.Sprintf(format, args...)}
}

// validFailModes and validPreserveModes are the complete accepted sets;
// anything else came from a typo or an unsupported source.
var (
	validFailModes     = []string{"fast", "slow", "stop"}
	validPreserveModes = []string{"always", "onfail", "onpass", "never"}
)

// FailMode checks that mode is one of the supported failure strategies.
func FailMode(mode string) error {
	for _, m := range validFailModes {
		if mode == m {
			return nil
		}
	}
	return Malformedf("fail_mode", "%q is not a valid fail mode, use one of %s", mode, strings.Join(validFailModes, ", "))
}

// PreserveHosts checks that value is a supported host-preservation policy.
func PreserveHosts(value string) error {
	for _, m := range validPreserveModes {
		if value == m {
			return nil
		}
	}
	return Malformedf("preserve_hosts", "%q is not a valid preserve_hosts value, use one of %s", value, strings.Join(validPreserveModes, ", "))
}

// AtMostOneDefault checks that no more than one host already carries the
// default role. names are the hosts that carry it.
func AtMostOneDefault(names []string) error {
	if len(names) > 1 {
		return Invariantf("default", "only one host may have the role 'default', but it is set on: %s", strings.Join(names, ", "))
	}
	return nil
}

// ExactlyOneMaster checks the master-role count across the whole host set.
func ExactlyOneMaster(count int) error {
	if count == 1 {
		return nil
	}
	return Invariantf("master", "exactly one host must have the role 'master', found %d", count)
}

// frictionlessConflicts are the roles a frictionless host may not carry.
var frictionlessConflicts = []string{"master", "database", "dashboard"}

// FrictionlessRoles checks a single host's role set for frictionless
// compatibility: a frictionless host cannot double as server infrastructure.
func FrictionlessRoles(roles []string) error {
	frictionless := false
	for _, r := range roles {
		if r == "frictionless" {
			frictionless = true
		}
	}
	if !frictionless {
		return nil
	}
	for _, r := range roles {
		for _, c := range frictionlessConflicts {
			if r == c {
				return Invariantf("frictionless", "role %q is not compatible with the 'frictionless' role on the same host", r)
			}
		}
	}
	return nil
}

// Tags checks that the include and exclude tag sets do not overlap. Both
// slices are expected to be lower-cased already.
func Tags(includes, excludes []string) error {
	seen := make(map[string]struct{}, len(includes))
	for _, t := range includes {
		seen[t] = struct{}{}
	}
	for _, t := range excludes {
		if _, ok := seen[t]; ok {
			return Invariantf("tags", "tag %q appears in both tag_includes and tag_excludes", t)
		}
	}
	return nil
}

// RequireFile checks that path names an existing regular file. context names
// who needed it (e.g. a hypervisor) for the error message.
func RequireFile(path, context string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return Resourcef(context, "required file %q does not exist", path)
	}
	return nil
}

// ResolveSymlink resolves path through any symlinks. If resolution fails
// (path may legitimately not exist yet) the original path is returned.
func ResolveSymlink(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
