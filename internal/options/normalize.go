package options

import (
	"strings"

	"rigctl/internal/validate"
	"rigctl/pkg/logging"
)

// ListKeys are the option keys whose values must always normalize to an
// ordered sequence of strings.
var ListKeys = []string{"helper", "load_path", "tests", "pre_suite", "post_suite", "install", "modules"}

// fileListKeys is the subset of ListKeys holding test-code paths that get
// expanded into concrete .rb file lists.
var fileListKeys = []string{"tests", "pre_suite", "post_suite"}

// SplitArg coerces a raw option value into an ordered sequence of strings:
// sequences pass through unchanged, strings containing a comma are split on
// commas (substrings are not trimmed), any other scalar is wrapped into a
// one-element sequence, and nil yields an empty sequence. SplitArg is
// idempotent.
func SplitArg(v any) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case []string:
		return val
	case []any:
		return AsStringList(val)
	case string:
		if strings.Contains(val, ",") {
			return strings.Split(val, ",")
		}
		return []string{val}
	default:
		return []string{AsString(v)}
	}
}

// Normalize runs the value-normalization pass over a merged mapping and
// returns the normalized copy. Scalar-to-list coercion happens for exactly
// the ListKeys; test-path keys are expanded to file lists; the install key
// gets repository keywords rewritten; tag filters are lower-cased and
// checked for conflicts.
func Normalize(o Options) (Options, error) {
	out := o.Clone()

	for _, k := range ListKeys {
		out[k] = SplitArg(out[k])
	}

	if err := validate.FailMode(AsString(out["fail_mode"])); err != nil {
		return nil, err
	}
	if err := validate.PreserveHosts(AsString(out["preserve_hosts"])); err != nil {
		return nil, err
	}

	for _, k := range []string{"hosts_file", "options_file"} {
		if p := AsString(out[k]); p != "" {
			out[k] = validate.ResolveSymlink(p)
		}
	}

	for _, k := range fileListKeys {
		paths := out[k].([]string)
		if len(paths) == 0 {
			continue
		}
		files, err := FileList(paths)
		if err != nil {
			return nil, err
		}
		logging.Debug("options", "expanded %s into %d file(s)", k, len(files))
		out[k] = files
	}

	out["install"] = ParseGitRepos(out["install"].([]string), AsString(out["repo"]))

	includes := normalizeTags(out["tag_includes"])
	excludes := normalizeTags(out["tag_excludes"])
	if err := validate.Tags(includes, excludes); err != nil {
		return nil, err
	}
	out["tag_includes"] = includes
	out["tag_excludes"] = excludes

	return out, nil
}

// normalizeTags coerces a tag filter into a lower-cased sequence. An unset
// or empty filter is an empty sequence, not [""].
func normalizeTags(v any) []string {
	var parts []string
	switch val := v.(type) {
	case nil:
		return []string{}
	case string:
		if val == "" {
			return []string{}
		}
		parts = strings.Split(val, ",")
	default:
		parts = SplitArg(v)
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.ToLower(p))
	}
	return out
}
