package options

import (
	"fmt"
	"strconv"
)

// Distinguished keys with merge semantics of their own.
const (
	// KeyHosts is the nested host-name -> host-entry mapping. Merging two
	// layers merges this mapping at the top level only: an overlay entry
	// wholly replaces a base entry with the same host name.
	KeyHosts = "HOSTS"

	// KeyCommandLine captures the literal invocation string. It is
	// injected before the first merge and never overridden afterwards.
	KeyCommandLine = "command_line"
)

// Options is one layer (or the merged result) of the run configuration: a
// mapping from a known option key to a heterogeneous value. Unknown keys
// pass through every stage unmodified.
type Options map[string]any

// Clone returns a copy of o. The top level and the HOSTS mapping are copied;
// individual host entries and other nested values are shared, since every
// pipeline stage builds fresh values instead of mutating them.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	for k, v := range o {
		if k == KeyHosts {
			out[k] = AsMapping(v).cloneTopLevel()
			continue
		}
		out[k] = v
	}
	return out
}

func (o Options) cloneTopLevel() Options {
	out := make(Options, len(o))
	for k, v := range o {
		out[k] = v
	}
	return out
}

// Merge returns a new mapping with overlay's values layered over o. The
// merge is shallow: for any key present in both, overlay wins wholesale.
// Two exceptions: HOSTS is merged host-name by host-name at the top level,
// and command_line is kept from o once set.
func (o Options) Merge(overlay Options) Options {
	out := o.Clone()
	for k, v := range overlay {
		switch k {
		case KeyCommandLine:
			if _, ok := out[k]; ok {
				continue
			}
			out[k] = v
		case KeyHosts:
			out[k] = mergeHosts(AsMapping(out[k]), AsMapping(v))
		default:
			out[k] = v
		}
	}
	return out
}

func mergeHosts(base, overlay Options) Options {
	out := base.cloneTopLevel()
	for name, entry := range overlay {
		out[name] = entry
	}
	return out
}

// AsString reads v as a string. Non-string scalars are rendered with their
// natural formatting; sequences and mappings yield "".
func AsString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case fmt.Stringer:
		return val.String()
	default:
		return ""
	}
}

// AsBool reads v as a boolean. Strings are parsed leniently ("true", "1",
// "yes" are true); anything unrecognized is false.
func AsBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		switch val {
		case "true", "1", "yes":
			return true
		}
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
		return false
	default:
		return false
	}
}

// AsStringList reads v as an ordered sequence of strings. YAML decodes
// sequences as []any, so both slice shapes are accepted. Scalars are not
// split here; that is SplitArg's job.
func AsStringList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, e := range val {
			out = append(out, AsString(e))
		}
		return out
	default:
		if s := AsString(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

// AsMapping reads v as a nested option mapping. Returns nil when v is not a
// mapping; nil is safe to range over and to cloneTopLevel.
func AsMapping(v any) Options {
	switch val := v.(type) {
	case nil:
		return nil
	case Options:
		return val
	case map[string]any:
		return Options(val)
	default:
		return nil
	}
}
