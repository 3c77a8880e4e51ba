package hosts

import (
	"rigctl/internal/options"
	"rigctl/internal/platform"
	"rigctl/internal/validate"
)

// Host is one named machine participating in a test run, decoded from its
// raw entry in the HOSTS mapping. Platform is required; everything else is
// optional. Entry keys the decoder does not know about are preserved and
// written back untouched.
type Host struct {
	Name       string
	Platform   platform.Platform
	Roles      []string
	Hypervisor string
	User       string
	SSH        options.Options
	Tags       options.Options

	extra options.Options
}

// knownEntryKeys are the host-entry keys decoded into named Host fields.
var knownEntryKeys = map[string]struct{}{
	"platform":   {},
	"roles":      {},
	"hypervisor": {},
	"user":       {},
	"ssh":        {},
	"host_tags":  {},
}

// decodeHost validates and decodes one raw host entry. A missing or empty
// platform is the one construction-time failure.
func decodeHost(name string, entry options.Options) (*Host, error) {
	raw := options.AsString(entry["platform"])
	if raw == "" {
		return nil, validate.Malformedf(name, "host does not have a platform specified")
	}
	h := &Host{
		Name:       name,
		Platform:   platform.Parse(raw),
		Roles:      options.AsStringList(entry["roles"]),
		Hypervisor: options.AsString(entry["hypervisor"]),
		User:       options.AsString(entry["user"]),
		SSH:        options.AsMapping(entry["ssh"]),
		Tags:       options.AsMapping(entry["host_tags"]),
		extra:      options.Options{},
	}
	for k, v := range entry {
		if _, known := knownEntryKeys[k]; !known {
			h.extra[k] = v
		}
	}
	return h, nil
}

// HasRole reports whether the host carries the given role.
func (h *Host) HasRole(role string) bool {
	for _, r := range h.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// addRole appends a role unless the host already carries it.
func (h *Host) addRole(role string) {
	if !h.HasRole(role) {
		h.Roles = append(h.Roles, role)
	}
}

// toEntry encodes the repaired host back into its mapping form.
func (h *Host) toEntry() options.Options {
	entry := options.Options{}
	for k, v := range h.extra {
		entry[k] = v
	}
	entry["platform"] = h.Platform
	entry["roles"] = h.Roles
	if h.Hypervisor != "" {
		entry["hypervisor"] = h.Hypervisor
	}
	if h.User != "" {
		entry["user"] = h.User
	}
	if len(h.SSH) > 0 {
		entry["ssh"] = h.SSH
	}
	if len(h.Tags) > 0 {
		entry["host_tags"] = h.Tags
	}
	return entry
}
