package hosts

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"rigctl/internal/options"
	"rigctl/internal/validate"
	"rigctl/pkg/logging"
)

// restrictedPlatforms matches platform families that cannot run server
// infrastructure (Windows and the legacy el-4 line).
var restrictedPlatforms = regexp.MustCompile(`windows|el-4`)

// restrictedRoles are the roles a restricted platform may not carry.
var restrictedRoles = []string{"master", "database", "dashboard"}

// cloudHypervisor provisions through a cloud provider and needs its
// credentials YAML; fogHypervisors need a .fog credentials file.
const cloudHypervisor = "blimpy"

var fogHypervisors = []string{"aix", "solaris", "vcloud"}

// For mocking in tests
var osUserHomeDir = os.UserHomeDir

// Validate walks the HOSTS mapping of a merged run configuration, repairs
// every entry (role assignment, user override, tag merging), enforces the
// cross-host invariants, and returns the configuration with the repaired
// mapping. The first violation aborts with a descriptive error.
func Validate(opts options.Options) (options.Options, error) {
	out := opts.Clone()

	raw := options.AsMapping(out[options.KeyHosts])
	if len(raw) == 0 {
		return nil, validate.Malformedf(options.KeyHosts, "no hosts defined")
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	// A keyfile on the top level replaces the SSH key list for every host.
	if keyfile := options.AsString(out["keyfile"]); keyfile != "" {
		ssh := options.AsMapping(out["ssh"]).Clone()
		ssh["keys"] = []string{keyfile}
		out["ssh"] = ssh
	}

	globalTags := options.AsMapping(out["host_tags"])

	decoded := make([]*Host, 0, len(names))
	for _, name := range names {
		h, err := decodeHost(name, options.AsMapping(raw[name]))
		if err != nil {
			return nil, err
		}
		if err := checkRestrictedPlatform(h); err != nil {
			return nil, err
		}
		if u := options.AsString(h.SSH["user"]); u != "" {
			h.User = u
		}
		h.Tags = mergeTags(globalTags, h.Tags)
		decoded = append(decoded, h)
	}

	if err := assignDefault(decoded); err != nil {
		return nil, err
	}

	// The lone host of a single-host run is the implicit target for
	// everything, so the master-count invariant only binds multi-host sets.
	if len(decoded) > 1 {
		masters := 0
		for _, h := range decoded {
			if h.HasRole("master") {
				masters++
			}
		}
		if err := validate.ExactlyOneMaster(masters); err != nil {
			return nil, err
		}
	}

	for _, h := range decoded {
		if err := validate.FrictionlessRoles(h.Roles); err != nil {
			return nil, fmt.Errorf("host %s: %w", h.Name, err)
		}
	}

	if err := checkHypervisorFiles(out, decoded); err != nil {
		return nil, err
	}

	repaired := options.Options{}
	for _, h := range decoded {
		repaired[h.Name] = h.toEntry()
	}
	out[options.KeyHosts] = repaired
	logging.Debug("hosts", "validated %d host(s)", len(decoded))
	return out, nil
}

// checkRestrictedPlatform rejects server roles on platforms that cannot
// host them.
func checkRestrictedPlatform(h *Host) error {
	if !restrictedPlatforms.MatchString(h.Platform.String()) {
		return nil
	}
	for _, role := range h.Roles {
		for _, banned := range restrictedRoles {
			if role == banned {
				return validate.Invariantf(h.Name, "role %q is not supported on platform %q", role, h.Platform)
			}
		}
	}
	return nil
}

// assignDefault checks the at-most-one-default invariant and, when no host
// carries the default role yet, picks one: the sole master if exactly one
// exists, otherwise the only host of a single-host set, otherwise nobody.
func assignDefault(hs []*Host) error {
	var defaults []string
	var masters []*Host
	for _, h := range hs {
		if h.HasRole("default") {
			defaults = append(defaults, h.Name)
		}
		if h.HasRole("master") {
			masters = append(masters, h)
		}
	}
	if err := validate.AtMostOneDefault(defaults); err != nil {
		return err
	}
	if len(defaults) == 1 {
		return nil
	}
	switch {
	case len(masters) == 1:
		masters[0].addRole("default")
	case len(hs) == 1:
		hs[0].addRole("default")
	}
	return nil
}

// mergeTags layers a host's own tags over the global tag mapping.
func mergeTags(global, own options.Options) options.Options {
	merged := options.Options{}
	for k, v := range global {
		merged[k] = v
	}
	for k, v := range own {
		merged[k] = v
	}
	return merged
}

// checkHypervisorFiles requires the credential files each distinct
// hypervisor in the host set depends on.
func checkHypervisorFiles(opts options.Options, hs []*Host) error {
	seen := map[string]struct{}{}
	for _, h := range hs {
		if h.Hypervisor != "" {
			seen[h.Hypervisor] = struct{}{}
		}
	}
	if _, ok := seen[cloudHypervisor]; ok {
		path := options.AsString(opts["ec2_yaml"])
		if err := validate.RequireFile(path, cloudHypervisor+" hypervisor"); err != nil {
			return err
		}
	}
	for _, hyp := range fogHypervisors {
		if _, ok := seen[hyp]; !ok {
			continue
		}
		path := expandHome(options.AsString(opts["dot_fog"]))
		if err := validate.RequireFile(path, hyp+" hypervisor"); err != nil {
			return err
		}
	}
	return nil
}

// expandHome resolves a leading ~/ against the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := osUserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
