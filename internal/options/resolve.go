package options

import (
	"strings"

	"rigctl/pkg/logging"
)

// Source produces a raw option mapping from one configuration source (the
// environment, command-line flags, the options file, or the hosts file).
// How it obtains its data is its own business; the resolver only consumes
// the mapping shape.
type Source interface {
	Parse() (Options, error)
}

// Resolver resolves the final run configuration from the layered sources.
// Any nil source contributes an empty layer. HostsPass, when set, runs the
// host validation/repair pass over the merged and normalized mapping; the
// run command wires it to hosts.Validate.
type Resolver struct {
	// Argv is the literal invocation (program name plus arguments),
	// recorded under command_line before any merge happens.
	Argv []string

	CLI         Source
	OptionsFile Source
	HostsFile   Source
	Env         Source

	HostsPass func(Options) (Options, error)
}

// Resolve merges all layers, normalizes the result, and runs the host pass.
// The returned mapping is the sole artifact handed to the rest of the tool;
// the first violated invariant aborts with a descriptive error instead.
func (r *Resolver) Resolve() (Options, error) {
	cli, err := parseLayer(r.CLI)
	if err != nil {
		return nil, err
	}
	fileOpts, err := parseLayer(r.OptionsFile)
	if err != nil {
		return nil, err
	}
	hostsOpts, err := parseLayer(r.HostsFile)
	if err != nil {
		return nil, err
	}
	env, err := parseLayer(r.Env)
	if err != nil {
		return nil, err
	}

	merged := Presets()
	merged[KeyCommandLine] = strings.Join(r.Argv, " ")

	// The hosts file owns host topology, so it lands on top of the
	// options-file/CLI pair; the CLI and environment are then reapplied so
	// their scalar overrides still win.
	merged = merged.Merge(fileOpts.Merge(cli))
	merged = merged.Merge(hostsOpts)
	merged = merged.Merge(cli)
	merged = merged.Merge(env)
	logging.Debug("options", "merged %d option keys from %d layers", len(merged), 5)

	merged, err = Normalize(merged)
	if err != nil {
		return nil, err
	}

	if r.HostsPass != nil {
		merged, err = r.HostsPass(merged)
		if err != nil {
			return nil, err
		}
	}

	logging.Debug("options", "resolved run configuration")
	return merged, nil
}

func parseLayer(s Source) (Options, error) {
	if s == nil {
		return Options{}, nil
	}
	return s.Parse()
}
