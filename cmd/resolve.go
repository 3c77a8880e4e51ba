package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"rigctl/internal/hosts"
	"rigctl/internal/options"
	"rigctl/internal/sources"
	"rigctl/pkg/logging"
)

// flagToOption maps each resolving flag onto its option key. Only flags the
// user actually set end up in the command-line layer, so defaults declared
// here never shadow the options file or presets.
var flagToOption = map[string]string{
	"hosts":          "hosts_file",
	"options-file":   "options_file",
	"type":           "type",
	"fail-mode":      "fail_mode",
	"preserve-hosts": "preserve_hosts",
	"tests":          "tests",
	"pre-suite":      "pre_suite",
	"post-suite":     "post_suite",
	"helper":         "helper",
	"load-path":      "load_path",
	"install":        "install",
	"modules":        "modules",
	"keyfile":        "keyfile",
	"tag-includes":   "tag_includes",
	"tag-excludes":   "tag_excludes",
	"log-level":      "log_level",
	"quiet":          "quiet",
	"dry-run":        "dry_run",
	"provision":      "provision",
	"color":          "color",
	"repo":           "repo",
}

// addResolveFlags declares the flags shared by every command that resolves
// a run configuration.
func addResolveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("hosts", "", "Path to the hosts-definition YAML file")
	f.String("options-file", "", "Path to an additional options YAML file")
	f.String("type", "pe", "Installation type driving the run (pe or git)")
	f.String("fail-mode", "slow", "How to react to a failing test (fast, slow, stop)")
	f.String("preserve-hosts", "never", "When to keep provisioned hosts (always, onfail, onpass, never)")
	f.String("tests", "", "Comma-separated test files or directories to run")
	f.String("pre-suite", "", "Comma-separated setup files or directories")
	f.String("post-suite", "", "Comma-separated teardown files or directories")
	f.String("helper", "", "Comma-separated helper files loaded before the suites")
	f.String("load-path", "", "Comma-separated extra library load paths")
	f.String("install", "", "Comma-separated repositories to install (supports PUPPET/<ref> shorthand)")
	f.String("modules", "", "Comma-separated module paths")
	f.String("keyfile", "", "SSH private key used for every host")
	f.String("tag-includes", "", "Comma-separated tags a test must carry to run")
	f.String("tag-excludes", "", "Comma-separated tags that exclude a test from the run")
	f.String("log-level", "", "Log verbosity (debug, info, warn, error)")
	f.Bool("quiet", false, "Suppress non-essential output")
	f.Bool("dry-run", false, "Resolve and validate without touching any host")
	f.Bool("provision", true, "Provision hosts before the run")
	f.Bool("color", true, "Colorize CLI output")
	f.String("repo", "", "Base repository URL for install shorthand expansion")
}

// collectFlagOptions assembles the command-line layer from the flags the
// user set on this invocation.
func collectFlagOptions(cmd *cobra.Command) options.Options {
	out := options.Options{}
	cmd.Flags().Visit(func(f *pflag.Flag) {
		key, ok := flagToOption[f.Name]
		if !ok {
			return
		}
		out[key] = f.Value.String()
	})
	return out
}

// newResolver wires the source readers for one invocation. The hosts and
// options file paths come from the flags or, failing that, the environment.
func newResolver(cliOpts options.Options) *options.Resolver {
	hostsPath := options.AsString(cliOpts["hosts_file"])
	if hostsPath == "" {
		hostsPath = os.Getenv(sources.EnvPrefix + "HOSTS_FILE")
	}
	optionsPath := options.AsString(cliOpts["options_file"])
	if optionsPath == "" {
		optionsPath = os.Getenv(sources.EnvPrefix + "OPTIONS_FILE")
	}
	return &options.Resolver{
		Argv:        os.Args,
		CLI:         &sources.Static{Values: cliOpts},
		OptionsFile: &sources.File{Path: optionsPath},
		HostsFile:   &sources.HostsFile{Path: hostsPath},
		Env:         &sources.Env{},
		HostsPass:   hosts.Validate,
	}
}

// initLogging configures logging from the command-line layer before the
// resolver runs, so the pipeline's own debug logs are visible. The resolved
// log_level may differ when it comes from a file or the environment; the
// caller re-initializes afterwards.
func initLogging(cliOpts options.Options) {
	level := logging.ParseLevel(options.AsString(cliOpts["log_level"]))
	logging.Init(level, os.Stderr)
}
