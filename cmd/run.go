package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"rigctl/internal/color"
	"rigctl/internal/options"
	"rigctl/pkg/logging"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run --hosts <hosts.yaml> [flags]",
		Short: "Resolve the run configuration and drive the test run",
		Long: `Resolves the full run configuration from presets, the options file, the
hosts file, command-line flags, and RIGCTL_* environment variables, validates
the host topology, and prints the resulting run plan.

Precedence, highest first: environment, command line, hosts-file CONFIG,
options file, presets. The hosts file remains the authoritative source of
host topology.

With --dry-run the command stops after printing the plan; otherwise the
resolved configuration is handed to the execution harness.`,
		RunE: runRun,
	}
	addResolveFlags(cmd)
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	cliOpts := collectFlagOptions(cmd)
	initLogging(cliOpts)

	resolved, err := newResolver(cliOpts).Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve run configuration: %w", err)
	}

	// Level and color may have been decided by a file or the environment
	// rather than a flag.
	logging.Init(logging.ParseLevel(options.AsString(resolved["log_level"])), os.Stderr)
	color.SetEnabled(options.AsBool(resolved["color"]))

	if !options.AsBool(resolved["quiet"]) {
		printRunPlan(cmd.OutOrStdout(), resolved)
	}

	if options.AsBool(resolved["dry_run"]) {
		fmt.Fprintln(cmd.OutOrStdout(), color.Warn("dry run: no hosts were touched"))
		return nil
	}

	// The resolved mapping is the contract with the execution harness; the
	// harness takes over from here.
	logging.Info("run", "run configuration resolved, handing off %d host(s)", len(options.AsMapping(resolved[options.KeyHosts])))
	return nil
}

func printRunPlan(out io.Writer, resolved options.Options) {
	hostsMap := options.AsMapping(resolved[options.KeyHosts])
	names := make([]string, 0, len(hostsMap))
	for name := range hostsMap {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(out, "--- Run Plan ---")
	fmt.Fprintf(out, "type: %s, fail mode: %s, preserve hosts: %s\n",
		options.AsString(resolved["type"]),
		options.AsString(resolved["fail_mode"]),
		options.AsString(resolved["preserve_hosts"]))
	for _, name := range names {
		entry := options.AsMapping(hostsMap[name])
		roles := options.AsStringList(entry["roles"])
		line := fmt.Sprintf("  %s  platform=%s roles=%s", name, options.AsString(entry["platform"]), strings.Join(roles, ","))
		if hyp := options.AsString(entry["hypervisor"]); hyp != "" {
			line += " hypervisor=" + hyp
		}
		fmt.Fprintln(out, color.Success(line))
	}
	for _, k := range []string{"pre_suite", "tests", "post_suite"} {
		files := options.AsStringList(resolved[k])
		if len(files) == 0 {
			continue
		}
		fmt.Fprintf(out, "%s (%d):\n", k, len(files))
		for _, f := range files {
			fmt.Fprintln(out, color.Muted("  "+f))
		}
	}
}
