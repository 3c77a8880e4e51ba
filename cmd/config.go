package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config --hosts <hosts.yaml> [flags]",
		Short: "Print the fully resolved run configuration as YAML",
		Long: `Resolves the run configuration exactly as 'rigctl run' would — merging
presets, the options file, the hosts file, flags, and RIGCTL_* environment
variables, then normalizing and validating the result — and prints the final
mapping as YAML. Useful for checking which layer won for a given key.`,
		RunE: runConfig,
	}
	addResolveFlags(cmd)
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	cliOpts := collectFlagOptions(cmd)
	initLogging(cliOpts)

	resolved, err := newResolver(cliOpts).Resolve()
	if err != nil {
		return fmt.Errorf("failed to resolve run configuration: %w", err)
	}

	data, err := yaml.Marshal(resolved)
	if err != nil {
		return fmt.Errorf("failed to render resolved configuration: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
