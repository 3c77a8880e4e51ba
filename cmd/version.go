package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of rigctl",
		Long:  `All software has versions. This is rigctl's.`,
		Run: func(cmd *cobra.Command, args []string) {
			// The version template in root.go handles -v/--version; having
			// an explicit command is standard.
			fmt.Printf("rigctl version %s\n", rootCmd.Version)
		},
	}
}
