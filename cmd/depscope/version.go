package main

import (
	"github.com/spf13/cobra"

	"depscope/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	// Skips config loading so the command works outside a workspace.
	PersistentPreRunE: func(*cobra.Command, []string) error { return ParseFormat(formatFlag) },
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(newResponse(nil, version.Get()))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
