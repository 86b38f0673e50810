package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionCmd implements the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bmicalc",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "bmicalc version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
