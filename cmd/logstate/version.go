package main

import (
	"fmt"

	"github.com/JRed1989/ambari/internal/cli"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of logstate",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "logstate version %s\n", cli.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
