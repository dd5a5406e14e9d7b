package main

import (
	"fmt"
	"os"

	"github.com/JRed1989/ambari/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "logstate",
	Short: "logstate replays actions against the log-search view state",
	Long: `logstate builds the log-search application store, applies scripted
actions to it and prints the resulting state.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func globalOptions(cmd *cobra.Command) cli.GlobalOptions {
	configPath, _ := cmd.Flags().GetString("config")
	logLevel, _ := cmd.Flags().GetString("log-level")
	return cli.GlobalOptions{ConfigPath: configPath, LogLevel: logLevel}
}

func init() {
	rootCmd.PersistentFlags().String("config", "logstate.yaml", "Path to the config file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides the config file")
}
