package main

import (
	"github.com/JRed1989/ambari/internal/cli"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Apply an action script to a fresh store and print the final state",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		banner, _ := cmd.Flags().GetBool("banner")
		metrics, _ := cmd.Flags().GetBool("metrics")

		return cli.RunReplay(cli.ReplayOptions{
			GlobalOptions: globalOptions(cmd),
			ScriptPath:    args[0],
			Format:        format,
			Banner:        banner,
			Metrics:       metrics,
		}, cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().StringP("format", "f", "", "Output format: yaml, json, markdown or text (default markdown on a terminal, yaml otherwise)")
	replayCmd.Flags().Bool("banner", false, "Print a banner before the state")
	replayCmd.Flags().Bool("metrics", false, "Print dispatch counters after the state")
}
