package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "tpfx-journal",
	Short: "Trade journal with calendar, stats and AI monthly analysis",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
