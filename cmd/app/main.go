package main

import (
	"os"

	"github.com/spf13/cobra"

	"aitrip/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "aitrip",
	Short: "AI trip planner backend",
	Long:  "aitrip serves the trip planning API and offers schema and planning utilities from the command line.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadDotEnv()
	},
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(voiceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
