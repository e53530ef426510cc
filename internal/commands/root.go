package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "4muluk-cloud-bot",
	Short: "4 Muluk day-profile Telegram bot",
	Long: `Cloud Telegram bot for the 4 Muluk system.

For any calendar date it computes a composite day profile (tzolkin and
haab position, lunar phase, day classification, crowd state, bot operating
mode, biorhythms and training/nutrition guidance) and renders it as a
formatted report with inline navigation between views.

A daily scheduler sends the same report unattended to a configured chat,
and a small HTTP endpoint answers platform health probes.`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
