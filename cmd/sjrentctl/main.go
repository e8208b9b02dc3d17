package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// sjrentctl is the operational companion to the API server: it runs
// migrations, seeds demo data and triggers the overdue sweep by hand.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:   "sjrentctl",
		Short: "Operational tooling for the SJRent backend",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newMigrateCommand(logger))
	rootCmd.AddCommand(newSeedCommand(logger))
	rootCmd.AddCommand(newSweepCommand(logger))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
