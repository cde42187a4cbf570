// Package main provides the nocopy CLI, a client for NocoDB instances.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:          "nocopy",
		Short:        "CLI tools for NocoDB",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(verbose)
			if err := godotenv.Load(); err == nil {
				slog.Debug("loaded .env file")
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	cmd.AddCommand(
		newAggregateCmd(),
		newCountCmd(),
		newFindFirstCmd(),
		newGroupByCmd(),
		newInitCmd(),
		newPullCmd(),
		newPurgeCmd(),
		newPushCmd(),
		newSumCmd(),
		newTemplateCmd(),
		newUpdateCmd(),
		newUpdateFieldCmd(),
	)
	return cmd
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
