package main

import (
	"os"

	"github.com/spf13/cobra"

	"issuetracker/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "issuetracker",
		Short: "Issue tracker - a ticket record-management service",
		Long:  `Issue tracker is an HTTP service for creating, querying, and transitioning tickets backed by MySQL.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
