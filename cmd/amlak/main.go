package main

import (
	"os"

	"github.com/spf13/cobra"

	"amlak/internal/interfaces/cli/checkdeadlines"
	"amlak/internal/interfaces/cli/migrate"
	"amlak/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "amlak",
		Short: "Amlak - permit approval and deadline escalation service",
		Long:  `Amlak is the permit approval core of a property-management CRM: workflow routing, deadline escalation, and the HTTP API in one binary.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		checkdeadlines.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
