// Package main provides the entry point for the exposcan CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for exposcan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exposcan",
		Short: "Digital exposure scanner for personal data",
		Long: `exposcan scans a person's digital exposure across public lookup services.

It checks known data breaches, email reputation, username presence on
social networks, public mentions, and web search results, then scores
the combined risk and builds a vulnerability report with recommended
actions.

Lookup services that need an API key are skipped silently until a key
is stored with "exposcan keys set <service> <key>".`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON for structured aggregation")

	// Add subcommands
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewKeysCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
