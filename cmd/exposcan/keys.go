package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/exposcan/exposcan/internal/config"
	"github.com/exposcan/exposcan/internal/credentials"
	"github.com/exposcan/exposcan/internal/source"
	"github.com/spf13/cobra"
)

// knownServices lists the credential store keys the scanner understands.
// The Sherlock relay is excluded because it needs no API key.
var knownServices = []string{
	source.ServiceHIBP,
	source.ServiceEmailRep,
	source.ServiceSocialSearcher,
	source.ServiceSerpAPI,
}

// NewKeysCmd creates the keys command with its subcommands.
func NewKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Manage API keys for the lookup services",
		Long: `Manage the API keys exposcan uses to query lookup services.

Keys are encrypted with a locally generated master key before being
stored. Services without a stored key are skipped during scans.

Known services: ` + strings.Join(knownServices, ", "),
	}

	cmd.AddCommand(newKeysSetCmd())
	cmd.AddCommand(newKeysListCmd())
	cmd.AddCommand(newKeysDeleteCmd())

	return cmd
}

// newKeysSetCmd creates the "keys set" subcommand.
func newKeysSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <service> <api-key>",
		Short: "Store an API key for a lookup service",
		Long: `Store an API key for a lookup service.

The key is encrypted at rest; the plaintext never touches the database
file.

Examples:
  exposcan keys set hibp 0123456789abcdef
  exposcan keys set serpapi my-serpapi-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, key := args[0], args[1]
			if err := validateService(service); err != nil {
				return err
			}
			if strings.TrimSpace(key) == "" {
				return errors.New("api key must not be empty")
			}

			store, err := openCredentialStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Set(service, key); err != nil {
				return fmt.Errorf("failed to store key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored API key for %s\n", service)
			return nil
		},
	}
}

// newKeysListCmd creates the "keys list" subcommand.
func newKeysListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List services with a stored API key",
		Long:  `List the lookup services that currently have an API key stored. Key values are never printed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCredentialStore()
			if err != nil {
				return err
			}
			defer store.Close()

			services, err := store.List()
			if err != nil {
				return fmt.Errorf("failed to list keys: %w", err)
			}
			if len(services) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No API keys stored.")
				return nil
			}
			for _, service := range services {
				fmt.Fprintln(cmd.OutOrStdout(), service)
			}
			return nil
		},
	}
}

// newKeysDeleteCmd creates the "keys delete" subcommand.
func newKeysDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <service>",
		Short: "Delete a stored API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := args[0]
			if err := validateService(service); err != nil {
				return err
			}

			store, err := openCredentialStore()
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Delete(service); err != nil {
				return fmt.Errorf("failed to delete key: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted API key for %s\n", service)
			return nil
		},
	}
}

// validateService checks the service name against the known services.
func validateService(service string) error {
	for _, known := range knownServices {
		if service == known {
			return nil
		}
	}
	return fmt.Errorf("unknown service %q (known: %s)", service, strings.Join(knownServices, ", "))
}

// openCredentialStore opens the credential store in the XDG directories.
func openCredentialStore() (*credentials.Store, error) {
	store, err := credentials.Open(config.XDGDataDir(), config.XDGConfigDir())
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}
	return store, nil
}
