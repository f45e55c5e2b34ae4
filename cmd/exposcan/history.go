package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/exposcan/exposcan/internal/config"
	"github.com/exposcan/exposcan/internal/database"
	"github.com/exposcan/exposcan/internal/report"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command with its subcommands.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse saved scan reports",
		Long: `Browse the scan reports saved with "exposcan scan --save".

Reports live in a local SQLite database under the XDG data directory.`,
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())

	return cmd
}

// newHistoryListCmd creates the "history list" subcommand.
func newHistoryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved scans, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return err
			}

			hdb, err := database.Open(config.XDGDataDir())
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer hdb.Close()

			scans, err := hdb.ListScans(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to list scans: %w", err)
			}
			if len(scans) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved scans. Run a scan with --save first.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tEMAIL\tRISK\tSCORE\tBREACHES")
			for _, s := range scans {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\n",
					s.ID,
					s.ScanDate.Format("2006-01-02 15:04"),
					s.Email,
					s.RiskLevel,
					s.RiskScore,
					s.BreachCount,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().Int("limit", 20, "Maximum number of scans to list")

	return cmd
}

// newHistoryShowCmd creates the "history show" subcommand.
func newHistoryShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <report-id>",
		Short: "Print a saved report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := cmd.Flags().GetBool("json")
			if err != nil {
				return err
			}

			hdb, err := database.Open(config.XDGDataDir())
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer hdb.Close()

			saved, err := hdb.GetReport(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load report: %w", err)
			}
			if saved == nil {
				return fmt.Errorf("no saved report with ID %q", args[0])
			}

			if asJSON {
				writer := report.NewVersionedJSONWriter(cmd.OutOrStdout(), getVersion(), report.WithPrettyPrint())
				_, err := writer.Write(saved)
				return err
			}
			writer := report.NewSimpleWriter(cmd.OutOrStdout())
			_, err = writer.Write(saved)
			return err
		},
	}

	cmd.Flags().BoolP("json", "j", false, "Print the report as JSON")

	return cmd
}
