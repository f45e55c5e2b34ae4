package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/exposcan/exposcan/internal/config"
	"github.com/exposcan/exposcan/internal/credentials"
	"github.com/exposcan/exposcan/internal/database"
	"github.com/exposcan/exposcan/internal/log"
	"github.com/exposcan/exposcan/internal/model"
	"github.com/exposcan/exposcan/internal/report"
	"github.com/exposcan/exposcan/internal/scan"
	"github.com/exposcan/exposcan/internal/source"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a person's digital exposure",
		Long: `Scan queries public lookup services for traces of a person's identity.

Each email address is checked against:
- Known data breaches (Have I Been Pwned)
- Email reputation and suspicious-activity signals (EmailRep)
- Username presence across social networks (Sherlock relay)
- Public mentions on social platforms (Social Searcher)
- Web search results (SerpAPI)

Services without a stored API key are skipped; store keys with
"exposcan keys set <service> <key>".

Examples:
  # Scan one person
  exposcan scan --name "Jane Doe" --email jane@example.com

  # Scan additional addresses and narrow web search by location
  exposcan scan -n "Jane Doe" -e jane@example.com \
    --emails jane.doe@example.org --location Berlin

  # Check a password against breach data (analyzed locally only)
  exposcan scan -n "Jane Doe" -e jane@example.com --password 'hunter2'

  # Use a saved profile from .exposcan
  exposcan scan --profile jane

  # Output a Markdown report to a file and save to history
  exposcan scan -n "Jane Doe" -e jane@example.com -m -o report.md --save

Profile file (.exposcan) example:
  defaults:
    location: "Berlin"
  profiles:
    jane:
      name: "Jane Doe"
      emails:
        - jane@example.com
        - jane.doe@example.org`,
		Args: cobra.NoArgs,
		RunE: runScanCmd,
	}

	// Identity flags
	cmd.Flags().StringP("name", "n", "", "Full name of the person to scan")
	cmd.Flags().StringP("email", "e", "", "Primary email address to scan")
	cmd.Flags().StringSlice("emails", nil, "Additional email addresses to scan")
	cmd.Flags().StringP("location", "l", "", "City or region to narrow web searches")
	cmd.Flags().String("password", "", "Password to analyze locally (never sent to any service)")

	// Profile flags
	cmd.Flags().StringP("profile", "p", "", "Saved profile name from the profile file")
	cmd.Flags().String("profile-file", "",
		"Profile file path (default: .exposcan in current or home directory)")

	// Scan behavior flags
	cmd.Flags().DurationP("timeout", "t", config.DefaultSourceTimeout,
		"Per-request timeout for each lookup service")
	cmd.Flags().Duration("delay", config.DefaultScanDelay,
		"Pause between per-email scan passes")
	cmd.Flags().Int("max-web-results", config.DefaultMaxWebResults,
		"Maximum web search results kept per email")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	// History flags
	cmd.Flags().BoolP("save", "s", false,
		"Save the report to the local history database")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, _ []string) error {
	// Build config from flags and optional profile
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up sanitizing structured logging
	verbose := getVerboseFlag(cmd)
	cfg.Verbose = verbose
	logger := log.NewSecureLogger(os.Stderr, verbose)
	if getBoolFlag(cmd, "log-json") {
		logger = log.NewSecureJSONLogger(os.Stderr, verbose)
	}
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	return getBoolFlag(cmd, "verbose")
}

// getBoolFlag retrieves a bool flag from the command or its parent.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		value, err = cmd.Root().PersistentFlags().GetBool(name)
		if err != nil {
			return false
		}
	}
	return value
}

// buildConfig creates a Config from cobra command flags, filling missing
// identity fields from a saved profile when one is selected.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.Name, err = cmd.Flags().GetString("name")
	if err != nil {
		return nil, err
	}

	primaryEmail, err := cmd.Flags().GetString("email")
	if err != nil {
		return nil, err
	}
	additionalEmails, err := cmd.Flags().GetStringSlice("emails")
	if err != nil {
		return nil, err
	}
	if primaryEmail != "" {
		cfg.Emails = append([]string{primaryEmail}, additionalEmails...)
	} else {
		cfg.Emails = additionalEmails
	}

	cfg.Location, err = cmd.Flags().GetString("location")
	if err != nil {
		return nil, err
	}

	cfg.Password, err = cmd.Flags().GetString("password")
	if err != nil {
		return nil, err
	}

	cfg.ProfileName, err = cmd.Flags().GetString("profile")
	if err != nil {
		return nil, err
	}
	cfg.ProfileFilePath, err = cmd.Flags().GetString("profile-file")
	if err != nil {
		return nil, err
	}
	if err := applyProfile(cfg); err != nil {
		return nil, err
	}

	cfg.SourceTimeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.ScanDelay, err = cmd.Flags().GetDuration("delay")
	if err != nil {
		return nil, err
	}

	cfg.MaxWebResults, err = cmd.Flags().GetInt("max-web-results")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	cfg.SaveToDB, err = cmd.Flags().GetBool("save")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyProfile fills identity fields not given on the command line from
// the selected profile. Explicit flags always win over profile values.
//
// If the user explicitly selected a profile or a profile file, a missing
// file or profile is an error. With no selection, the profile file is
// simply not consulted.
func applyProfile(cfg *config.Config) error {
	if cfg.ProfileName == "" && cfg.ProfileFilePath == "" {
		return nil
	}

	path := config.FindProfileFile(cfg.ProfileFilePath)
	if path == "" {
		if cfg.ProfileFilePath != "" {
			return fmt.Errorf("profile file not found: %s", cfg.ProfileFilePath)
		}
		return fmt.Errorf("profile %q requested but no profile file found", cfg.ProfileName)
	}

	file, err := config.LoadProfileFile(path)
	if err != nil {
		return fmt.Errorf("failed to load profile file %s: %w", path, err)
	}

	if cfg.ProfileName == "" {
		return nil
	}
	profile, ok := file.GetProfile(cfg.ProfileName)
	if !ok {
		return fmt.Errorf("profile %q not found in %s", cfg.ProfileName, path)
	}

	if cfg.Name == "" {
		cfg.Name = profile.Name
	}
	if len(cfg.Emails) == 0 {
		cfg.Emails = profile.Emails
	}
	if cfg.Location == "" {
		cfg.Location = profile.Location
	}
	return nil
}

// runScan executes the scan.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting scan",
		"emails", len(cfg.Emails),
		"saveToDB", cfg.SaveToDB,
	)

	// Open the credential store; services without a key are skipped
	creds, err := credentials.Open(config.XDGDataDir(), config.XDGConfigDir())
	if err != nil {
		return fmt.Errorf("failed to open credential store: %w", err)
	}
	defer creds.Close()

	input := model.UserInput{
		Name:         cfg.Name,
		PrimaryEmail: cfg.Emails[0],
		Location:     cfg.Location,
		Password:     cfg.Password,
	}
	if len(cfg.Emails) > 1 {
		input.AdditionalEmails = cfg.Emails[1:]
	}

	coordinator := newCoordinator(cfg, creds, logger)

	fmt.Printf("Scanning %d address(es) for %s...\n", len(cfg.Emails), cfg.Name)
	startTime := time.Now()

	aggregated, err := coordinator.Scan(ctx, input)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Scan completed in %s\n\n", elapsed.Round(time.Millisecond))

	vulnReport := report.NewBuilder().Build(input, *aggregated)

	if err := outputReport(cfg, vulnReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// Save to history database if enabled
	if cfg.SaveToDB {
		if err := saveReport(ctx, cfg, vulnReport, logger); err != nil {
			logger.Error("failed to save report", "error", err)
		}
	}

	return nil
}

// newCoordinator wires the credential store and HTTP client into the five
// lookup adapters and the scan coordinator.
func newCoordinator(cfg *config.Config, creds *credentials.Store, logger *slog.Logger) *scan.Coordinator {
	httpClient := &http.Client{Timeout: cfg.SourceTimeout}

	sourceOpts := []source.Option{
		source.WithTimeout(cfg.SourceTimeout),
		source.WithUserAgent(cfg.UserAgent),
		source.WithLogger(logger),
	}
	webOpts := append([]source.Option{source.WithMaxResults(cfg.MaxWebResults)}, sourceOpts...)

	sources := scan.Sources{
		Breach:     source.NewBreachSource(httpClient, creds, sourceOpts...),
		Reputation: source.NewReputationSource(httpClient, creds, sourceOpts...),
		Username:   source.NewUsernameSource(httpClient, creds, sourceOpts...),
		Social:     source.NewSocialSource(httpClient, creds, sourceOpts...),
		Web:        source.NewWebSearchSource(httpClient, creds, webOpts...),
	}

	return scan.NewCoordinator(sources,
		scan.WithPassInterval(cfg.ScanDelay),
		scan.WithLogger(logger),
		scan.WithProgress(func(email string, done, total int, failed bool) {
			status := "done"
			if failed {
				status = "failed"
			}
			fmt.Printf("[%d/%d] %s: %s\n", done, total, email, status)
		}),
	)
}

// outputReport outputs the vulnerability report in the requested format.
func outputReport(cfg *config.Config, vulnReport *model.VulnerabilityReport) error {
	// Determine output destination
	var output *os.File
	if cfg.ReportFile != "" {
		// Create directories if they don't exist
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/overwrite the output file with secure permissions (0600)
		// Reports contain breach data that should only be readable by the owner
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (detailed report wrapped with version metadata so
	// downstream consumers can detect schema changes)
	if cfg.JSONReport {
		writer := report.NewVersionedJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(vulnReport)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(vulnReport)
		return err
	}

	// Human-readable report (default)
	writer := report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	_, err := writer.Write(vulnReport)
	return err
}

// saveReport persists the report to the history database and prints the
// risk drift against the previous scan of the same address, if any.
func saveReport(ctx context.Context, cfg *config.Config, vulnReport *model.VulnerabilityReport, logger *slog.Logger) error {
	hdb, err := database.Open(cfg.DBDir)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer hdb.Close()

	if err := hdb.SaveReport(ctx, vulnReport); err != nil {
		return err
	}
	logger.Info("report saved to history", "id", vulnReport.ID)

	drift, err := hdb.DriftFor(ctx, vulnReport)
	if err != nil {
		return err
	}
	if drift == nil {
		fmt.Println("Report saved. No previous scan for this address to compare against.")
		return nil
	}

	fmt.Printf("Report saved. Compared with scan from %s:\n",
		drift.Previous.ScanDate.Format("2006-01-02"))
	fmt.Printf("  risk score: %d (%+d)\n", vulnReport.Scan.TotalRiskScore, drift.ScoreDelta)
	if drift.LevelChanged {
		fmt.Printf("  risk level: %s (was %s)\n", vulnReport.Scan.RiskLevel, drift.Previous.RiskLevel)
	}
	return nil
}
