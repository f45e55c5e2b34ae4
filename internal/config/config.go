package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These are chosen around the rate limits and latency of the public
// lookup services the scanner talks to.
const (
	// DefaultSourceTimeout bounds each lookup-service request. 30 seconds
	// is generous enough for the slower services (SerpAPI under load,
	// a local Sherlock relay enumerating dozens of sites) without letting
	// a dead endpoint stall the whole pass.
	DefaultSourceTimeout = 30 * time.Second

	// DefaultScanDelay is the pause between per-email scan passes.
	// The free tiers of the lookup services rate-limit aggressively;
	// one request per second per service keeps us under every published
	// limit. Can be adjusted via the --delay CLI flag.
	DefaultScanDelay = 1 * time.Second

	// DefaultMaxWebResults caps how many web search results are kept per
	// scan pass. The first page of results carries nearly all the signal;
	// deeper pages are noise that inflates the report.
	DefaultMaxWebResults = 15

	// AppName is the application name used for XDG directory paths.
	AppName = "exposcan"

	// DefaultUserAgent identifies exposcan in HTTP requests.
	// Using a descriptive User-Agent is good practice and some services
	// (HIBP in particular) reject requests without one.
	DefaultUserAgent = "exposcan/1.0 (+https://github.com/exposcan/exposcan)"
)

// Config holds all configuration options for a scan run.
// This struct is designed to be populated from CLI flags and passed through
// the application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// (e.g., ScanConfig, ReportConfig) for simplicity. The number of options
// is manageable, and nesting would add complexity without significant benefit.
// If the configuration grows significantly, consider refactoring into sub-structs.
type Config struct {
	// Name is the full name of the person being scanned.
	// Required; it drives the social mention and web search queries.
	Name string

	// Emails is the list of email addresses to scan.
	// Must contain at least one address. The first entry is the primary
	// email used in the report header and history comparisons.
	Emails []string

	// Location is an optional city or region used to narrow web searches.
	Location string

	// Password is an optional password to check against breach data.
	// It never leaves the local machine; only its strength and presence
	// in known-breached data classes are evaluated.
	Password string

	// ProfileName selects a saved profile from the profile file.
	// When set, the profile's name, emails, and location fill in any
	// fields not given on the command line.
	ProfileName string

	// ProfileFilePath is the path to the profile file.
	// If empty, the tool searches for .exposcan in the current directory
	// and then in the user's home directory.
	ProfileFilePath string

	// SourceTimeout is the per-request timeout for each lookup service.
	SourceTimeout time.Duration

	// ScanDelay is the pause between per-email scan passes.
	// This is a politeness setting for the free-tier rate limits of the
	// lookup services. Lower values risk HTTP 429 responses.
	ScanDelay time.Duration

	// MaxWebResults caps how many web search results are kept per pass.
	// A value of 0 means use the default (DefaultMaxWebResults).
	MaxWebResults int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// JSONReport enables JSON report output instead of human-readable format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// DBDir is the directory path for storing the SQLite history database.
	// Defaults to the XDG data directory (~/.local/share/exposcan on Linux).
	DBDir string

	// SaveToDB indicates whether to save the report to the history
	// database for drift comparison on later scans.
	SaveToDB bool

	// UserAgent is the User-Agent header sent with HTTP requests.
	UserAgent string
}

// NewConfig creates a new Config with default values.
// All fields are set to safe, sensible defaults that work for most use cases.
// Users can override specific values after creation.
//
// Design decision: We use a constructor function instead of relying on
// zero values because many defaults are non-zero (e.g., timeouts, limits).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		SourceTimeout: DefaultSourceTimeout,
		ScanDelay:     DefaultScanDelay,
		MaxWebResults: DefaultMaxWebResults,
		UserAgent:     DefaultUserAgent,
		DBDir:         XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for exposcan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.local/share/exposcan
// On macOS: ~/Library/Application Support/exposcan
// On Windows: %LOCALAPPDATA%\exposcan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for exposcan.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/exposcan
// On macOS: ~/Library/Application Support/exposcan
// On Windows: %APPDATA%\exposcan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any scanning begins.
//
// We chose to return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	// The name drives the social and web search queries
	if c.Name == "" {
		return ErrNoName
	}

	// We must have at least one email to scan
	if len(c.Emails) == 0 {
		return ErrNoEmail
	}

	// Timeout must be positive; zero timeout would cause immediate failures
	if c.SourceTimeout <= 0 {
		return ErrInvalidTimeout
	}

	// ScanDelay must be non-negative
	if c.ScanDelay < 0 {
		return ErrInvalidScanDelay
	}

	// MaxWebResults must be non-negative; 0 means use the default
	if c.MaxWebResults < 0 {
		return ErrInvalidWebResultLimit
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}
