package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to use
// errors.Is() for programmatic error handling while still providing
// human-readable messages. Using errors.New() here rather than fmt.Errorf()
// because we don't need to include dynamic values in these messages.
var (
	// ErrNoName is returned when no full name is specified.
	// The name is required because it drives the social mention and
	// web search queries.
	ErrNoName = errors.New("no name specified: provide --name or a --profile")

	// ErrNoEmail is returned when no email address is specified.
	// At least one email is needed for the breach and reputation lookups.
	ErrNoEmail = errors.New("no email specified: provide --email, --emails, or a --profile")

	// ErrInvalidTimeout is returned when the source timeout is not positive.
	// A timeout of zero or negative would cause immediate request failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidScanDelay is returned when the scan delay is negative.
	// A negative delay is invalid; use 0 for no pause between passes.
	ErrInvalidScanDelay = errors.New("invalid scan delay: must be non-negative")

	// ErrInvalidWebResultLimit is returned when the web result limit is
	// negative. Use 0 to fall back to the default limit.
	ErrInvalidWebResultLimit = errors.New("invalid web result limit: must be non-negative")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")
)
