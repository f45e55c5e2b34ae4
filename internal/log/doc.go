// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// This package extends slog to provide:
//   - Automatic sanitization of sensitive values (API keys, tokens, passwords)
//   - Configurable log levels with verbose mode support
//   - Consistent log formatting across the application
//
// # Security Features
//
// The SecureHandler automatically sanitizes sensitive information in log output:
//   - HTTP headers (Authorization, Cookie, X-Api-Key, hibp-api-key)
//   - Secret values detected by pattern matching (passwords, tokens, keys)
//   - Lookup-service credentials and the local master encryption key
//   - Session identifiers and authentication tokens
//
// Even in verbose mode, sensitive values are masked to prevent accidental
// exposure of secrets in logs that may be shared or stored. This matters
// for a tool whose input includes a password and whose requests carry
// per-service API keys.
//
// # Usage
//
//	// Create a secure logger
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//
//	// Use as a standard slog.Logger
//	logger.Info("request sent",
//	    "hibp-api-key", "abc123",  // Will be sanitized to "***REDACTED***"
//	    "url", "https://haveibeenpwned.com/api/v3",
//	)
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
