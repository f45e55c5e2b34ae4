package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Service names used as credential store keys.
const (
	// ServiceHIBP identifies the Have I Been Pwned breach database.
	ServiceHIBP = "hibp"

	// ServiceEmailRep identifies the EmailRep reputation service.
	ServiceEmailRep = "emailrep"

	// ServiceSherlock identifies the self-hosted username-presence relay.
	// The relay needs no API key, so this name never holds a credential;
	// it exists so the relay can be addressed uniformly in configuration.
	ServiceSherlock = "sherlock"

	// ServiceSocialSearcher identifies the Social Searcher mention API.
	ServiceSocialSearcher = "socialsearcher"

	// ServiceSerpAPI identifies the SerpAPI web search service.
	ServiceSerpAPI = "serpapi"
)

// defaultTimeout bounds a single adapter request. Each adapter derives a
// child context with this deadline from the pass context, so one slow
// service cannot stall a whole pass.
const defaultTimeout = 30 * time.Second

// maxBodySize limits response bodies to prevent memory exhaustion from a
// misbehaving service. 4MB is generous for every API this package talks to.
const maxBodySize = 4 * 1024 * 1024

// defaultUserAgent identifies the scanner to the services it queries.
const defaultUserAgent = "exposcan"

// Doer executes a single HTTP request. *http.Client satisfies it.
//
// Design decision: Adapters depend on this one-method interface instead of
// *http.Client because:
//  1. Tests can inject a stub without opening sockets
//  2. Callers keep control of transport concerns (proxies, pooling)
//  3. Adapters cannot reach mutable client state they do not need
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// CredentialReader provides read access to stored API credentials.
// The credentials package provides the production implementation.
type CredentialReader interface {
	// Get returns the credential stored for the service.
	Get(service string) (string, error)

	// Has reports whether a credential is stored for the service.
	Has(service string) bool
}

// settings holds the knobs shared by every adapter. Each constructor fills
// in its own defaults before applying options.
type settings struct {
	// baseURL is the service endpoint, overridable for tests and
	// self-hosted deployments.
	baseURL string

	// timeout is the per-request deadline derived from the pass context.
	timeout time.Duration

	// userAgent is sent on every request.
	userAgent string

	// logger receives the Debug/Warn records adapters emit when they
	// take an absence or degradation path.
	logger *slog.Logger

	// maxResults caps per-request result counts for adapters that page.
	// Only the web search adapter reads it.
	maxResults int
}

func defaultSettings(baseURL string) settings {
	return settings{
		baseURL:    baseURL,
		timeout:    defaultTimeout,
		userAgent:  defaultUserAgent,
		logger:     slog.Default(),
		maxResults: MaxWebResults,
	}
}

// Option configures an adapter at construction time.
type Option func(*settings)

// WithBaseURL overrides the service endpoint. Used by tests and by
// deployments that proxy a service through their own host.
func WithBaseURL(baseURL string) Option {
	return func(s *settings) {
		s.baseURL = baseURL
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) {
		s.timeout = timeout
	}
}

// WithUserAgent overrides the User-Agent header sent to the service.
func WithUserAgent(userAgent string) Option {
	return func(s *settings) {
		s.userAgent = userAgent
	}
}

// WithLogger sets the logger adapters record absence and degradation on.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMaxResults caps per-request result counts. Values below one fall
// back to the adapter's default.
func WithMaxResults(maxResults int) Option {
	return func(s *settings) {
		if maxResults > 0 {
			s.maxResults = maxResults
		}
	}
}

// decodeJSON reads at most maxBodySize bytes from the response body and
// unmarshals them into v. Unknown fields are dropped, matching the adapter
// contract of tolerating provider schema growth.
func decodeJSON(resp *http.Response, v any) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

// drainClose discards the remaining body and closes it so the underlying
// connection can be reused.
func drainClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodySize))
	_ = resp.Body.Close()
}

// withDeadline derives the per-request context from the pass context.
func withDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
