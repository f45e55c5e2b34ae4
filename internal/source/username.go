package source

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/exposcan/exposcan/internal/model"
)

// defaultUsernameBaseURL is the self-hosted username-presence relay.
// The relay wraps the sherlock CLI behind a small HTTP API; it runs on
// the operator's own host, so the default points at localhost.
const defaultUsernameBaseURL = "http://127.0.0.1:8989"

// UsernameSource searches social networks for a username derived from the
// scanned email address.
//
// The relay needs no API key. The adapter's absence path is an unusable
// handle instead: all-digit local parts match far too many unrelated
// accounts, so the caller passes an empty username for those and the
// search is skipped.
type UsernameSource struct {
	doer  Doer
	creds CredentialReader
	settings
}

// NewUsernameSource creates a username-presence adapter.
func NewUsernameSource(doer Doer, creds CredentialReader, opts ...Option) *UsernameSource {
	s := &UsernameSource{
		doer:     doer,
		creds:    creds,
		settings: defaultSettings(defaultUsernameBaseURL),
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

// usernameSearchRequest is the relay's request body.
type usernameSearchRequest struct {
	Username string `json:"username"`
}

// usernameSearchResponse is the relay's response body.
type usernameSearchResponse struct {
	Username string `json:"username"`
	Found    []struct {
		Site string `json:"site"`
		URL  string `json:"url"`
	} `json:"found"`
}

// Lookup searches for the username across social networks. It returns nil,
// meaning "no presence data", when the username is empty or the relay
// fails; failures are logged, never returned.
func (s *UsernameSource) Lookup(ctx context.Context, username string) *model.UsernamePresence {
	if username == "" {
		s.logger.DebugContext(ctx, "no usable username, skipping presence search", "service", ServiceSherlock)
		return nil
	}

	ctx, cancel := withDeadline(ctx, s.timeout)
	defer cancel()

	body, err := json.Marshal(usernameSearchRequest{Username: username})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to encode presence request", "error", err)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create presence request", "error", err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.doer.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "presence search failed", "error", err)
		return nil
	}
	defer drainClose(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil
	case resp.StatusCode != http.StatusOK:
		s.logger.WarnContext(ctx, "presence search returned non-OK status", "status", resp.StatusCode)
		return nil
	}

	var search usernameSearchResponse
	if err := decodeJSON(resp, &search); err != nil {
		s.logger.WarnContext(ctx, "failed to decode presence response", "error", err)
		return nil
	}

	presence := &model.UsernamePresence{
		Username: username,
		Found:    make([]model.FoundProfile, 0, len(search.Found)),
	}
	for _, f := range search.Found {
		presence.Found = append(presence.Found, model.FoundProfile{Site: f.Site, URL: f.URL})
	}
	return presence
}
