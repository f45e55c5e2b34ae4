package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/exposcan/exposcan/internal/model"
)

// defaultReputationBaseURL is the EmailRep API root.
const defaultReputationBaseURL = "https://emailrep.io"

// ReputationSource looks up the reputation of an email address.
type ReputationSource struct {
	doer  Doer
	creds CredentialReader
	settings
}

// NewReputationSource creates an email reputation adapter.
func NewReputationSource(doer Doer, creds CredentialReader, opts ...Option) *ReputationSource {
	s := &ReputationSource{
		doer:     doer,
		creds:    creds,
		settings: defaultSettings(defaultReputationBaseURL),
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

// emailRepResponse is the provider's wire format, reduced to the signals
// the aggregation engine consumes.
type emailRepResponse struct {
	Email      string `json:"email"`
	Reputation string `json:"reputation"`
	Suspicious bool   `json:"suspicious"`
	References int    `json:"references"`
	Details    struct {
		CredentialsLeaked bool `json:"credentials_leaked"`
		DataBreach        bool `json:"data_breach"`
		MaliciousActivity bool `json:"malicious_activity_recent"`
		Spam              bool `json:"spam"`
		FreeProvider      bool `json:"free_provider"`
		Disposable        bool `json:"disposable"`
	} `json:"details"`
}

// Lookup fetches the reputation record for the email address.
// It returns nil, meaning "no reputation data", when the credential is
// missing or the service fails; failures are logged, never returned.
func (s *ReputationSource) Lookup(ctx context.Context, email string) *model.EmailReputation {
	if !s.creds.Has(ServiceEmailRep) {
		s.logger.DebugContext(ctx, "no reputation credential, skipping lookup", "service", ServiceEmailRep)
		return nil
	}
	key, err := s.creds.Get(ServiceEmailRep)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read reputation credential", "error", err)
		return nil
	}

	ctx, cancel := withDeadline(ctx, s.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/%s", s.baseURL, url.PathEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create reputation request", "error", err)
		return nil
	}
	req.Header.Set("Key", key)
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.doer.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "reputation lookup failed", "error", err)
		return nil
	}
	defer drainClose(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil
	case resp.StatusCode != http.StatusOK:
		s.logger.WarnContext(ctx, "reputation lookup returned non-OK status", "status", resp.StatusCode)
		return nil
	}

	var rep emailRepResponse
	if err := decodeJSON(resp, &rep); err != nil {
		s.logger.WarnContext(ctx, "failed to decode reputation response", "error", err)
		return nil
	}

	return &model.EmailReputation{
		Email:      email,
		Reputation: rep.Reputation,
		Suspicious: rep.Suspicious,
		References: rep.References,
		Details: model.ReputationDetails{
			CredentialsLeaked: rep.Details.CredentialsLeaked,
			DataBreach:        rep.Details.DataBreach,
			MaliciousActivity: rep.Details.MaliciousActivity,
			Spam:              rep.Details.Spam,
			FreeProvider:      rep.Details.FreeProvider,
			Disposable:        rep.Details.Disposable,
		},
	}
}
