package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/exposcan/exposcan/internal/model"
)

// defaultBreachBaseURL is the Have I Been Pwned v3 API root.
const defaultBreachBaseURL = "https://haveibeenpwned.com/api/v3"

// BreachSource looks up an email address in the breach database.
//
// Design decision: Unlike the other adapters, BreachSource returns errors
// to the caller instead of degrading to an empty result because:
//  1. Breach data drives the bulk of the risk score; a report silently
//     missing it would be misleading rather than merely incomplete
//  2. The coordinator can skip just the affected email and keep scanning
//  3. HTTP 404 is the documented "not breached" answer, so absence and
//     failure are distinguishable on the wire
type BreachSource struct {
	doer  Doer
	creds CredentialReader
	settings
}

// NewBreachSource creates a breach database adapter.
func NewBreachSource(doer Doer, creds CredentialReader, opts ...Option) *BreachSource {
	s := &BreachSource{
		doer:     doer,
		creds:    creds,
		settings: defaultSettings(defaultBreachBaseURL),
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

// hibpBreach is the provider's wire format. Field names follow the
// provider's PascalCase JSON; only the fields the scan consumes are kept.
type hibpBreach struct {
	Name         string   `json:"Name"`
	Title        string   `json:"Title"`
	Domain       string   `json:"Domain"`
	BreachDate   string   `json:"BreachDate"`
	Description  string   `json:"Description"`
	DataClasses  []string `json:"DataClasses"`
	IsVerified   bool     `json:"IsVerified"`
	IsFabricated bool     `json:"IsFabricated"`
	IsSensitive  bool     `json:"IsSensitive"`
	IsSpamList   bool     `json:"IsSpamList"`
	IsMalware    bool     `json:"IsMalware"`
	PwnCount     int      `json:"PwnCount"`
}

// Lookup fetches the breach records for the email address.
//
// A missing credential or an HTTP 404 yields an empty result and a nil
// error. Any other failure is returned to the caller.
func (s *BreachSource) Lookup(ctx context.Context, email string) ([]model.BreachRecord, error) {
	if !s.creds.Has(ServiceHIBP) {
		s.logger.DebugContext(ctx, "no breach database credential, skipping lookup", "service", ServiceHIBP)
		return nil, nil
	}
	key, err := s.creds.Get(ServiceHIBP)
	if err != nil {
		return nil, fmt.Errorf("failed to read breach database credential: %w", err)
	}

	ctx, cancel := withDeadline(ctx, s.timeout)
	defer cancel()

	endpoint := fmt.Sprintf("%s/breachedaccount/%s?truncateResponse=false", s.baseURL, url.PathEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create breach request: %w", err)
	}
	req.Header.Set("hibp-api-key", key)
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.doer.Do(req)
	if err != nil {
		return nil, fmt.Errorf("breach lookup failed: %w", err)
	}
	defer drainClose(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		// The documented "this address has not been breached" answer.
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("breach lookup returned status %d", resp.StatusCode)
	}

	var breaches []hibpBreach
	if err := decodeJSON(resp, &breaches); err != nil {
		return nil, fmt.Errorf("breach lookup: %w", err)
	}

	records := make([]model.BreachRecord, 0, len(breaches))
	for _, b := range breaches {
		records = append(records, model.BreachRecord{
			Name:         b.Name,
			Title:        b.Title,
			Domain:       b.Domain,
			BreachDate:   b.BreachDate,
			DataClasses:  b.DataClasses,
			IsVerified:   b.IsVerified,
			IsFabricated: b.IsFabricated,
			IsSensitive:  b.IsSensitive,
			IsSpamList:   b.IsSpamList,
			IsMalware:    b.IsMalware,
			PwnCount:     b.PwnCount,
			Description:  b.Description,
		})
	}
	return records, nil
}
