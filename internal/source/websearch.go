package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/exposcan/exposcan/internal/model"
)

// defaultWebSearchBaseURL is the SerpAPI root.
const defaultWebSearchBaseURL = "https://serpapi.com"

// MaxWebResults is the default cap on how many organic results one search
// contributes. The cap is applied here, before results from multiple email
// addresses are merged, so every address gets an equal share of the report.
// Override per instance with WithMaxResults.
const MaxWebResults = 15

// WebSearchSource searches the web for pages mentioning the scanned
// identity.
type WebSearchSource struct {
	doer  Doer
	creds CredentialReader
	settings
}

// NewWebSearchSource creates a web search adapter.
func NewWebSearchSource(doer Doer, creds CredentialReader, opts ...Option) *WebSearchSource {
	s := &WebSearchSource{
		doer:     doer,
		creds:    creds,
		settings: defaultSettings(defaultWebSearchBaseURL),
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

// serpResponse is the provider's wire format, reduced to organic results.
type serpResponse struct {
	OrganicResults []struct {
		Position      int    `json:"position"`
		Title         string `json:"title"`
		Link          string `json:"link"`
		Snippet       string `json:"snippet"`
		DisplayedLink string `json:"displayed_link"`
	} `json:"organic_results"`
}

// Search fetches web results for the identity, tagged with the email whose
// query produced them. It returns nil, meaning "no web data", when the
// credential is missing or the service fails; failures are logged, never
// returned.
func (s *WebSearchSource) Search(ctx context.Context, name, email, location string) []model.WebResult {
	if !s.creds.Has(ServiceSerpAPI) {
		s.logger.DebugContext(ctx, "no web search credential, skipping search", "service", ServiceSerpAPI)
		return nil
	}
	key, err := s.creds.Get(ServiceSerpAPI)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read web search credential", "error", err)
		return nil
	}

	ctx, cancel := withDeadline(ctx, s.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", buildWebQuery(name, email, location))
	params.Set("api_key", key)

	endpoint := fmt.Sprintf("%s/search.json?%s", s.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create web search request", "error", err)
		return nil
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.doer.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "web search failed", "error", err)
		return nil
	}
	defer drainClose(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil
	case resp.StatusCode != http.StatusOK:
		s.logger.WarnContext(ctx, "web search returned non-OK status", "status", resp.StatusCode)
		return nil
	}

	var search serpResponse
	if err := decodeJSON(resp, &search); err != nil {
		s.logger.WarnContext(ctx, "failed to decode web search response", "error", err)
		return nil
	}

	results := make([]model.WebResult, 0, min(len(search.OrganicResults), s.maxResults))
	for _, r := range search.OrganicResults {
		if len(results) == s.maxResults {
			break
		}
		results = append(results, model.WebResult{
			Position:      r.Position,
			Title:         r.Title,
			Link:          r.Link,
			Snippet:       r.Snippet,
			DisplayedLink: r.DisplayedLink,
			SourceEmail:   email,
		})
	}
	return results
}

// buildWebQuery assembles the search query: the quoted name, the email,
// and the location when one is known.
func buildWebQuery(name, email, location string) string {
	var parts []string
	if name = strings.TrimSpace(name); name != "" {
		parts = append(parts, `"`+name+`"`)
	}
	if email = strings.TrimSpace(email); email != "" {
		parts = append(parts, email)
	}
	if location = strings.TrimSpace(location); location != "" {
		parts = append(parts, location)
	}
	return strings.Join(parts, " ")
}
