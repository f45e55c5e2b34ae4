package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/exposcan/exposcan/internal/model"
)

// defaultSocialBaseURL is the Social Searcher API root.
const defaultSocialBaseURL = "https://api.social-searcher.com"

// socialSearchLimit caps how many posts one search requests.
const socialSearchLimit = 20

// SocialSource searches social networks for mentions of the scanned
// identity.
type SocialSource struct {
	doer  Doer
	creds CredentialReader
	settings
}

// NewSocialSource creates a social mention adapter.
func NewSocialSource(doer Doer, creds CredentialReader, opts ...Option) *SocialSource {
	s := &SocialSource{
		doer:     doer,
		creds:    creds,
		settings: defaultSettings(defaultSocialBaseURL),
	}
	for _, opt := range opts {
		opt(&s.settings)
	}
	return s
}

// socialSearchResponse is the provider's wire format.
type socialSearchResponse struct {
	Posts []struct {
		Network   string `json:"network"`
		Text      string `json:"text"`
		Posted    string `json:"posted"`
		Sentiment string `json:"sentiment"`
		URL       string `json:"url"`
		User      struct {
			Name string `json:"name"`
		} `json:"user"`
	} `json:"posts"`
}

// Search fetches social mentions of the identity. It returns nil, meaning
// "no mention data", when the credential is missing, no usable query can
// be built, or the service fails; failures are logged, never returned.
func (s *SocialSource) Search(ctx context.Context, name, email string) *model.SocialMentions {
	if !s.creds.Has(ServiceSocialSearcher) {
		s.logger.DebugContext(ctx, "no social search credential, skipping search", "service", ServiceSocialSearcher)
		return nil
	}
	key, err := s.creds.Get(ServiceSocialSearcher)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to read social search credential", "error", err)
		return nil
	}

	query := buildSocialQuery(name, email)
	if query == "" {
		s.logger.DebugContext(ctx, "no usable social search terms", "service", ServiceSocialSearcher)
		return nil
	}

	ctx, cancel := withDeadline(ctx, s.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", key)
	params.Set("limit", fmt.Sprint(socialSearchLimit))

	endpoint := fmt.Sprintf("%s/v2/search?%s", s.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to create social search request", "error", err)
		return nil
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.doer.Do(req)
	if err != nil {
		s.logger.WarnContext(ctx, "social search failed", "error", err)
		return nil
	}
	defer drainClose(resp)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil
	case resp.StatusCode != http.StatusOK:
		s.logger.WarnContext(ctx, "social search returned non-OK status", "status", resp.StatusCode)
		return nil
	}

	var search socialSearchResponse
	if err := decodeJSON(resp, &search); err != nil {
		s.logger.WarnContext(ctx, "failed to decode social search response", "error", err)
		return nil
	}

	mentions := &model.SocialMentions{
		Query: query,
		Posts: make([]model.SocialPost, 0, len(search.Posts)),
	}
	for _, p := range search.Posts {
		sentiment := model.Sentiment(strings.ToLower(p.Sentiment))
		switch sentiment {
		case model.SentimentPositive:
			mentions.Sentiment.Positive++
		case model.SentimentNegative:
			mentions.Sentiment.Negative++
		default:
			sentiment = model.SentimentNeutral
			mentions.Sentiment.Neutral++
		}
		mentions.Posts = append(mentions.Posts, model.SocialPost{
			Network:   p.Network,
			User:      p.User.Name,
			Text:      p.Text,
			PostedAt:  p.Posted,
			URL:       p.URL,
			Sentiment: sentiment,
		})
	}
	return mentions
}

// buildSocialQuery assembles the OR-query from the identity's name parts
// and the email local part. All-digit local parts are excluded; they match
// far too many unrelated posts.
func buildSocialQuery(name, email string) string {
	var terms []string
	seen := make(map[string]bool)

	add := func(term string) {
		term = strings.TrimSpace(term)
		if term == "" || seen[strings.ToLower(term)] {
			return
		}
		seen[strings.ToLower(term)] = true
		terms = append(terms, term)
	}

	name = strings.TrimSpace(name)
	if name != "" {
		add(`"` + name + `"`)
		parts := strings.Fields(name)
		if len(parts) > 1 {
			add(parts[0])
			add(parts[len(parts)-1])
		}
	}

	if local, _, ok := strings.Cut(email, "@"); ok && local != "" && strings.Trim(local, "0123456789") != "" {
		add(local)
	}

	return strings.Join(terms, " OR ")
}
