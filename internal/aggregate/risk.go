package aggregate

import (
	"math"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/exposcan/exposcan/internal/model"
)

// Component caps for the risk level classification. The normalized score is
// computed against the sum of these caps, so changing a cap rebalances the
// whole classification.
const (
	breachLevelCap     = 50
	reputationLevelCap = 30
	socialLevelCap     = 15

	levelCapTotal = breachLevelCap + reputationLevelCap + socialLevelCap
)

// Thresholds on the normalized 0-100 level score.
const (
	highLevelThreshold   = 60
	mediumLevelThreshold = 30
)

// sensitiveDataTypes are the data classes that trigger the flat 20-point
// sensitive-exposure bonus in the breach level component.
var sensitiveDataTypes = map[string]bool{
	"passwords":               true,
	"credit cards":            true,
	"social security numbers": true,
	"financial data":          true,
	"security questions":      true,
	"phone numbers":           true,
	"addresses":               true,
}

// Data-type tiers used by the risk score and per-type statistics.
// Matching is against the lowercase form of a data class.
var (
	criticalDataTypes = []string{
		"passwords", "credit cards", "payment info", "social security numbers",
		"government issued ids", "financial data", "bank account numbers",
	}

	mediumRiskDataTypes = []string{
		"phone numbers", "physical addresses", "security questions", "dates of birth",
	}

	lowRiskDataTypes = []string{
		"email addresses", "names", "usernames", "employers", "job titles", "genders",
	}
)

// sensitiveWebKeywords flag web results whose title or snippet suggests the
// identity appears in a security-relevant context.
var sensitiveWebKeywords = []string{
	"password", "leak", "hack", "breach", "credential", "account",
}

// knownSocialDomains are registered domains counted as social presence in
// the web component of the risk score.
var knownSocialDomains = map[string]bool{
	"linkedin.com":  true,
	"facebook.com":  true,
	"twitter.com":   true,
	"x.com":         true,
	"instagram.com": true,
	"github.com":    true,
	"tiktok.com":    true,
	"reddit.com":    true,
	"pinterest.com": true,
	"youtube.com":   true,
}

// Level classifies the overall risk from one pass's findings.
//
// Three independently capped components (breaches 50, reputation 30,
// social 15) are summed and normalized to 0-100 against the 95-point cap
// total, then thresholded: >=60 high, >=30 medium, else low.
func Level(breaches []model.BreachRecord, rep *model.EmailReputation, social *model.SocialMentions) model.RiskLevel {
	score := breachLevelComponent(breaches) +
		reputationLevelComponent(rep) +
		socialLevelComponent(social)

	normalized := float64(score) / float64(levelCapTotal) * 100

	switch {
	case normalized >= highLevelThreshold:
		return model.RiskHigh
	case normalized >= mediumLevelThreshold:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// breachLevelComponent scores breach exposure: up to 30 points from the
// breach count plus a flat 20 when any breach exposes a sensitive data type.
func breachLevelComponent(breaches []model.BreachRecord) int {
	if len(breaches) == 0 {
		return 0
	}

	score := min(len(breaches)*3, 30)

	for _, breach := range breaches {
		for _, class := range breach.DataClasses {
			if sensitiveDataTypes[strings.ToLower(class)] {
				return score + 20
			}
		}
	}
	return score
}

// reputationLevelComponent scores the email reputation signals:
// 15 for suspicious, 10 for leaked credentials, 5 for breach appearance.
func reputationLevelComponent(rep *model.EmailReputation) int {
	if rep == nil {
		return 0
	}

	score := 0
	if rep.Suspicious {
		score += 15
	}
	if rep.Details.CredentialsLeaked {
		score += 10
	}
	if rep.Details.DataBreach {
		score += 5
	}
	return score
}

// socialLevelComponent scores social media exposure from the mention count
// and the negative-sentiment count.
func socialLevelComponent(social *model.SocialMentions) int {
	if social == nil || len(social.Posts) == 0 {
		return 0
	}
	return min(len(social.Posts), 7) + min(social.Sentiment.Negative, 8)
}

// Score computes the fine-grained 0-100 risk score shown to the user.
// This is deliberately a different weighting from Level: breach count up to
// 40, tiered data-type severity up to 25, reputation up to 20, social up to
// 15, and web presence up to 20, clamped to [0,100] and rounded.
func Score(breaches []model.BreachRecord, rep *model.EmailReputation, social *model.SocialMentions, webResults []model.WebResult, exposedTypes []string) int {
	var score float64

	if len(breaches) > 0 {
		score += float64(min(len(breaches)*5, 40))
	}

	score += dataTypeScore(exposedTypes)

	if rep != nil {
		if rep.Suspicious {
			score += 10
		}
		if rep.Details.CredentialsLeaked {
			score += 10
		}
	}

	if social != nil && len(social.Posts) > 0 {
		score += float64(min(len(social.Posts), 7))
		score += float64(min(social.Sentiment.Negative, 8))
	}

	score += webPresenceScore(webResults)

	return int(math.Round(math.Min(math.Max(score, 0), 100)))
}

// dataTypeScore scores exposed data types by severity tier:
// critical up to 15, medium up to 7, low up to 3.
func dataTypeScore(exposedTypes []string) float64 {
	var critical, medium, low int

	for _, t := range exposedTypes {
		key := strings.ToLower(t)
		switch {
		case containsExact(criticalDataTypes, key):
			critical++
		case containsExact(mediumRiskDataTypes, key):
			medium++
		case containsExact(lowRiskDataTypes, key):
			low++
		}
	}

	score := float64(min(critical*5, 15))
	score += float64(min(medium*2, 7))
	score += math.Min(float64(low)*0.5, 3)
	return score
}

// webPresenceScore scores web search exposure: result volume (cap 5),
// sensitive-keyword matches (cap 5), and known social domains (cap 10).
func webPresenceScore(webResults []model.WebResult) float64 {
	if len(webResults) == 0 {
		return 0
	}

	var keywordMatches, socialMatches int
	for _, result := range webResults {
		text := strings.ToLower(result.Title + " " + result.Snippet)
		for _, kw := range sensitiveWebKeywords {
			if strings.Contains(text, kw) {
				keywordMatches++
				break
			}
		}
		if knownSocialDomains[RegisteredDomain(result.Link)] {
			socialMatches++
		}
	}

	score := float64(min(len(webResults), 5))
	score += float64(min(keywordMatches, 5))
	score += float64(min(socialMatches*2, 10))
	return score
}

// RegisteredDomain extracts the effective TLD+1 from a URL, lowercased.
// Returns "" when the URL or host cannot be parsed.
func RegisteredDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(strings.ToLower(u.Hostname()))
	if err != nil {
		return ""
	}
	return domain
}

// containsExact reports whether list contains the exact (lowercase) value.
func containsExact(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
