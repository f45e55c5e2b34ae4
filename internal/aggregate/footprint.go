package aggregate

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/exposcan/exposcan/internal/model"
)

// Heuristic extraction patterns for professional info and locations.
// These operate on search result titles and snippets, so they are
// best-effort: false positives are possible and the caller should treat
// the output as enrichment, not fact.
var (
	// linkedInTitlePattern matches "Name - Title - Company | LinkedIn"
	// style result titles (the separator varies between hyphen and en dash).
	linkedInTitlePattern = regexp.MustCompile(`^(.+?)\s+[-–]\s+(.+?)\s+[-–]\s+(.+?)(?:\s*\|\s*LinkedIn)?$`)

	// worksAtPattern matches "works at Acme" / "working at Acme" in snippets.
	// The company capture stops at the first non-capitalized word, so trailing
	// prose is not swallowed.
	worksAtPattern = regexp.MustCompile(`(?i:\bwork(?:s|ing)? at)\s+([A-Z][\w&.'-]*(?: [A-Z][\w&.'-]*)*)`)

	// locationPattern matches "based in Paris", "located in New York", and
	// similar snippet phrases. The captured place is one or two words.
	locationPattern = regexp.MustCompile(`(?i:\b(?:based in|located in|lives in|living in))\s+([A-Za-z][a-z]+(?: [A-Z][a-z]+)?)`)
)

// interestKeywords is the fixed topic list matched against social post text.
var interestKeywords = []string{
	"technology", "gaming", "finance", "travel", "music",
	"sports", "photography", "cooking", "politics", "science",
}

// locationCaser normalizes extracted place names for display
// ("new york" -> "New York").
var locationCaser = cases.Title(language.English)

// Footprint derives the digital footprint for one pass: social profiles from
// the username-presence result, web presence and heuristic professional
// info/locations from web search results, email usage from breach titles,
// and interests from social mention text.
func Footprint(presence *model.UsernamePresence, social *model.SocialMentions, webResults []model.WebResult, breaches []model.BreachRecord) model.DigitalFootprint {
	fp := model.DigitalFootprint{
		SocialProfiles: make([]model.SocialProfile, 0),
	}

	if presence != nil {
		for _, profile := range presence.Found {
			fp.SocialProfiles = append(fp.SocialProfiles, model.SocialProfile{
				Network:  profile.Site,
				Username: presence.Username,
				URL:      profile.URL,
			})
		}
	}

	for _, result := range webResults {
		fp.WebPresence = append(fp.WebPresence, model.WebPresenceEntry{
			Title:         result.Title,
			URL:           result.Link,
			Snippet:       result.Snippet,
			DisplayedLink: result.DisplayedLink,
		})
	}

	fp.ProfessionalInfo = extractProfessionalInfo(webResults)
	fp.Locations = extractLocations(webResults)

	if services := emailServices(breaches); len(services) > 0 {
		fp.EmailUsage = &model.EmailUsage{Services: services}
	}

	fp.Interests = extractInterests(social)

	return fp
}

// extractProfessionalInfo pulls employment entries out of search results,
// deduplicated by extracted company name (case-insensitive).
func extractProfessionalInfo(webResults []model.WebResult) []model.ProfessionalInfo {
	var entries []model.ProfessionalInfo
	seen := make(map[string]bool)

	add := func(company, title string) {
		company = strings.TrimSpace(company)
		if company == "" || seen[strings.ToLower(company)] {
			return
		}
		seen[strings.ToLower(company)] = true
		entries = append(entries, model.ProfessionalInfo{
			Company: company,
			Title:   strings.TrimSpace(title),
		})
	}

	for _, result := range webResults {
		if RegisteredDomain(result.Link) == "linkedin.com" {
			if m := linkedInTitlePattern.FindStringSubmatch(result.Title); m != nil {
				add(m[3], m[2])
				continue
			}
		}
		if m := worksAtPattern.FindStringSubmatch(result.Snippet); m != nil {
			add(m[1], "")
		}
	}

	return entries
}

// extractLocations pulls place names out of search snippets, deduplicated
// and normalized to title case.
func extractLocations(webResults []model.WebResult) []string {
	var locations []string
	seen := make(map[string]bool)

	for _, result := range webResults {
		for _, m := range locationPattern.FindAllStringSubmatch(result.Snippet, -1) {
			place := locationCaser.String(strings.ToLower(strings.TrimSpace(m[1])))
			if place == "" || seen[place] {
				continue
			}
			seen[place] = true
			locations = append(locations, place)
		}
	}

	return locations
}

// emailServices lists services the scanned address is registered with,
// derived from breach titles. Capped at 10 entries to keep reports readable.
func emailServices(breaches []model.BreachRecord) []string {
	var services []string
	seen := make(map[string]bool)

	for _, breach := range breaches {
		name := breach.Title
		if name == "" {
			name = breach.Name
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		services = append(services, name)
		if len(services) == 10 {
			break
		}
	}

	return services
}

// extractInterests matches social post text against the fixed topic list.
func extractInterests(social *model.SocialMentions) []string {
	if social == nil || len(social.Posts) == 0 {
		return nil
	}

	var text strings.Builder
	for _, post := range social.Posts {
		text.WriteString(strings.ToLower(post.Text))
		text.WriteString(" ")
	}
	body := text.String()

	var interests []string
	for _, topic := range interestKeywords {
		if strings.Contains(body, topic) {
			interests = append(interests, topic)
		}
	}
	return interests
}
