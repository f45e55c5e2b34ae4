package aggregate

import (
	"sort"
	"strings"

	"github.com/exposcan/exposcan/internal/model"
)

// Per-type base risk by tier, plus the cap on the frequency bonus.
const (
	criticalTypeBaseRisk = 70
	mediumTypeBaseRisk   = 40
	lowTypeBaseRisk      = 10

	typeFrequencyBonusCap = 30
)

// Digital presence score weights. Each contribution is individually capped
// and the total is capped at 100.
const (
	socialProfileWeight = 10
	socialProfileCap    = 50

	webPresenceWeight = 2
	webPresenceCap    = 30

	professionalWeight = 5
	professionalCap    = 10

	locationWeight = 5
	locationCap    = 10
)

// Statistics derives the display statistics from scan data: per-category
// exposure counts, the breach timeline, per-data-type risk, and the digital
// presence score.
//
// totalWebResults is the pre-deduplication web result count across all
// passes; webResults is the merged, deduplicated list.
func Statistics(breaches []model.BreachRecord, exposedTypes []string, footprint model.DigitalFootprint, webResults []model.WebResult, totalWebResults int) model.Statistics {
	return model.Statistics{
		BreachCount:            len(breaches),
		DataExposureByCategory: exposureByCategory(breaches, exposedTypes),
		BreachTimeline:         breachTimeline(breaches),
		RiskByDataType:         riskByDataType(breaches, exposedTypes),
		DigitalPresenceScore:   digitalPresenceScore(footprint),
		WebResultsCount:        len(webResults),
		TotalWebResults:        totalWebResults,
	}
}

// exposureByCategory counts, for each exposed data type, how many breaches
// contain it. Matching is fuzzy: a breach data class matches a type when
// they are equal or either contains the other, case-insensitively.
func exposureByCategory(breaches []model.BreachRecord, exposedTypes []string) map[string]int {
	categories := make(map[string]int, len(exposedTypes))

	for _, t := range exposedTypes {
		count := 0
		for _, breach := range breaches {
			if breachHasType(breach, t) {
				count++
			}
		}
		categories[t] = count
	}

	return categories
}

// breachHasType reports whether the breach exposes the given data type,
// using the fuzzy substring match.
func breachHasType(breach model.BreachRecord, dataType string) bool {
	want := strings.ToLower(dataType)
	for _, class := range breach.DataClasses {
		have := strings.ToLower(class)
		if have == want || strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	return false
}

// breachTimeline buckets breaches by year-month, sorted ascending by date.
func breachTimeline(breaches []model.BreachRecord) []model.TimelineEntry {
	buckets := make(map[string]int)
	for _, breach := range breaches {
		if len(breach.BreachDate) < 7 {
			continue
		}
		buckets[breach.BreachDate[:7]]++
	}

	timeline := make([]model.TimelineEntry, 0, len(buckets))
	for date, count := range buckets {
		timeline = append(timeline, model.TimelineEntry{Date: date, Count: count})
	}
	sort.Slice(timeline, func(i, j int) bool { return timeline[i].Date < timeline[j].Date })

	return timeline
}

// riskByDataType scores each exposed data type: a base value from its
// severity tier plus a bonus for how many breaches exposed it, capped at 100.
func riskByDataType(breaches []model.BreachRecord, exposedTypes []string) []model.DataTypeRisk {
	risks := make([]model.DataTypeRisk, 0, len(exposedTypes))

	for _, t := range exposedTypes {
		base := lowTypeBaseRisk
		switch {
		case matchesTier(criticalDataTypes, t):
			base = criticalTypeBaseRisk
		case matchesTier(mediumRiskDataTypes, t):
			base = mediumTypeBaseRisk
		}

		withType := 0
		for _, breach := range breaches {
			if breachHasType(breach, t) {
				withType++
			}
		}

		risks = append(risks, model.DataTypeRisk{
			Type:      t,
			RiskScore: min(base+min(withType*5, typeFrequencyBonusCap), 100),
		})
	}

	return risks
}

// matchesTier reports whether the data type matches any tier entry, using
// substring containment in either direction, case-insensitively.
func matchesTier(tier []string, dataType string) bool {
	want := strings.ToLower(dataType)
	for _, entry := range tier {
		if strings.Contains(want, entry) || strings.Contains(entry, want) {
			return true
		}
	}
	return false
}

// digitalPresenceScore assembles the 0-100 visibility score from weighted,
// individually capped footprint counts.
func digitalPresenceScore(fp model.DigitalFootprint) int {
	score := min(len(fp.SocialProfiles)*socialProfileWeight, socialProfileCap)
	score += min(len(fp.WebPresence)*webPresenceWeight, webPresenceCap)
	score += min(len(fp.ProfessionalInfo)*professionalWeight, professionalCap)
	score += min(len(fp.Locations)*locationWeight, locationCap)

	return min(score, 100)
}
