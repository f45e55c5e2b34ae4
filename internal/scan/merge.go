package scan

import (
	"math"
	"sort"
	"strings"

	"github.com/exposcan/exposcan/internal/aggregate"
	"github.com/exposcan/exposcan/internal/model"
)

// Merge folds the aggregated result of one more pass into the running
// aggregate. passIndex is the number of passes already merged into acc, so
// the first fold-in is Merge(first, second, 1).
//
// Design decision: Merge is a pure function over value types rather than a
// method mutating the coordinator's state because:
//  1. Every merge invariant can be tested without a coordinator or network
//  2. Re-merging the same inputs always yields the same output
//  3. The coordinator stays a thin loop around Wait/fan-out/Merge
func Merge(acc, next model.AggregatedScan, passIndex int) model.AggregatedScan {
	merged := model.AggregatedScan{
		Breaches: mergeBreaches(acc.Breaches, next.Breaches),

		// Running average over the number of merged passes. Integer
		// score components make float drift a non-issue here.
		TotalRiskScore: int(math.Round(float64(acc.TotalRiskScore*passIndex+next.TotalRiskScore) / float64(passIndex+1))),

		// Risk never goes down when more exposure is found.
		RiskLevel: acc.RiskLevel.Max(next.RiskLevel),

		ExposedDataTypes:   unionFold(acc.ExposedDataTypes, next.ExposedDataTypes, strings.ToLower),
		RecommendedActions: unionFold(acc.RecommendedActions, next.RecommendedActions, func(s string) string { return s }),
		DigitalFootprint:   mergeFootprints(acc.DigitalFootprint, next.DigitalFootprint),

		// Raw accumulation; ordering and dedup happen in Finalize once
		// all passes are in.
		WebResults: append(append([]model.WebResult{}, acc.WebResults...), next.WebResults...),

		EmailsScanned: append(append([]string{}, acc.EmailsScanned...), next.EmailsScanned...),
		EmailsFailed:  append(append([]string{}, acc.EmailsFailed...), next.EmailsFailed...),
	}

	merged.Stats = aggregate.Statistics(
		merged.Breaches,
		merged.ExposedDataTypes,
		merged.DigitalFootprint,
		merged.WebResults,
		acc.Stats.TotalWebResults+next.Stats.TotalWebResults,
	)

	return merged
}

// Finalize orders and deduplicates the accumulated web results and
// recomputes the statistics over the final data. It is applied exactly
// once, after the last pass has been merged.
func Finalize(acc model.AggregatedScan) model.AggregatedScan {
	acc.WebResults = dedupeWebResults(acc.WebResults)
	acc.Stats = aggregate.Statistics(
		acc.Breaches,
		acc.ExposedDataTypes,
		acc.DigitalFootprint,
		acc.WebResults,
		acc.Stats.TotalWebResults,
	)
	return acc
}

// mergeBreaches unions breach lists by Name, first occurrence wins.
func mergeBreaches(acc, next []model.BreachRecord) []model.BreachRecord {
	merged := make([]model.BreachRecord, 0, len(acc)+len(next))
	seen := make(map[string]bool, len(acc)+len(next))

	for _, b := range append(append([]model.BreachRecord{}, acc...), next...) {
		if seen[b.Name] {
			continue
		}
		seen[b.Name] = true
		merged = append(merged, b)
	}
	return merged
}

// unionFold unions two string lists in first-seen order, deduplicating by
// the given key function.
func unionFold(acc, next []string, key func(string) string) []string {
	merged := make([]string, 0, len(acc)+len(next))
	seen := make(map[string]bool, len(acc)+len(next))

	for _, s := range append(append([]string{}, acc...), next...) {
		k := key(s)
		if seen[k] {
			continue
		}
		seen[k] = true
		merged = append(merged, s)
	}
	return merged
}

// dedupeWebResults sorts results by their original search rank and drops
// later duplicates of the same link. The sort is stable so results from an
// earlier pass win ties against results from a later pass at the same rank.
func dedupeWebResults(results []model.WebResult) []model.WebResult {
	if len(results) == 0 {
		return results
	}

	sorted := append([]model.WebResult{}, results...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	deduped := make([]model.WebResult, 0, len(sorted))
	seen := make(map[string]bool, len(sorted))
	for _, r := range sorted {
		if seen[r.Link] {
			continue
		}
		seen[r.Link] = true
		deduped = append(deduped, r)
	}
	return deduped
}

// mergeFootprints unions two footprints: profiles by URL, web presence by
// URL, professional info by company, locations and interests by value.
func mergeFootprints(acc, next model.DigitalFootprint) model.DigitalFootprint {
	merged := model.DigitalFootprint{
		SocialProfiles: make([]model.SocialProfile, 0, len(acc.SocialProfiles)+len(next.SocialProfiles)),
	}

	seenProfiles := make(map[string]bool)
	for _, p := range append(append([]model.SocialProfile{}, acc.SocialProfiles...), next.SocialProfiles...) {
		key := p.URL
		if key == "" {
			key = p.Network + "/" + p.Username
		}
		if seenProfiles[key] {
			continue
		}
		seenProfiles[key] = true
		merged.SocialProfiles = append(merged.SocialProfiles, p)
	}

	seenPages := make(map[string]bool)
	for _, w := range append(append([]model.WebPresenceEntry{}, acc.WebPresence...), next.WebPresence...) {
		if seenPages[w.URL] {
			continue
		}
		seenPages[w.URL] = true
		merged.WebPresence = append(merged.WebPresence, w)
	}

	seenCompanies := make(map[string]bool)
	for _, p := range append(append([]model.ProfessionalInfo{}, acc.ProfessionalInfo...), next.ProfessionalInfo...) {
		key := strings.ToLower(p.Company)
		if seenCompanies[key] {
			continue
		}
		seenCompanies[key] = true
		merged.ProfessionalInfo = append(merged.ProfessionalInfo, p)
	}

	merged.Locations = unionFold(acc.Locations, next.Locations, strings.ToLower)
	merged.Interests = unionFold(acc.Interests, next.Interests, strings.ToLower)

	var services []string
	if acc.EmailUsage != nil {
		services = acc.EmailUsage.Services
	}
	if next.EmailUsage != nil {
		services = unionFold(services, next.EmailUsage.Services, func(s string) string { return s })
	}
	if len(services) > 0 {
		merged.EmailUsage = &model.EmailUsage{Services: services}
	}

	return merged
}
