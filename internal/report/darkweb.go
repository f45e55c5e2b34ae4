package report

import (
	"sort"
	"strings"

	"github.com/exposcan/exposcan/internal/model"
)

// darkWebFindings summarizes breach exposure the way dark web monitoring
// services present it: a mention count over verified breaches, the sources
// those mentions came from, and the data types they exposed.
//
// Spam lists are excluded from the mention count. Appearing on one is an
// annoyance, not evidence of circulating breach data.
func darkWebFindings(scan model.AggregatedScan) *model.DarkWebFindings {
	findings := &model.DarkWebFindings{
		Sources:     make([]model.DarkWebSource, 0),
		ExposedInfo: scan.ExposedDataTypes,
	}

	type sourceAgg struct {
		count    int
		lastSeen string
	}
	bySource := make(map[string]*sourceAgg)
	var order []string

	for _, breach := range scan.Breaches {
		if !breach.IsVerified || breach.IsSpamList {
			continue
		}
		findings.Mentions++

		name := breach.Domain
		if name == "" {
			name = breach.Name
		}
		agg, ok := bySource[name]
		if !ok {
			agg = &sourceAgg{}
			bySource[name] = agg
			order = append(order, name)
		}
		agg.count++
		if breach.BreachDate > agg.lastSeen {
			agg.lastSeen = breach.BreachDate
		}
	}

	for _, name := range order {
		agg := bySource[name]
		findings.Sources = append(findings.Sources, model.DarkWebSource{
			Name:     name,
			Count:    agg.count,
			LastSeen: agg.lastSeen,
		})
	}

	// Busiest sources first; ties keep first-seen order.
	sort.SliceStable(findings.Sources, func(i, j int) bool {
		return findings.Sources[i].Count > findings.Sources[j].Count
	})

	return findings
}

// breachExposesPasswords reports whether any breach data class mentions
// password data. Used by the password heuristics.
func breachExposesPasswords(breaches []model.BreachRecord) bool {
	for _, breach := range breaches {
		for _, class := range breach.DataClasses {
			if strings.Contains(strings.ToLower(class), "password") {
				return true
			}
		}
	}
	return false
}
