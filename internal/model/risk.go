package model

import (
	"encoding/json"
	"fmt"
)

// RiskLevel is the coarse classification of a scan's overall risk.
// Levels are ordered so that merging multiple per-email scans can keep
// the highest level seen: None < Low < Medium < High.
//
// Design decision: We use iota-based constants rather than string constants
// so that level comparisons during merge are simple integer comparisons.
// JSON serialization uses the lowercase string form expected by consumers.
type RiskLevel int

const (
	// RiskNone means no scan data contributed a risk signal yet.
	// It only appears in a zero-valued AggregatedScan, never in a
	// completed report.
	RiskNone RiskLevel = iota

	// RiskLow indicates a normalized weighted score below 30.
	RiskLow

	// RiskMedium indicates a normalized weighted score of at least 30.
	RiskMedium

	// RiskHigh indicates a normalized weighted score of at least 60.
	RiskHigh
)

// String returns the lowercase string form used in reports.
func (l RiskLevel) String() string {
	switch l {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "none"
	}
}

// Max returns the higher of the two levels.
// Merging uses this to keep the risk level monotonically non-decreasing.
func (l RiskLevel) Max(other RiskLevel) RiskLevel {
	if other > l {
		return other
	}
	return l
}

// ParseRiskLevel parses the lowercase string form of a level.
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch s {
	case "none":
		return RiskNone, nil
	case "low":
		return RiskLow, nil
	case "medium":
		return RiskMedium, nil
	case "high":
		return RiskHigh, nil
	default:
		return RiskNone, fmt.Errorf("unknown risk level %q", s)
	}
}

// MarshalJSON serializes the level as its lowercase string form.
func (l RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON parses the lowercase string form.
func (l *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	level, err := ParseRiskLevel(s)
	if err != nil {
		return err
	}
	*l = level
	return nil
}
