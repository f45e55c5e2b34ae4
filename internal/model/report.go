package model

import "time"

// PassResult holds the raw adapter outputs for a single email address.
// One pass is one complete fan-out/fan-in cycle of all source adapters.
//
// Absence is modeled as nil (reputation, presence, social) or an empty slice
// (breaches, web results): a source with no credential configured, or one
// that legitimately found nothing, contributes nothing to aggregation.
type PassResult struct {
	// Email is the address this pass scanned.
	Email string `json:"email"`

	// Breaches lists the breach records found for the address.
	Breaches []BreachRecord `json:"breaches,omitempty"`

	// Reputation is the email reputation result, if available.
	Reputation *EmailReputation `json:"reputation,omitempty"`

	// Presence is the username-presence result, if available.
	Presence *UsernamePresence `json:"presence,omitempty"`

	// Social is the social mention result, if available.
	Social *SocialMentions `json:"social,omitempty"`

	// WebResults lists web search results tagged with this pass's email.
	WebResults []WebResult `json:"web_results,omitempty"`
}

// SocialProfile is one social account attributed to the scanned identity.
type SocialProfile struct {
	// Network is the site or network name.
	Network string `json:"network"`

	// Username is the handle on that network, when known.
	Username string `json:"username,omitempty"`

	// URL is the profile URL, when known.
	URL string `json:"url,omitempty"`
}

// WebPresenceEntry is one web page referencing the scanned identity.
type WebPresenceEntry struct {
	// Title is the page title.
	Title string `json:"title"`

	// URL is the page URL.
	URL string `json:"url"`

	// Snippet is the search snippet, when available.
	Snippet string `json:"snippet,omitempty"`

	// DisplayedLink is the abbreviated URL from the search result.
	DisplayedLink string `json:"displayed_link,omitempty"`
}

// ProfessionalInfo is employment information extracted from search results.
// Extraction is heuristic (regex over titles and snippets), so entries are
// best-effort and may be misattributed.
type ProfessionalInfo struct {
	// Company is the employer name (uniqueness key within a footprint).
	Company string `json:"company"`

	// Title is the job title, when one could be extracted.
	Title string `json:"title,omitempty"`
}

// EmailUsage summarizes services associated with the scanned addresses.
type EmailUsage struct {
	// Services lists service names the addresses are registered with.
	Services []string `json:"services"`
}

// DigitalFootprint summarizes where the scanned identity is visible online.
type DigitalFootprint struct {
	// SocialProfiles lists discovered social accounts.
	SocialProfiles []SocialProfile `json:"social_profiles"`

	// WebPresence lists web pages referencing the identity.
	WebPresence []WebPresenceEntry `json:"web_presence,omitempty"`

	// ProfessionalInfo lists extracted employment entries.
	ProfessionalInfo []ProfessionalInfo `json:"professional_info,omitempty"`

	// Locations lists place names extracted from search snippets.
	Locations []string `json:"locations,omitempty"`

	// EmailUsage summarizes services tied to the scanned addresses.
	EmailUsage *EmailUsage `json:"email_usage,omitempty"`

	// Interests lists topics inferred from social mentions.
	Interests []string `json:"interests,omitempty"`
}

// TimelineEntry is one bucket of the breach timeline.
type TimelineEntry struct {
	// Date is the year-month bucket in YYYY-MM form.
	Date string `json:"date"`

	// Count is the number of breaches dated in that month.
	Count int `json:"count"`
}

// DataTypeRisk is the derived risk score for one exposed data type.
type DataTypeRisk struct {
	// Type is the exposed data type.
	Type string `json:"type"`

	// RiskScore is the 0-100 derived score for the type.
	RiskScore int `json:"risk_score"`
}

// Statistics carries the display statistics derived from a scan.
type Statistics struct {
	// BreachCount is the number of distinct breaches.
	BreachCount int `json:"breach_count"`

	// DataExposureByCategory counts breaches per exposed data type.
	DataExposureByCategory map[string]int `json:"data_exposure_by_category"`

	// BreachTimeline buckets breaches by year-month, sorted ascending.
	BreachTimeline []TimelineEntry `json:"breach_timeline"`

	// RiskByDataType scores each exposed data type.
	RiskByDataType []DataTypeRisk `json:"risk_by_data_type"`

	// DigitalPresenceScore is the 0-100 visibility score.
	DigitalPresenceScore int `json:"digital_presence_score"`

	// WebResultsCount is the number of merged, deduplicated web results.
	WebResultsCount int `json:"web_results_count"`

	// TotalWebResults is the number of web results before deduplication.
	TotalWebResults int `json:"total_web_results"`
}

// AggregatedScan is the merged result of all per-email passes.
//
// Invariants maintained by the scan package's merge:
//   - Breaches are deduplicated by Name (first occurrence wins).
//   - TotalRiskScore is the running average across merged passes.
//   - RiskLevel is the highest level any pass produced.
//   - ExposedDataTypes and RecommendedActions are set-unions in
//     first-seen order.
//   - WebResults are sorted by original rank and deduplicated by Link.
type AggregatedScan struct {
	// Breaches is the deduplicated breach list across all passes.
	Breaches []BreachRecord `json:"breaches"`

	// TotalRiskScore is the 0-100 fine-grained risk score.
	TotalRiskScore int `json:"total_risk_score"`

	// RiskLevel is the coarse low/medium/high classification.
	RiskLevel RiskLevel `json:"risk_level"`

	// ExposedDataTypes is the deduplicated set of exposed data types.
	ExposedDataTypes []string `json:"exposed_data_types"`

	// RecommendedActions is the deduplicated ordered advice list.
	RecommendedActions []string `json:"recommended_actions"`

	// DigitalFootprint is the merged footprint across all passes.
	DigitalFootprint DigitalFootprint `json:"digital_footprint"`

	// WebResults is the merged, rank-sorted, link-deduplicated result list.
	WebResults []WebResult `json:"web_results,omitempty"`

	// Stats holds the display statistics recomputed from merged data.
	Stats Statistics `json:"stats"`

	// EmailsScanned lists the addresses whose passes merged successfully.
	EmailsScanned []string `json:"emails_scanned"`

	// EmailsFailed lists the addresses whose passes failed and were skipped.
	EmailsFailed []string `json:"emails_failed,omitempty"`
}

// DarkWebSource is one breach source grouped by domain.
type DarkWebSource struct {
	// Name is the source domain (or breach name when no domain is known).
	Name string `json:"name"`

	// Count is the number of breaches attributed to the source.
	Count int `json:"count"`

	// LastSeen is the most recent breach date for the source.
	LastSeen string `json:"last_seen,omitempty"`
}

// DarkWebFindings summarizes verified, non-spam-list breach mentions.
type DarkWebFindings struct {
	// Mentions counts breaches that are verified and not spam lists.
	Mentions int `json:"mentions"`

	// Sources groups breaches by domain.
	Sources []DarkWebSource `json:"sources"`

	// ExposedInfo lists the data types exposed across the sources.
	ExposedInfo []string `json:"exposed_info"`
}

// PasswordSecurity holds the local password heuristics.
// Present in a report only when the user supplied a password.
type PasswordSecurity struct {
	// Strength is the 0-5 strength score from length and character classes.
	Strength int `json:"strength"`

	// IsCommon is true when the password is on the common-password list.
	IsCommon bool `json:"is_common"`

	// Compromised is true when any breach exposed password data.
	// This is a heuristic over breach data classes, not a per-password
	// lookup; the actual password never leaves the machine.
	Compromised bool `json:"compromised"`

	// Suggestions lists improvement advice derived from the checks.
	Suggestions []string `json:"suggestions"`
}

// VulnerabilityReport is the final consolidated exposure report.
// It is immutable once built.
type VulnerabilityReport struct {
	// ID uniquely identifies this report.
	ID string `json:"id"`

	// Name is the scanned person's name.
	Name string `json:"name"`

	// Email is the primary scanned address.
	Email string `json:"email"`

	// AdditionalEmails lists the other scanned addresses.
	AdditionalEmails []string `json:"additional_emails,omitempty"`

	// Location is the user-supplied location, when given.
	Location string `json:"location,omitempty"`

	// ScanDate is when the report was built.
	ScanDate time.Time `json:"scan_date"`

	// Scan is the merged scan result the report was built from.
	Scan AggregatedScan `json:"scan"`

	// DarkWebFindings summarizes verified breach mentions by source.
	DarkWebFindings *DarkWebFindings `json:"dark_web_findings,omitempty"`

	// PasswordSecurity is present iff a password was supplied.
	PasswordSecurity *PasswordSecurity `json:"password_security,omitempty"`
}
