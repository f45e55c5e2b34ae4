package aggregate

import (
	"testing"

	"github.com/exposcan/exposcan/internal/model"
)

// TestExposureByCategory verifies the fuzzy per-category breach counts.
func TestExposureByCategory(t *testing.T) {
	t.Parallel()

	breaches := []model.BreachRecord{
		{Name: "A", DataClasses: []string{"Passwords", "Email addresses"}},
		{Name: "B", DataClasses: []string{"Account passwords"}},
		{Name: "C", DataClasses: []string{"Phone numbers"}},
	}
	types := []string{"Passwords", "Email addresses", "Phone numbers"}

	got := exposureByCategory(breaches, types)
	// "Passwords" fuzzy-matches "Account passwords" too (substring either way).
	if got["Passwords"] != 2 {
		t.Errorf("Passwords count = %d, want 2", got["Passwords"])
	}
	if got["Email addresses"] != 1 {
		t.Errorf("Email addresses count = %d, want 1", got["Email addresses"])
	}
	if got["Phone numbers"] != 1 {
		t.Errorf("Phone numbers count = %d, want 1", got["Phone numbers"])
	}
}

// TestBreachTimeline verifies year-month bucketing and ascending sort.
func TestBreachTimeline(t *testing.T) {
	t.Parallel()

	breaches := []model.BreachRecord{
		{Name: "A", BreachDate: "2023-04-12"},
		{Name: "B", BreachDate: "2021-11-01"},
		{Name: "C", BreachDate: "2023-04-30"},
		{Name: "D", BreachDate: "bad"},
	}

	got := breachTimeline(breaches)
	want := []model.TimelineEntry{
		{Date: "2021-11", Count: 1},
		{Date: "2023-04", Count: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("breachTimeline = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("timeline[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestRiskByDataType verifies tier bases, the frequency bonus, and the cap.
func TestRiskByDataType(t *testing.T) {
	t.Parallel()

	breaches := []model.BreachRecord{
		{Name: "A", DataClasses: []string{"Passwords"}},
		{Name: "B", DataClasses: []string{"Passwords"}},
		{Name: "C", DataClasses: []string{"Email addresses"}},
	}
	types := []string{"Passwords", "Phone numbers", "Email addresses"}

	got := riskByDataType(breaches, types)
	if len(got) != 3 {
		t.Fatalf("riskByDataType = %+v, want 3 entries", got)
	}

	// Critical base 70 + two breaches * 5 = 80.
	if got[0].Type != "Passwords" || got[0].RiskScore != 80 {
		t.Errorf("Passwords risk = %+v, want 80", got[0])
	}
	// Medium base 40, no matching breach.
	if got[1].Type != "Phone numbers" || got[1].RiskScore != 40 {
		t.Errorf("Phone numbers risk = %+v, want 40", got[1])
	}
	// Low base 10 + one breach * 5 = 15.
	if got[2].Type != "Email addresses" || got[2].RiskScore != 15 {
		t.Errorf("Email addresses risk = %+v, want 15", got[2])
	}
}

// TestDigitalPresenceScore verifies the weighted, capped visibility score.
func TestDigitalPresenceScore(t *testing.T) {
	t.Parallel()

	t.Run("empty footprint scores zero", func(t *testing.T) {
		t.Parallel()
		if got := digitalPresenceScore(model.DigitalFootprint{}); got != 0 {
			t.Errorf("digitalPresenceScore = %d, want 0", got)
		}
	})

	t.Run("components add up", func(t *testing.T) {
		t.Parallel()
		fp := model.DigitalFootprint{
			SocialProfiles: make([]model.SocialProfile, 2),
			WebPresence:    make([]model.WebPresenceEntry, 3),
			Locations:      []string{"Berlin"},
		}
		// 2*10 + 3*2 + 1*5 = 31.
		if got := digitalPresenceScore(fp); got != 31 {
			t.Errorf("digitalPresenceScore = %d, want 31", got)
		}
	})

	t.Run("each component caps independently", func(t *testing.T) {
		t.Parallel()
		fp := model.DigitalFootprint{
			SocialProfiles:   make([]model.SocialProfile, 20),
			WebPresence:      make([]model.WebPresenceEntry, 40),
			ProfessionalInfo: make([]model.ProfessionalInfo, 9),
			Locations:        make([]string, 9),
		}
		// 50 + 30 + 10 + 10 = 100.
		if got := digitalPresenceScore(fp); got != 100 {
			t.Errorf("digitalPresenceScore = %d, want 100", got)
		}
	})
}

// TestStatistics verifies the assembled struct keeps the pre- and
// post-dedup web result counts distinct.
func TestStatistics(t *testing.T) {
	t.Parallel()

	breaches := []model.BreachRecord{{Name: "A", BreachDate: "2022-01-15", DataClasses: []string{"Passwords"}}}
	web := []model.WebResult{{Position: 1, Link: "https://example.com"}}

	got := Statistics(breaches, []string{"Passwords"}, model.DigitalFootprint{}, web, 4)
	if got.BreachCount != 1 {
		t.Errorf("BreachCount = %d, want 1", got.BreachCount)
	}
	if got.WebResultsCount != 1 || got.TotalWebResults != 4 {
		t.Errorf("web counts = %d/%d, want 1/4", got.WebResultsCount, got.TotalWebResults)
	}
	if len(got.BreachTimeline) != 1 || got.BreachTimeline[0].Date != "2022-01" {
		t.Errorf("BreachTimeline = %+v, want single 2022-01 entry", got.BreachTimeline)
	}
}
