package aggregate

import (
	"testing"

	"github.com/exposcan/exposcan/internal/model"
)

// TestLevelZeroData verifies the boundary: no findings at all classify low,
// with every component contributing zero.
func TestLevelZeroData(t *testing.T) {
	t.Parallel()

	if got := Level(nil, nil, nil); got != model.RiskLow {
		t.Errorf("Level(nil, nil, nil) = %v, want low", got)
	}
	if got := breachLevelComponent(nil); got != 0 {
		t.Errorf("breachLevelComponent(nil) = %d, want 0", got)
	}
}

// TestLevelSingleSensitiveBreach covers the worked example from the scoring
// design: one breach exposing passwords yields a breach component of
// min(1*3,30)+20 = 23 out of 95, which normalizes to ~24 and classifies low.
func TestLevelSingleSensitiveBreach(t *testing.T) {
	t.Parallel()

	breaches := []model.BreachRecord{
		{
			Name:        "ExampleCo",
			DataClasses: []string{"Passwords", "Email addresses"},
			BreachDate:  "2022-05-01",
			IsVerified:  true,
		},
	}

	if got := breachLevelComponent(breaches); got != 23 {
		t.Errorf("breachLevelComponent = %d, want 23", got)
	}
	if got := Level(breaches, nil, nil); got != model.RiskLow {
		t.Errorf("Level = %v, want low (23/95 normalizes below the medium threshold)", got)
	}
}

// TestLevelThresholds exercises the medium and high classification
// boundaries with synthetic component loads.
func TestLevelThresholds(t *testing.T) {
	t.Parallel()

	// Ten sensitive breaches: breach component is min(30,30)+20 = 50.
	// 50/95 ~ 52.6 -> medium.
	manyBreaches := make([]model.BreachRecord, 10)
	for i := range manyBreaches {
		manyBreaches[i] = model.BreachRecord{
			Name:        "Breach" + string(rune('A'+i)),
			DataClasses: []string{"Passwords"},
		}
	}

	t.Run("saturated breach component alone is medium", func(t *testing.T) {
		t.Parallel()
		if got := Level(manyBreaches, nil, nil); got != model.RiskMedium {
			t.Errorf("Level = %v, want medium", got)
		}
	})

	t.Run("breach plus reputation reaches high", func(t *testing.T) {
		t.Parallel()
		rep := &model.EmailReputation{
			Suspicious: true,
			Details:    model.ReputationDetails{CredentialsLeaked: true, DataBreach: true},
		}
		// 50 + 30 = 80 of 95 ~ 84 -> high.
		if got := Level(manyBreaches, rep, nil); got != model.RiskHigh {
			t.Errorf("Level = %v, want high", got)
		}
	})

	t.Run("reputation alone stays medium", func(t *testing.T) {
		t.Parallel()
		rep := &model.EmailReputation{
			Suspicious: true,
			Details:    model.ReputationDetails{CredentialsLeaked: true, DataBreach: true},
		}
		// 30 of 95 ~ 31.6 -> medium.
		if got := Level(nil, rep, nil); got != model.RiskMedium {
			t.Errorf("Level = %v, want medium", got)
		}
	})
}

// TestSocialLevelComponent verifies the social component caps:
// min(posts,7) + min(negative,8), total cap 15.
func TestSocialLevelComponent(t *testing.T) {
	t.Parallel()

	posts := make([]model.SocialPost, 20)
	social := &model.SocialMentions{
		Posts:     posts,
		Sentiment: model.SentimentCounts{Negative: 12},
	}

	if got := socialLevelComponent(social); got != socialLevelCap {
		t.Errorf("socialLevelComponent = %d, want cap %d", got, socialLevelCap)
	}
	if got := socialLevelComponent(nil); got != 0 {
		t.Errorf("socialLevelComponent(nil) = %d, want 0", got)
	}
}

// TestScoreZeroData verifies the boundary: an empty pass scores 0.
func TestScoreZeroData(t *testing.T) {
	t.Parallel()

	if got := Score(nil, nil, nil, nil, nil); got != 0 {
		t.Errorf("Score with no data = %d, want 0", got)
	}
}

// TestScoreComponents exercises each scoring component in isolation.
func TestScoreComponents(t *testing.T) {
	t.Parallel()

	t.Run("breach count component caps at 40", func(t *testing.T) {
		t.Parallel()
		breaches := make([]model.BreachRecord, 20)
		for i := range breaches {
			breaches[i] = model.BreachRecord{Name: string(rune('A' + i))}
		}
		if got := Score(breaches, nil, nil, nil, nil); got != 40 {
			t.Errorf("Score = %d, want 40", got)
		}
	})

	t.Run("data type tiers", func(t *testing.T) {
		t.Parallel()
		// One critical (5), one medium (2), one low (0.5) = 7.5 -> 8.
		types := []string{"Passwords", "Phone numbers", "Email addresses"}
		if got := Score(nil, nil, nil, nil, types); got != 8 {
			t.Errorf("Score = %d, want 8", got)
		}
	})

	t.Run("reputation component", func(t *testing.T) {
		t.Parallel()
		rep := &model.EmailReputation{
			Suspicious: true,
			Details:    model.ReputationDetails{CredentialsLeaked: true},
		}
		if got := Score(nil, rep, nil, nil, nil); got != 20 {
			t.Errorf("Score = %d, want 20", got)
		}
	})

	t.Run("web component counts social domains and keywords", func(t *testing.T) {
		t.Parallel()
		web := []model.WebResult{
			{Position: 1, Link: "https://www.linkedin.com/in/jane", Title: "Jane Doe"},
			{Position: 2, Link: "https://github.com/jane", Title: "jane"},
			{Position: 3, Link: "https://example.com/post", Title: "Jane Doe password leak", Snippet: "old breach"},
		}
		// volume min(3,5)=3, keywords min(1,5)=1, social min(2*2,10)=4 -> 8.
		if got := Score(nil, nil, nil, web, nil); got != 8 {
			t.Errorf("Score = %d, want 8", got)
		}
	})
}

// TestScoreClamped verifies the final score never exceeds 100.
func TestScoreClamped(t *testing.T) {
	t.Parallel()

	breaches := make([]model.BreachRecord, 30)
	for i := range breaches {
		breaches[i] = model.BreachRecord{
			Name:        "B" + string(rune('A'+i%26)) + string(rune('a'+i/26)),
			DataClasses: []string{"Passwords", "Credit cards", "Phone numbers"},
		}
	}
	rep := &model.EmailReputation{
		Suspicious: true,
		Details:    model.ReputationDetails{CredentialsLeaked: true},
	}
	posts := make([]model.SocialPost, 30)
	social := &model.SocialMentions{Posts: posts, Sentiment: model.SentimentCounts{Negative: 30}}
	web := make([]model.WebResult, 15)
	for i := range web {
		web[i] = model.WebResult{Position: i + 1, Link: "https://facebook.com/p/" + string(rune('a'+i)), Title: "password leak"}
	}
	types := []string{"Passwords", "Credit cards", "Payment info", "Financial data", "Phone numbers", "Security questions", "Email addresses"}

	got := Score(breaches, rep, social, web, types)
	if got != 100 {
		t.Errorf("Score = %d, want clamped to 100", got)
	}
}

// TestRegisteredDomain verifies eTLD+1 extraction used for social-domain
// classification.
func TestRegisteredDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{url: "https://www.linkedin.com/in/jane", want: "linkedin.com"},
		{url: "https://uk.linkedin.com/in/jane", want: "linkedin.com"},
		{url: "https://example.co.uk/page", want: "example.co.uk"},
		{url: "not a url", want: ""},
		{url: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			if got := RegisteredDomain(tt.url); got != tt.want {
				t.Errorf("RegisteredDomain(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}
