package aggregate

import (
	"strings"
	"testing"

	"github.com/exposcan/exposcan/internal/model"
)

func containsAction(actions []string, substr string) bool {
	for _, a := range actions {
		if strings.Contains(a, substr) {
			return true
		}
	}
	return false
}

// TestActionsBaseline verifies that a clean scan still gets the baseline
// advice, in order: password manager first, regular-scan reminder last.
func TestActionsBaseline(t *testing.T) {
	t.Parallel()

	actions := Actions(nil, nil)
	if len(actions) != 3 {
		t.Fatalf("Actions(nil, nil) returned %d actions, want 3: %v", len(actions), actions)
	}
	if actions[0] != actionPasswordManager {
		t.Errorf("first action = %q, want password manager advice", actions[0])
	}
	if actions[len(actions)-1] != actionRegularScans {
		t.Errorf("last action = %q, want regular-scan reminder", actions[len(actions)-1])
	}
}

// TestActionsBreachDriven verifies advice keyed off breach data classes.
func TestActionsBreachDriven(t *testing.T) {
	t.Parallel()

	breaches := []model.BreachRecord{
		{Name: "ExampleCo", DataClasses: []string{"Passwords", "Email addresses"}},
	}
	actions := Actions(breaches, nil)

	if !containsAction(actions, "Immediately change passwords on all accounts") {
		t.Errorf("expected password-change advice for passwords data class, got %v", actions)
	}
	if containsAction(actions, "credit card statements") {
		t.Errorf("unexpected credit-card advice without credit card data class")
	}

	t.Run("credit card classes add two actions", func(t *testing.T) {
		t.Parallel()
		withCards := Actions([]model.BreachRecord{
			{Name: "ShopCo", DataClasses: []string{"Credit cards"}},
		}, nil)
		if !containsAction(withCards, "credit card statements") || !containsAction(withCards, "new credit card") {
			t.Errorf("expected both credit-card actions, got %v", withCards)
		}
	})

	t.Run("phone and security question classes", func(t *testing.T) {
		t.Parallel()
		got := Actions([]model.BreachRecord{
			{Name: "TelCo", DataClasses: []string{"Phone numbers", "Security questions"}},
		}, nil)
		if !containsAction(got, "phishing") {
			t.Errorf("expected phishing caution for phone numbers, got %v", got)
		}
		if !containsAction(got, "security questions") {
			t.Errorf("expected security-question advice, got %v", got)
		}
	})
}

// TestActionsReputationDriven verifies advice keyed off reputation flags.
func TestActionsReputationDriven(t *testing.T) {
	t.Parallel()

	rep := &model.EmailReputation{
		Suspicious: true,
		Details:    model.ReputationDetails{CredentialsLeaked: true, DataBreach: true},
	}
	actions := Actions(nil, rep)

	for _, want := range []string{"appears suspicious", "have been leaked", "appears in data breaches"} {
		if !containsAction(actions, want) {
			t.Errorf("expected action containing %q, got %v", want, actions)
		}
	}
}

// TestActionsNoDedup verifies that per-pass output is not deduplicated;
// dedup is the merge step's job.
func TestActionsNoDedup(t *testing.T) {
	t.Parallel()

	breaches := []model.BreachRecord{{Name: "A", DataClasses: []string{"Passwords"}}}
	first := Actions(breaches, nil)
	second := Actions(breaches, nil)
	if len(first) != len(second) {
		t.Errorf("Actions is not deterministic: %d vs %d entries", len(first), len(second))
	}
}
