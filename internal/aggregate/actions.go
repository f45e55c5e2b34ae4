package aggregate

import (
	"strings"

	"github.com/exposcan/exposcan/internal/model"
)

// Baseline advice that applies to every scan, regardless of findings.
const (
	actionPasswordManager = "Use a password manager to create and store strong, unique passwords"
	actionTwoFactor       = "Enable two-factor authentication on all important accounts"
	actionRegularScans    = "Regularly scan your email for new breaches and data exposures"
)

// Actions builds the ordered recommended-action list for one pass: fixed
// baseline advice, then advice keyed off specific breach data classes, then
// reputation-driven advice, then a closing reminder.
//
// The list is not deduplicated here. Deduplication happens when passes for
// multiple email addresses are merged, so per-pass output stays a pure
// function of this pass's findings.
func Actions(breaches []model.BreachRecord, rep *model.EmailReputation) []string {
	actions := []string{
		actionPasswordManager,
		actionTwoFactor,
	}

	if len(breaches) > 0 {
		actions = append(actions, "Change passwords for all accounts associated with your email")

		classes := make(map[string]bool)
		for _, breach := range breaches {
			for _, class := range breach.DataClasses {
				classes[strings.ToLower(class)] = true
			}
		}

		if classes["passwords"] || classes["password"] {
			actions = append(actions, "Immediately change passwords on all accounts, starting with financial and email accounts")
		}
		if classes["credit cards"] || classes["credit card"] || classes["payment info"] {
			actions = append(actions,
				"Check your credit card statements for unauthorized charges",
				"Consider requesting a new credit card from your bank",
			)
		}
		if classes["phone numbers"] || classes["phone number"] {
			actions = append(actions, "Be cautious of unexpected calls or SMS messages that may be phishing attempts")
		}
		if classes["security questions"] || classes["security question"] {
			actions = append(actions, "Update security questions and answers on your important accounts")
		}
	}

	if rep != nil {
		if rep.Suspicious {
			actions = append(actions, "Your email address appears suspicious. Consider using a different email address for important accounts.")
		}
		if rep.Details.CredentialsLeaked {
			actions = append(actions, "Credentials for this email have been leaked. Change all passwords immediately.")
		}
		if rep.Details.DataBreach {
			actions = append(actions, "This email appears in data breaches. Review all account security.")
		}
	}

	actions = append(actions, actionRegularScans)
	return actions
}
