package report

import (
	"strings"
	"unicode"

	"github.com/exposcan/exposcan/internal/model"
)

// commonPasswords is a deny-list of passwords seen at the top of every
// public leak corpus. Matching is case-insensitive.
var commonPasswords = map[string]bool{
	"123456":      true,
	"123456789":   true,
	"12345678":    true,
	"12345":       true,
	"1234567":     true,
	"password":    true,
	"password1":   true,
	"password123": true,
	"qwerty":      true,
	"qwerty123":   true,
	"abc123":      true,
	"111111":      true,
	"123123":      true,
	"admin":       true,
	"letmein":     true,
	"welcome":     true,
	"monkey":      true,
	"dragon":      true,
	"iloveyou":    true,
	"sunshine":    true,
	"princess":    true,
	"football":    true,
	"baseball":    true,
	"superman":    true,
	"trustno1":    true,
	"master":      true,
	"shadow":      true,
	"654321":      true,
	"000000":      true,
	"696969":      true,
}

// passwordSecurity runs the local password heuristics. The password is
// only ever compared against the in-process deny-list and scored on shape;
// it is never sent anywhere or logged.
//
// Compromised is an approximation: it flags that password-class data for
// the scanned addresses has leaked somewhere, not that this exact password
// appeared in a leak.
func passwordSecurity(password string, breaches []model.BreachRecord) *model.PasswordSecurity {
	var (
		hasMinLength  = len(password) >= 8
		hasGoodLength = len(password) >= 12
		hasUpper      bool
		hasDigit      bool
		hasSymbol     bool
	)

	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r):
			hasSymbol = true
		}
	}

	strength := 0
	for _, ok := range []bool{hasMinLength, hasGoodLength, hasUpper, hasDigit, hasSymbol} {
		if ok {
			strength++
		}
	}

	sec := &model.PasswordSecurity{
		Strength:    strength,
		IsCommon:    commonPasswords[strings.ToLower(password)],
		Compromised: breachExposesPasswords(breaches),
	}

	var suggestions []string
	if sec.IsCommon {
		suggestions = append(suggestions, "This password is extremely common. Replace it everywhere it is used.")
	}
	if sec.Compromised {
		suggestions = append(suggestions, "Password data for your accounts has appeared in breaches. Change this password if it is reused anywhere.")
	}
	if !hasMinLength {
		suggestions = append(suggestions, "Use at least 8 characters.")
	} else if !hasGoodLength {
		suggestions = append(suggestions, "Use 12 or more characters for better resistance to guessing.")
	}
	if !hasUpper {
		suggestions = append(suggestions, "Add uppercase letters.")
	}
	if !hasDigit {
		suggestions = append(suggestions, "Add numbers.")
	}
	if !hasSymbol {
		suggestions = append(suggestions, "Add symbols.")
	}
	if len(suggestions) == 0 {
		suggestions = append(suggestions, "Your password has good complexity.")
	}
	suggestions = append(suggestions, "Use a password manager to keep every account's password unique.")
	sec.Suggestions = suggestions

	return sec
}
