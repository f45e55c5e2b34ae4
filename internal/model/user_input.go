package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// emailPattern matches the local@domain.tld shape we require for scan input.
// This is deliberately a syntax check, not full RFC 5322 validation: the
// lookup services reject anything unusual anyway, and failing fast here gives
// a clearer error than a string of empty adapter results.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Input validation errors.
var (
	// ErrNameRequired is returned when the name field is empty.
	ErrNameRequired = errors.New("name is required")

	// ErrEmailRequired is returned when the primary email is empty.
	ErrEmailRequired = errors.New("primary email is required")
)

// UserInput holds the identity fields a user submits for a scan.
//
// Name and PrimaryEmail are mandatory. AdditionalEmails extends the scan to
// further addresses; order is preserved because the coordinator scans them
// sequentially in input order. Location refines web searches. Password, when
// supplied, is only used for local strength heuristics and is never sent to
// any lookup service.
type UserInput struct {
	// Name is the person's full name.
	Name string `json:"name"`

	// PrimaryEmail is the main address to scan.
	PrimaryEmail string `json:"primary_email"`

	// AdditionalEmails lists further addresses to scan, in order.
	AdditionalEmails []string `json:"additional_emails,omitempty"`

	// Location is an optional free-form location used to refine web search.
	Location string `json:"location,omitempty"`

	// Password is optional and analyzed locally only.
	// It is excluded from JSON so that it never lands in saved reports.
	Password string `json:"-"`
}

// Validate checks the input invariants: name and primary email must be
// non-empty and every email must be syntactically valid.
func (u *UserInput) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return ErrNameRequired
	}
	if strings.TrimSpace(u.PrimaryEmail) == "" {
		return ErrEmailRequired
	}
	for _, email := range u.Emails() {
		if !emailPattern.MatchString(email) {
			return fmt.Errorf("invalid email address: %q", email)
		}
	}
	return nil
}

// Emails returns all addresses to scan: the primary address first, then the
// additional addresses in input order. Blank entries are skipped.
func (u *UserInput) Emails() []string {
	emails := make([]string, 0, 1+len(u.AdditionalEmails))
	if u.PrimaryEmail != "" {
		emails = append(emails, u.PrimaryEmail)
	}
	for _, email := range u.AdditionalEmails {
		if strings.TrimSpace(email) != "" {
			emails = append(emails, email)
		}
	}
	return emails
}

// Username derives a lookup handle from an email address: the local part,
// unless it is purely numeric (numeric handles produce only false positives
// on username-presence sites). Returns "" when no usable handle exists.
func Username(email string) string {
	local, _, ok := strings.Cut(email, "@")
	if !ok || local == "" {
		return ""
	}
	for _, r := range local {
		if r < '0' || r > '9' {
			return local
		}
	}
	return ""
}
