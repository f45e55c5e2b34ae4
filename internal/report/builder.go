package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/exposcan/exposcan/internal/model"
)

// Builder assembles vulnerability reports from merged scan results.
//
// Design decision: The clock and ID generator are injectable because the
// report is otherwise a deterministic function of its inputs, and tests
// assert on report content byte-for-byte.
type Builder struct {
	now   func() time.Time
	newID func() string
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithClock overrides the report timestamp source.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// WithIDGenerator overrides the report ID source.
func WithIDGenerator(newID func() string) BuilderOption {
	return func(b *Builder) {
		b.newID = newID
	}
}

// NewBuilder creates a report builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build assembles the final report for one scan. The password section is
// present iff the input carried a password; the dark web section is always
// derived from the merged breach list.
func (b *Builder) Build(input model.UserInput, scan model.AggregatedScan) *model.VulnerabilityReport {
	report := &model.VulnerabilityReport{
		ID:               b.newID(),
		Name:             input.Name,
		Email:            input.PrimaryEmail,
		AdditionalEmails: input.AdditionalEmails,
		Location:         input.Location,
		ScanDate:         b.now(),
		Scan:             scan,
		DarkWebFindings:  darkWebFindings(scan),
	}

	if input.Password != "" {
		report.PasswordSecurity = passwordSecurity(input.Password, scan.Breaches)
	}

	return report
}
