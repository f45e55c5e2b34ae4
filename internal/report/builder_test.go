package report

import (
	"testing"
	"time"

	"github.com/exposcan/exposcan/internal/model"
)

func fixedBuilder() *Builder {
	return NewBuilder(
		WithClock(func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }),
		WithIDGenerator(func() string { return "report-1" }),
	)
}

func TestBuilderBuild(t *testing.T) {
	t.Parallel()

	input := model.UserInput{
		Name:             "Jane Doe",
		PrimaryEmail:     "jane@example.com",
		AdditionalEmails: []string{"jd@other.example"},
		Location:         "Berlin",
	}
	scan := model.AggregatedScan{
		Breaches:       []model.BreachRecord{{Name: "Alpha", IsVerified: true}},
		TotalRiskScore: 42,
		RiskLevel:      model.RiskMedium,
	}

	report := fixedBuilder().Build(input, scan)

	if report.ID != "report-1" {
		t.Errorf("ID = %q, want injected generator output", report.ID)
	}
	if report.Name != "Jane Doe" || report.Email != "jane@example.com" || report.Location != "Berlin" {
		t.Errorf("identity fields = %q/%q/%q, want input carried over", report.Name, report.Email, report.Location)
	}
	if !report.ScanDate.Equal(time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("ScanDate = %v, want injected clock output", report.ScanDate)
	}
	if report.DarkWebFindings == nil {
		t.Error("DarkWebFindings = nil, want always derived")
	}
	if report.PasswordSecurity != nil {
		t.Error("PasswordSecurity present without a supplied password")
	}
}

func TestBuilderBuildWithPassword(t *testing.T) {
	t.Parallel()

	input := model.UserInput{
		Name:         "Jane Doe",
		PrimaryEmail: "jane@example.com",
		Password:     "hunter2",
	}

	report := fixedBuilder().Build(input, model.AggregatedScan{})
	if report.PasswordSecurity == nil {
		t.Fatal("PasswordSecurity = nil, want present when a password was supplied")
	}
}

func TestDarkWebFindings(t *testing.T) {
	t.Parallel()

	scan := model.AggregatedScan{
		Breaches: []model.BreachRecord{
			{Name: "Alpha2020", Domain: "alpha.example", BreachDate: "2020-01-01", IsVerified: true},
			{Name: "Alpha2023", Domain: "alpha.example", BreachDate: "2023-06-15", IsVerified: true},
			{Name: "Beta", Domain: "beta.example", BreachDate: "2021-03-03", IsVerified: true},
			{Name: "SpamHaul", Domain: "spam.example", IsVerified: true, IsSpamList: true},
			{Name: "Unverified", Domain: "who.example", IsVerified: false},
			{Name: "NoDomain", BreachDate: "2019-09-09", IsVerified: true},
		},
		ExposedDataTypes: []string{"Passwords"},
	}

	findings := darkWebFindings(scan)

	if findings.Mentions != 4 {
		t.Errorf("Mentions = %d, want 4 (spam lists and unverified excluded)", findings.Mentions)
	}
	if len(findings.Sources) != 3 {
		t.Fatalf("Sources = %+v, want 3 grouped sources", findings.Sources)
	}
	if findings.Sources[0].Name != "alpha.example" || findings.Sources[0].Count != 2 {
		t.Errorf("Sources[0] = %+v, want alpha.example with 2 breaches first", findings.Sources[0])
	}
	if findings.Sources[0].LastSeen != "2023-06-15" {
		t.Errorf("Sources[0].LastSeen = %q, want most recent date", findings.Sources[0].LastSeen)
	}
	if findings.Sources[2].Name != "NoDomain" {
		t.Errorf("Sources[2] = %+v, want breach name fallback when domain is empty", findings.Sources[2])
	}
	if len(findings.ExposedInfo) != 1 || findings.ExposedInfo[0] != "Passwords" {
		t.Errorf("ExposedInfo = %v, want exposed data types", findings.ExposedInfo)
	}
}
