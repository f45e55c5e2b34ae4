package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/exposcan/exposcan/internal/model"
)

func sampleReport() *model.VulnerabilityReport {
	return &model.VulnerabilityReport{
		ID:       "report-1",
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Location: "Berlin",
		ScanDate: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		Scan: model.AggregatedScan{
			Breaches: []model.BreachRecord{
				{
					Name:        "Alpha",
					Title:       "Alpha Breach",
					BreachDate:  "2022-05-01",
					DataClasses: []string{"Passwords", "Email addresses"},
					IsVerified:  true,
				},
			},
			TotalRiskScore:     42,
			RiskLevel:          model.RiskMedium,
			ExposedDataTypes:   []string{"Passwords", "Email addresses"},
			RecommendedActions: []string{"Use a password manager to create and store strong, unique passwords"},
			Stats: model.Statistics{
				BreachCount:            1,
				DataExposureByCategory: map[string]int{"Passwords": 1, "Email addresses": 1},
			},
			EmailsScanned: []string{"jane@example.com"},
		},
		DarkWebFindings: &model.DarkWebFindings{
			Mentions: 1,
			Sources:  []model.DarkWebSource{{Name: "alpha.example", Count: 1, LastSeen: "2022-05-01"}},
		},
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewJSONWriter(&buf, WithPrettyPrint())

	n, err := w.Write(sampleReport())
	if err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if n != buf.Len() {
		t.Errorf("Write returned %d bytes, buffer has %d", n, buf.Len())
	}

	var decoded model.VulnerabilityReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.ID != "report-1" || decoded.Scan.TotalRiskScore != 42 {
		t.Errorf("decoded report = %+v, want round-tripped fields", decoded)
	}
	if decoded.Scan.RiskLevel != model.RiskMedium {
		t.Errorf("RiskLevel = %v, want medium round-tripped as string", decoded.Scan.RiskLevel)
	}
}

func TestVersionedJSONWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewVersionedJSONWriter(&buf, "1.2.3")

	if _, err := w.Write(sampleReport()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	var wrapped VersionedJSONReport
	if err := json.Unmarshal(buf.Bytes(), &wrapped); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if wrapped.Version != "1.2.3" || wrapped.Report == nil || wrapped.Report.ID != "report-1" {
		t.Errorf("wrapped = %+v, want version metadata around the report", wrapped)
	}
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewSimpleWriter(&buf)

	if _, err := w.Write(sampleReport()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"DIGITAL EXPOSURE REPORT",
		"jane@example.com",
		"MEDIUM",
		"42 / 100",
		"Alpha Breach",
		"DARK WEB FINDINGS",
		"RECOMMENDED ACTIONS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(out, "PASSWORD SECURITY") {
		t.Error("password section present although the report has none")
	}
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	w := NewMarkdownWriter(&buf)

	if _, err := w.Write(sampleReport()); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Digital Exposure Report",
		"## Risk Summary",
		"🟡 Medium",
		"## Breaches",
		"Alpha Breach",
		"## Dark Web Findings",
		"## Recommended Actions",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

// failWriter fails after the first write to exercise MultiWriter's
// error propagation.
type failWriter struct{}

func (failWriter) Write(*model.VulnerabilityReport) (int, error) {
	return 0, errors.New("write failed")
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all writers", func(t *testing.T) {
		t.Parallel()
		var a, b bytes.Buffer
		mw := NewMultiWriter(NewJSONWriter(&a), NewSimpleWriter(&b))

		if _, err := mw.Write(sampleReport()); err != nil {
			t.Fatalf("Write returned error: %v", err)
		}
		if a.Len() == 0 || b.Len() == 0 {
			t.Errorf("writer outputs = %d/%d bytes, want both written", a.Len(), b.Len())
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()
		var after bytes.Buffer
		mw := NewMultiWriter(failWriter{}, NewJSONWriter(&after))

		if _, err := mw.Write(sampleReport()); err == nil {
			t.Error("Write returned nil error, want propagated failure")
		}
		if after.Len() != 0 {
			t.Errorf("later writer received %d bytes after failure, want 0", after.Len())
		}
	})
}
