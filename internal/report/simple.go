package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/exposcan/exposcan/internal/model"
)

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// showEmpty controls whether sections with no findings are shown.
	showEmpty bool

	// verbose enables additional detail in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithShowEmpty configures the writer to show empty sections.
func WithShowEmpty(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showEmpty = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the full report in human-readable format.
func (w *SimpleWriter) Write(report *model.VulnerabilityReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeRisk(&sb, report)
	w.writeBreaches(&sb, report)
	w.writeDarkWeb(&sb, report)
	w.writeFootprint(&sb, report)
	w.writePassword(&sb, report)
	w.writeActions(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with scan information.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.VulnerabilityReport) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    DIGITAL EXPOSURE REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Name:        %s\n", report.Name))
	sb.WriteString(fmt.Sprintf("Email:       %s\n", report.Email))
	if len(report.AdditionalEmails) > 0 {
		sb.WriteString(fmt.Sprintf("Also scanned: %s\n", strings.Join(report.AdditionalEmails, ", ")))
	}
	if report.Location != "" {
		sb.WriteString(fmt.Sprintf("Location:    %s\n", report.Location))
	}
	sb.WriteString(fmt.Sprintf("Scan Date:   %s\n", report.ScanDate.Format("2006-01-02 15:04:05 MST")))
	if len(report.Scan.EmailsFailed) > 0 {
		sb.WriteString(fmt.Sprintf("Skipped:     %s (scan failed)\n", strings.Join(report.Scan.EmailsFailed, ", ")))
	}
	sb.WriteString("\n")
}

// writeRisk writes the risk summary section.
func (w *SimpleWriter) writeRisk(sb *strings.Builder, report *model.VulnerabilityReport) {
	w.sectionHeader(sb, "RISK SUMMARY")

	sb.WriteString(fmt.Sprintf("  Risk Level:  %s\n", strings.ToUpper(report.Scan.RiskLevel.String())))
	sb.WriteString(fmt.Sprintf("  Risk Score:  %d / 100\n", report.Scan.TotalRiskScore))
	sb.WriteString(fmt.Sprintf("  Breaches:    %d\n", report.Scan.Stats.BreachCount))
	sb.WriteString(fmt.Sprintf("  Presence:    %d / 100 digital presence score\n", report.Scan.Stats.DigitalPresenceScore))
	sb.WriteString("\n")

	if len(report.Scan.ExposedDataTypes) > 0 {
		sb.WriteString(fmt.Sprintf("  Exposed data: %s\n", strings.Join(report.Scan.ExposedDataTypes, ", ")))
		sb.WriteString("\n")
	}
}

// writeBreaches writes the breach list.
func (w *SimpleWriter) writeBreaches(sb *strings.Builder, report *model.VulnerabilityReport) {
	if len(report.Scan.Breaches) == 0 && !w.showEmpty {
		return
	}

	w.sectionHeader(sb, "BREACHES")

	if len(report.Scan.Breaches) == 0 {
		sb.WriteString("  No breaches found\n\n")
		return
	}

	for _, breach := range report.Scan.Breaches {
		title := breach.Title
		if title == "" {
			title = breach.Name
		}
		sb.WriteString(fmt.Sprintf("  * %s (%s)\n", title, breach.BreachDate))
		if len(breach.DataClasses) > 0 {
			sb.WriteString(fmt.Sprintf("    Exposed: %s\n", strings.Join(breach.DataClasses, ", ")))
		}
		if w.verbose && breach.PwnCount > 0 {
			sb.WriteString(fmt.Sprintf("    Accounts affected: %d\n", breach.PwnCount))
		}
	}
	sb.WriteString("\n")
}

// writeDarkWeb writes the dark web findings section.
func (w *SimpleWriter) writeDarkWeb(sb *strings.Builder, report *model.VulnerabilityReport) {
	findings := report.DarkWebFindings
	if findings == nil || (findings.Mentions == 0 && !w.showEmpty) {
		return
	}

	w.sectionHeader(sb, "DARK WEB FINDINGS")

	sb.WriteString(fmt.Sprintf("  Verified mentions: %d\n", findings.Mentions))
	for _, src := range findings.Sources {
		sb.WriteString(fmt.Sprintf("  * %s: %d breach(es)", src.Name, src.Count))
		if src.LastSeen != "" {
			sb.WriteString(fmt.Sprintf(", last seen %s", src.LastSeen))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// writeFootprint writes the digital footprint section.
func (w *SimpleWriter) writeFootprint(sb *strings.Builder, report *model.VulnerabilityReport) {
	fp := report.Scan.DigitalFootprint
	empty := len(fp.SocialProfiles) == 0 && len(fp.ProfessionalInfo) == 0 && len(fp.Locations) == 0
	if empty && !w.showEmpty {
		return
	}

	w.sectionHeader(sb, "DIGITAL FOOTPRINT")

	if len(fp.SocialProfiles) > 0 {
		sb.WriteString("  Social profiles:\n")
		for _, p := range fp.SocialProfiles {
			sb.WriteString(fmt.Sprintf("    [+] %s: %s\n", p.Network, p.URL))
		}
	}
	if len(fp.ProfessionalInfo) > 0 {
		sb.WriteString("  Professional:\n")
		for _, p := range fp.ProfessionalInfo {
			if p.Title != "" {
				sb.WriteString(fmt.Sprintf("    [+] %s at %s\n", p.Title, p.Company))
			} else {
				sb.WriteString(fmt.Sprintf("    [+] %s\n", p.Company))
			}
		}
	}
	if len(fp.Locations) > 0 {
		sb.WriteString(fmt.Sprintf("  Locations: %s\n", strings.Join(fp.Locations, ", ")))
	}
	if w.verbose && len(fp.Interests) > 0 {
		sb.WriteString(fmt.Sprintf("  Interests: %s\n", strings.Join(fp.Interests, ", ")))
	}
	sb.WriteString("\n")
}

// writePassword writes the password security section when present.
func (w *SimpleWriter) writePassword(sb *strings.Builder, report *model.VulnerabilityReport) {
	sec := report.PasswordSecurity
	if sec == nil {
		return
	}

	w.sectionHeader(sb, "PASSWORD SECURITY")

	sb.WriteString(fmt.Sprintf("  Strength:    %d / 5\n", sec.Strength))
	sb.WriteString(fmt.Sprintf("  Common:      %t\n", sec.IsCommon))
	sb.WriteString(fmt.Sprintf("  Compromised: %t\n", sec.Compromised))
	for _, s := range sec.Suggestions {
		sb.WriteString(fmt.Sprintf("  * %s\n", s))
	}
	sb.WriteString("\n")
}

// writeActions writes the recommended actions.
func (w *SimpleWriter) writeActions(sb *strings.Builder, report *model.VulnerabilityReport) {
	if len(report.Scan.RecommendedActions) == 0 && !w.showEmpty {
		return
	}

	w.sectionHeader(sb, "RECOMMENDED ACTIONS")

	for i, action := range report.Scan.RecommendedActions {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, action))
	}
	sb.WriteString("\n")
}

// sectionHeader writes a dashed section header.
func (w *SimpleWriter) sectionHeader(sb *strings.Builder, title string) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by exposcan\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}
