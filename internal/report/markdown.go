package report

import (
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/exposcan/exposcan/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the full report in Markdown format.
func (w *MarkdownWriter) Write(report *model.VulnerabilityReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeRisk(md, report)
	w.writeBreaches(md, report)
	w.writeDarkWeb(md, report)
	w.writeFootprint(md, report)
	w.writePassword(md, report)
	w.writeActions(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with scan information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.VulnerabilityReport) {
	md.H1("Digital Exposure Report")
	md.PlainText("")

	rows := [][]string{
		{"Name", report.Name},
		{"Email", "`" + report.Email + "`"},
		{"Scan Date", report.ScanDate.Format("2006-01-02 15:04:05 MST")},
		{"Report ID", "`" + report.ID + "`"},
	}
	if len(report.AdditionalEmails) > 0 {
		rows = append(rows, []string{"Also Scanned", "`" + strings.Join(report.AdditionalEmails, "`, `") + "`"})
	}
	if report.Location != "" {
		rows = append(rows, []string{"Location", report.Location})
	}
	if len(report.Scan.EmailsFailed) > 0 {
		rows = append(rows, []string{"Skipped", "`" + strings.Join(report.Scan.EmailsFailed, "`, `") + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeRisk writes the risk summary with a severity alert and, when
// breaches exist, a category pie chart.
func (w *MarkdownWriter) writeRisk(md *markdown.Markdown, report *model.VulnerabilityReport) {
	md.H2("Risk Summary")
	md.PlainText("")

	scan := report.Scan
	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Risk Level", w.riskBadge(scan.RiskLevel)},
			{"Risk Score", strconv.Itoa(scan.TotalRiskScore) + " / 100"},
			{"Breaches", strconv.Itoa(scan.Stats.BreachCount)},
			{"Digital Presence", strconv.Itoa(scan.Stats.DigitalPresenceScore) + " / 100"},
			{"Web Results", strconv.Itoa(scan.Stats.WebResultsCount)},
		},
	})
	md.PlainText("")

	w.writeAlert(md, scan)

	if len(scan.Stats.DataExposureByCategory) > 0 {
		w.writePieChart(md, scan)
	}
}

// riskBadge formats the risk level with a colored indicator.
func (w *MarkdownWriter) riskBadge(level model.RiskLevel) string {
	switch level {
	case model.RiskHigh:
		return "🔴 High"
	case model.RiskMedium:
		return "🟡 Medium"
	default:
		return "🟢 Low"
	}
}

// writeAlert writes an appropriate alert based on the risk level.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, scan model.AggregatedScan) {
	switch {
	case scan.RiskLevel == model.RiskHigh:
		md.Cautionf(
			"High exposure detected. %d breach(es) and a risk score of %d require immediate attention.",
			scan.Stats.BreachCount, scan.TotalRiskScore,
		)
	case scan.RiskLevel == model.RiskMedium:
		md.Warningf(
			"Moderate exposure detected. %d breach(es) should be reviewed.",
			scan.Stats.BreachCount,
		)
	case scan.Stats.BreachCount > 0:
		md.Note("Low exposure, but breach data exists. Review the recommended actions.")
	default:
		md.Tip("No breach exposure detected for the scanned addresses.")
	}
	md.PlainText("")
}

// writePieChart writes a mermaid pie chart of exposure by data category.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, scan model.AggregatedScan) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Data Exposure by Category"),
		piechart.WithShowData(true),
	)

	// Chart categories in the deduplicated first-seen order so output
	// is deterministic.
	for _, dataType := range scan.ExposedDataTypes {
		if count := scan.Stats.DataExposureByCategory[dataType]; count > 0 {
			chart.LabelAndIntValue(dataType, uint64(count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeBreaches writes the breach table.
func (w *MarkdownWriter) writeBreaches(md *markdown.Markdown, report *model.VulnerabilityReport) {
	md.H2("Breaches")
	md.PlainText("")

	if len(report.Scan.Breaches) == 0 {
		md.PlainText("No breaches found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Scan.Breaches))
	for i, b := range report.Scan.Breaches {
		title := b.Title
		if title == "" {
			title = b.Name
		}
		verified := "no"
		if b.IsVerified {
			verified = "yes"
		}
		rows[i] = []string{
			title,
			b.BreachDate,
			truncateString(strings.Join(b.DataClasses, ", "), 60),
			verified,
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Breach", "Date", "Exposed Data", "Verified"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeDarkWeb writes the dark web findings section.
func (w *MarkdownWriter) writeDarkWeb(md *markdown.Markdown, report *model.VulnerabilityReport) {
	findings := report.DarkWebFindings
	if findings == nil || findings.Mentions == 0 {
		return
	}

	md.H2("Dark Web Findings")
	md.PlainText("")
	md.PlainTextf("%d verified mention(s) across %d source(s).", findings.Mentions, len(findings.Sources))
	md.PlainText("")

	rows := make([][]string, len(findings.Sources))
	for i, src := range findings.Sources {
		lastSeen := src.LastSeen
		if lastSeen == "" {
			lastSeen = "-"
		}
		rows[i] = []string{src.Name, strconv.Itoa(src.Count), lastSeen}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Source", "Breaches", "Last Seen"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFootprint writes the digital footprint section.
func (w *MarkdownWriter) writeFootprint(md *markdown.Markdown, report *model.VulnerabilityReport) {
	fp := report.Scan.DigitalFootprint
	if len(fp.SocialProfiles) == 0 && len(fp.ProfessionalInfo) == 0 && len(fp.Locations) == 0 {
		return
	}

	md.H2("Digital Footprint")
	md.PlainText("")

	if len(fp.SocialProfiles) > 0 {
		rows := make([][]string, len(fp.SocialProfiles))
		for i, p := range fp.SocialProfiles {
			rows[i] = []string{p.Network, p.Username, p.URL}
		}
		md.Table(markdown.TableSet{
			Header: []string{"Network", "Username", "URL"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(fp.ProfessionalInfo) > 0 {
		items := make([]string, len(fp.ProfessionalInfo))
		for i, p := range fp.ProfessionalInfo {
			if p.Title != "" {
				items[i] = p.Title + " at " + p.Company
			} else {
				items[i] = p.Company
			}
		}
		md.PlainText("Professional information:")
		md.BulletList(items...)
		md.PlainText("")
	}

	if len(fp.Locations) > 0 {
		md.PlainTextf("Locations mentioned: %s", strings.Join(fp.Locations, ", "))
		md.PlainText("")
	}
}

// writePassword writes the password security section when present.
func (w *MarkdownWriter) writePassword(md *markdown.Markdown, report *model.VulnerabilityReport) {
	sec := report.PasswordSecurity
	if sec == nil {
		return
	}

	md.H2("Password Security")
	md.PlainText("")

	common := "no"
	if sec.IsCommon {
		common = "yes"
	}
	compromised := "no"
	if sec.Compromised {
		compromised = "yes"
	}
	md.Table(markdown.TableSet{
		Header: []string{"Check", "Result"},
		Rows: [][]string{
			{"Strength", strconv.Itoa(sec.Strength) + " / 5"},
			{"Common password", common},
			{"Password data leaked", compromised},
		},
	})
	md.PlainText("")
	md.BulletList(sec.Suggestions...)
	md.PlainText("")
}

// writeActions writes the recommended actions list.
func (w *MarkdownWriter) writeActions(md *markdown.Markdown, report *model.VulnerabilityReport) {
	if len(report.Scan.RecommendedActions) == 0 {
		return
	}

	md.H2("Recommended Actions")
	md.PlainText("")
	md.OrderedList(report.Scan.RecommendedActions...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by exposcan*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
