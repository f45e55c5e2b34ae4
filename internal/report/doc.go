// Package report builds the final vulnerability report from a merged scan
// and writes it in multiple formats.
//
// Build derives the report-only sections (dark web findings, password
// security heuristics) from scan data; it performs no network calls and a
// supplied password never leaves the process. Writers share one interface
// so the CLI can emit human-readable text, JSON, and Markdown from the
// same report, alone or combined through MultiWriter.
package report
