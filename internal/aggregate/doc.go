// Package aggregate computes derived exposure metrics from the raw outputs
// of the source adapters: exposed data types, risk level, risk score,
// recommended actions, digital footprint, and display statistics.
//
// Everything in this package is a pure function over one pass's data.
// Merging across multiple email passes lives in the scan package; this
// separation keeps the scoring formulas independently testable.
//
// The risk level and risk score are intentionally two different weightings:
// the level is a coarse classification from capped component scores
// normalized against their cap sum, while the score is a separate 0-100
// integer shown to the user directly.
package aggregate
