// Package model defines the core data structures shared across exposcan:
// user input, per-source lookup results, the aggregated scan, and the final
// vulnerability report.
//
// All types in this package are plain data carriers. Scoring and derivation
// logic lives in the aggregate package; merging lives in the scan package.
package model
