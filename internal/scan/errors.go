package scan

import "errors"

// ErrAllScansFailed is returned when every per-email pass failed and no
// data could be aggregated at all. Partial failure is not an error; the
// skipped addresses are reported in AggregatedScan.EmailsFailed instead.
var ErrAllScansFailed = errors.New("all email scans failed")
