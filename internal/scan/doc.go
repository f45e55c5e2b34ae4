// Package scan orchestrates a full exposure scan: it iterates the input
// email addresses strictly sequentially, fans out all source adapters
// concurrently for each address, and folds the per-address results into a
// single aggregated scan.
//
// The package owns two pieces of policy. First, failure isolation: only
// the breach source can fail a pass, a failed pass skips just its email,
// and an error reaches the caller only when input is invalid or every
// pass failed. Second, merging: Merge is a pure function implementing the
// documented invariants (breach dedup by name, running-average score,
// monotone risk level, set-union collections, rank-sorted deduplicated
// web results).
package scan
