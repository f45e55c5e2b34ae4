// Package database provides optional SQLite persistence for scan history.
//
// Saving is opt-in: a scan only reaches the database when the user asks
// for it. Stored rows carry a summary (risk level, score, breach count)
// beside the full report JSON so history listings and drift comparisons
// never need to deserialize whole reports.
package database
