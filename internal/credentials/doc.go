// Package credentials stores the API keys the source adapters need.
//
// Keys are kept in a SQLite database in the user's data directory, sealed
// with ChaCha20-Poly1305 under a random master key held in a 0600 file in
// the user's config directory. The master key is generated on first use.
// This protects against casual disclosure (backups, grep, shared dumps of
// the data directory), not against an attacker with the same local user's
// privileges, who could read the key file too.
package credentials
