// Package main provides the entry point for the exposcan CLI.
//
// exposcan scans a person's digital exposure: known data breaches,
// email reputation, username presence across social networks, public
// mentions, and web search results. The collected data is scored and
// assembled into a vulnerability report.
//
// Usage:
//
//	exposcan scan --name "Jane Doe" --email jane@example.com
//	exposcan keys set hibp <api-key>
//
// See --help for all available options.
package main

// main is the entry point for exposcan.
func main() {
	Execute()
}
