// Package config provides configuration management for exposcan.
//
// Configuration is assembled from CLI flags and, optionally, a saved
// profile file (.exposcan in YAML format) that carries the scan subject
// so recurring scans don't need the full flag set. The populated Config
// is validated once up front and then passed through the application by
// dependency injection; there is no global state.
package config
