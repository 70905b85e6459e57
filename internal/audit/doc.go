// Package audit evaluates organization repositories against shared
// engineering standards.
//
// The service enumerates the non-archived repositories of a GitHub
// organization through the GitHub CLI, probes each repository for the
// expected configuration files, and renders an aggregate compliance report
// either as an aligned text table or as JSON.
package audit
