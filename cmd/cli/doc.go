// Package cli assembles the orgops command hierarchy.
//
// It wires configuration loading, logger construction, and the audit and
// bootstrap subcommands into a single Cobra application.
package cli
