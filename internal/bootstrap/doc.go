// Package bootstrap copies organization standards files into a local
// repository clone.
//
// The bootstrapper reads a YAML sync manifest describing which template
// files to distribute, detects the repository's package manager from its
// lock file, and copies the templates into the target without overwriting
// files that already exist.
package bootstrap
