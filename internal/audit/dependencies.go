package audit

import (
	"context"

	"github.com/orgtools/orgops/internal/githubcli"
)

// AuthenticationVerifier confirms the GitHub CLI holds active credentials.
type AuthenticationVerifier interface {
	CheckAuthentication(executionContext context.Context) error
}

// RepositoryLister enumerates the non-archived repositories of an organization.
type RepositoryLister interface {
	ListOrganizationRepositories(executionContext context.Context, organization string) ([]githubcli.RepositoryListing, error)
}

// PathProber reports whether a path exists on a repository default branch.
type PathProber interface {
	PathExists(executionContext context.Context, organization string, repository string, contentPath string) (bool, error)
}

// DirectoryLister enumerates a directory on a repository default branch.
type DirectoryLister interface {
	ListDirectoryContents(executionContext context.Context, organization string, repository string, directoryPath string) ([]githubcli.DirectoryEntry, error)
}

// GitHubAuditClient combines the GitHub CLI capabilities required by the
// audit service; *githubcli.Client satisfies it.
type GitHubAuditClient interface {
	AuthenticationVerifier
	RepositoryLister
	PathProber
	DirectoryLister
}
