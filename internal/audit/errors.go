package audit

import "fmt"

const (
	authenticationErrorMessageConstant    = "GitHub CLI authentication failed; run 'gh auth login' and retry"
	authenticationErrorWithCauseTemplate  = "GitHub CLI authentication failed; run 'gh auth login' and retry: %s"
	emptyOrganizationErrorMessageTemplate = "organization %s has no repositories to audit"
)

// AuthenticationError indicates the GitHub CLI is unavailable or lacks credentials.
type AuthenticationError struct {
	Cause error
}

// Error describes the authentication failure.
func (authenticationError AuthenticationError) Error() string {
	if authenticationError.Cause == nil {
		return authenticationErrorMessageConstant
	}
	return fmt.Sprintf(authenticationErrorWithCauseTemplate, authenticationError.Cause)
}

// Unwrap exposes the underlying cause.
func (authenticationError AuthenticationError) Unwrap() error {
	return authenticationError.Cause
}

// EmptyOrganizationError indicates the organization listing returned no repositories.
type EmptyOrganizationError struct {
	Organization string
}

// Error describes the empty listing.
func (emptyError EmptyOrganizationError) Error() string {
	return fmt.Sprintf(emptyOrganizationErrorMessageTemplate, emptyError.Organization)
}
