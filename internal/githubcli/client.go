package githubcli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/orgtools/orgops/internal/execshell"
)

const (
	repoSubcommandConstant                     = "repo"
	listSubcommandConstant                     = "list"
	authSubcommandConstant                     = "auth"
	statusSubcommandConstant                   = "status"
	apiSubcommandConstant                      = "api"
	jsonFlagConstant                           = "--json"
	limitFlagConstant                          = "--limit"
	noArchivedFlagConstant                     = "--no-archived"
	organizationFieldNameConstant              = "organization"
	repositoryFieldNameConstant                = "repository"
	contentPathFieldNameConstant               = "path"
	requiredValueMessageConstant               = "value required"
	executorNotConfiguredMessageConstant       = "github cli executor not configured"
	repositoryListingLimitConstant             = 100
	repositoryListJSONFieldsConstant           = "name,primaryLanguage"
	notFoundStatusFragmentConstant             = "HTTP 404"
	notFoundMessageFragmentConstant            = "Not Found"
	operationErrorMessageTemplateConstant      = "%s operation failed"
	operationErrorWithCauseTemplateConstant    = "%s operation failed: %s"
	responseDecodingErrorTemplateConstant      = "%s response decoding failed: %s"
	invalidInputErrorTemplateConstant          = "%s: %s"
	contentsEndpointTemplateConstant           = "repos/%s/%s/contents/%s"
	checkAuthenticationOperationNameConstant   = OperationName("CheckAuthentication")
	listRepositoriesOperationNameConstant      = OperationName("ListOrganizationRepositories")
	probeContentPathOperationNameConstant      = OperationName("ProbeContentPath")
	listDirectoryContentsOperationNameConstant = OperationName("ListDirectoryContents")
)

// OperationName describes a named GitHub CLI workflow supported by the client.
type OperationName string

// RepositoryListing contains the repository fields returned by gh repo list.
type RepositoryListing struct {
	Name            string
	PrimaryLanguage string
}

// DirectoryEntry describes a single item returned by a contents listing.
type DirectoryEntry struct {
	Name string
	Type string
}

// GitHubCommandExecutor is the minimal interface required from execshell.ShellExecutor.
type GitHubCommandExecutor interface {
	ExecuteGitHubCLI(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Client coordinates GitHub CLI invocations through execshell.
type Client struct {
	executor GitHubCommandExecutor
}

var (
	// ErrExecutorNotConfigured indicates the client was constructed without an executor.
	ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)
)

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// OperationError wraps execution issues for GitHub CLI operations.
type OperationError struct {
	Operation OperationName
	Cause     error
}

// Error describes the operation failure.
func (operationError OperationError) Error() string {
	if operationError.Cause == nil {
		return fmt.Sprintf(operationErrorMessageTemplateConstant, operationError.Operation)
	}
	return fmt.Sprintf(operationErrorWithCauseTemplateConstant, operationError.Operation, operationError.Cause)
}

// Unwrap exposes the underlying cause.
func (operationError OperationError) Unwrap() error {
	return operationError.Cause
}

// ResponseDecodingError indicates JSON decoding failures.
type ResponseDecodingError struct {
	Operation OperationName
	Cause     error
}

// Error describes the decoding failure.
func (decodingError ResponseDecodingError) Error() string {
	return fmt.Sprintf(responseDecodingErrorTemplateConstant, decodingError.Operation, decodingError.Cause)
}

// Unwrap exposes the underlying JSON error.
func (decodingError ResponseDecodingError) Unwrap() error {
	return decodingError.Cause
}

// NewClient constructs a GitHub CLI client.
func NewClient(executor GitHubCommandExecutor) (*Client, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &Client{executor: executor}, nil
}

// CheckAuthentication verifies the GitHub CLI is installed and holds active credentials.
func (client *Client) CheckAuthentication(executionContext context.Context) error {
	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			authSubcommandConstant,
			statusSubcommandConstant,
		},
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return OperationError{Operation: checkAuthenticationOperationNameConstant, Cause: executionError}
	}

	return nil
}

// ListOrganizationRepositories enumerates non-archived repositories using gh repo list.
//
// The listing is capped at the first 100 repositories; organizations beyond
// the cap are silently truncated by the collaborator contract.
func (client *Client) ListOrganizationRepositories(executionContext context.Context, organization string) ([]RepositoryListing, error) {
	organizationIdentifier := strings.TrimSpace(organization)
	if len(organizationIdentifier) == 0 {
		return nil, InvalidInputError{FieldName: organizationFieldNameConstant, Message: requiredValueMessageConstant}
	}

	commandDetails := execshell.CommandDetails{
		Arguments: []string{
			repoSubcommandConstant,
			listSubcommandConstant,
			organizationIdentifier,
			limitFlagConstant,
			strconv.Itoa(repositoryListingLimitConstant),
			noArchivedFlagConstant,
			jsonFlagConstant,
			repositoryListJSONFieldsConstant,
		},
	}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		return nil, OperationError{Operation: listRepositoriesOperationNameConstant, Cause: executionError}
	}

	var response []struct {
		Name            string `json:"name"`
		PrimaryLanguage *struct {
			Name string `json:"name"`
		} `json:"primaryLanguage"`
	}

	decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &response)
	if decodingError != nil {
		return nil, ResponseDecodingError{Operation: listRepositoriesOperationNameConstant, Cause: decodingError}
	}

	listings := make([]RepositoryListing, 0, len(response))
	for _, repositoryEntry := range response {
		primaryLanguage := ""
		if repositoryEntry.PrimaryLanguage != nil {
			primaryLanguage = repositoryEntry.PrimaryLanguage.Name
		}
		listings = append(listings, RepositoryListing{
			Name:            repositoryEntry.Name,
			PrimaryLanguage: primaryLanguage,
		})
	}

	return listings, nil
}

// PathExists reports whether the path exists on the repository default branch.
//
// A 404 from the contents endpoint yields (false, nil); any other failure is
// surfaced as an OperationError for the caller to handle.
func (client *Client) PathExists(executionContext context.Context, organization string, repository string, contentPath string) (bool, error) {
	commandDetails, inputError := client.contentsCommandDetails(organization, repository, contentPath)
	if inputError != nil {
		return false, inputError
	}

	_, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		if isNotFoundError(executionError) {
			return false, nil
		}
		return false, OperationError{Operation: probeContentPathOperationNameConstant, Cause: executionError}
	}

	return true, nil
}

// ListDirectoryContents returns the entries of a directory on the repository default branch.
//
// A 404 yields an empty listing without error, mirroring PathExists.
func (client *Client) ListDirectoryContents(executionContext context.Context, organization string, repository string, directoryPath string) ([]DirectoryEntry, error) {
	commandDetails, inputError := client.contentsCommandDetails(organization, repository, directoryPath)
	if inputError != nil {
		return nil, inputError
	}

	executionResult, executionError := client.executor.ExecuteGitHubCLI(executionContext, commandDetails)
	if executionError != nil {
		if isNotFoundError(executionError) {
			return nil, nil
		}
		return nil, OperationError{Operation: listDirectoryContentsOperationNameConstant, Cause: executionError}
	}

	var response []struct {
		Name string `json:"name"`
		Type string `json:"type"`
	}

	decodingError := json.Unmarshal([]byte(executionResult.StandardOutput), &response)
	if decodingError != nil {
		return nil, ResponseDecodingError{Operation: listDirectoryContentsOperationNameConstant, Cause: decodingError}
	}

	entries := make([]DirectoryEntry, 0, len(response))
	for _, directoryEntry := range response {
		entries = append(entries, DirectoryEntry{Name: directoryEntry.Name, Type: directoryEntry.Type})
	}

	return entries, nil
}

func (client *Client) contentsCommandDetails(organization string, repository string, contentPath string) (execshell.CommandDetails, error) {
	organizationIdentifier := strings.TrimSpace(organization)
	if len(organizationIdentifier) == 0 {
		return execshell.CommandDetails{}, InvalidInputError{FieldName: organizationFieldNameConstant, Message: requiredValueMessageConstant}
	}

	repositoryIdentifier := strings.TrimSpace(repository)
	if len(repositoryIdentifier) == 0 {
		return execshell.CommandDetails{}, InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}

	trimmedContentPath := strings.Trim(strings.TrimSpace(contentPath), "/")
	if len(trimmedContentPath) == 0 {
		return execshell.CommandDetails{}, InvalidInputError{FieldName: contentPathFieldNameConstant, Message: requiredValueMessageConstant}
	}

	return execshell.CommandDetails{
		Arguments: []string{
			apiSubcommandConstant,
			fmt.Sprintf(contentsEndpointTemplateConstant, organizationIdentifier, repositoryIdentifier, trimmedContentPath),
		},
	}, nil
}

func isNotFoundError(executionError error) bool {
	var failedError execshell.CommandFailedError
	if !errors.As(executionError, &failedError) {
		return false
	}

	combinedOutput := failedError.Result.StandardError + failedError.Result.StandardOutput
	return strings.Contains(combinedOutput, notFoundStatusFragmentConstant) ||
		strings.Contains(combinedOutput, notFoundMessageFragmentConstant)
}
