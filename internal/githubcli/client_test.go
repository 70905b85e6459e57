package githubcli_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgtools/orgops/internal/execshell"
	"github.com/orgtools/orgops/internal/githubcli"
)

const (
	testOrganizationNameConstant           = "example-org"
	testRepositoryNameConstant             = "service-api"
	testContentPathConstant                = "lefthook.yml"
	testMissingExecutorCaseNameConstant    = "missing_executor"
	testConfiguredExecutorCaseNameConstant = "configured_executor"
	testRepositoryListPayloadConstant      = `[{"name":"tooling","primaryLanguage":{"name":"Go"}},{"name":"website","primaryLanguage":null}]`
	testDirectoryListingPayloadConstant    = `[{"name":"ci.yml","type":"file"},{"name":"release.yml","type":"file"}]`
	testNotFoundStderrConstant             = "gh: Not Found (HTTP 404)"
	testServerErrorStderrConstant          = "gh: Internal Server Error (HTTP 500)"
)

type scriptedExecutor struct {
	recordedDetails []execshell.CommandDetails
	result          execshell.ExecutionResult
	failure         error
}

func (executor *scriptedExecutor) ExecuteGitHubCLI(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.recordedDetails = append(executor.recordedDetails, details)
	if executor.failure != nil {
		return execshell.ExecutionResult{}, executor.failure
	}
	return executor.result, nil
}

func notFoundFailure() error {
	return execshell.CommandFailedError{
		Command: execshell.ShellCommand{Name: execshell.CommandGitHub},
		Result:  execshell.ExecutionResult{StandardError: testNotFoundStderrConstant, ExitCode: 1},
	}
}

func serverFailure() error {
	return execshell.CommandFailedError{
		Command: execshell.ShellCommand{Name: execshell.CommandGitHub},
		Result:  execshell.ExecutionResult{StandardError: testServerErrorStderrConstant, ExitCode: 1},
	}
}

func TestNewClientValidation(testInstance *testing.T) {
	testCases := []struct {
		name          string
		executor      githubcli.GitHubCommandExecutor
		expectedError error
	}{
		{
			name:          testMissingExecutorCaseNameConstant,
			executor:      nil,
			expectedError: githubcli.ErrExecutorNotConfigured,
		},
		{
			name:          testConfiguredExecutorCaseNameConstant,
			executor:      &scriptedExecutor{},
			expectedError: nil,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			client, constructionError := githubcli.NewClient(testCase.executor)
			if testCase.expectedError != nil {
				require.ErrorIs(testInstance, constructionError, testCase.expectedError)
				require.Nil(testInstance, client)
				return
			}
			require.NoError(testInstance, constructionError)
			require.NotNil(testInstance, client)
		})
	}
}

func TestCheckAuthentication(testInstance *testing.T) {
	testCases := []struct {
		name        string
		failure     error
		expectError bool
	}{
		{
			name:        "authenticated",
			failure:     nil,
			expectError: false,
		},
		{
			name:        "missing_credentials",
			failure:     serverFailure(),
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &scriptedExecutor{failure: testCase.failure}
			client, constructionError := githubcli.NewClient(executor)
			require.NoError(testInstance, constructionError)

			authenticationError := client.CheckAuthentication(context.Background())

			require.Len(testInstance, executor.recordedDetails, 1)
			require.Equal(testInstance, []string{"auth", "status"}, executor.recordedDetails[0].Arguments)
			if testCase.expectError {
				var operationError githubcli.OperationError
				require.ErrorAs(testInstance, authenticationError, &operationError)
				return
			}
			require.NoError(testInstance, authenticationError)
		})
	}
}

func TestListOrganizationRepositories(testInstance *testing.T) {
	testCases := []struct {
		name             string
		organization     string
		payload          string
		failure          error
		expectedListings []githubcli.RepositoryListing
		expectError      bool
	}{
		{
			name:         "decodes_listing_with_null_language",
			organization: testOrganizationNameConstant,
			payload:      testRepositoryListPayloadConstant,
			expectedListings: []githubcli.RepositoryListing{
				{Name: "tooling", PrimaryLanguage: "Go"},
				{Name: "website", PrimaryLanguage: ""},
			},
		},
		{
			name:         "blank_organization_rejected",
			organization: "   ",
			expectError:  true,
		},
		{
			name:         "command_failure_wrapped",
			organization: testOrganizationNameConstant,
			failure:      serverFailure(),
			expectError:  true,
		},
		{
			name:         "malformed_payload_rejected",
			organization: testOrganizationNameConstant,
			payload:      "{not json",
			expectError:  true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &scriptedExecutor{
				result:  execshell.ExecutionResult{StandardOutput: testCase.payload},
				failure: testCase.failure,
			}
			client, constructionError := githubcli.NewClient(executor)
			require.NoError(testInstance, constructionError)

			listings, listingError := client.ListOrganizationRepositories(context.Background(), testCase.organization)

			if testCase.expectError {
				require.Error(testInstance, listingError)
				return
			}
			require.NoError(testInstance, listingError)
			require.Equal(testInstance, testCase.expectedListings, listings)
			require.Len(testInstance, executor.recordedDetails, 1)
			require.Equal(
				testInstance,
				[]string{"repo", "list", testOrganizationNameConstant, "--limit", "100", "--no-archived", "--json", "name,primaryLanguage"},
				executor.recordedDetails[0].Arguments,
			)
		})
	}
}

func TestPathExists(testInstance *testing.T) {
	testCases := []struct {
		name           string
		failure        error
		expectedExists bool
		expectError    bool
	}{
		{
			name:           "path_present",
			failure:        nil,
			expectedExists: true,
		},
		{
			name:           "path_absent",
			failure:        notFoundFailure(),
			expectedExists: false,
		},
		{
			name:        "probe_failure_surfaced",
			failure:     serverFailure(),
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &scriptedExecutor{failure: testCase.failure}
			client, constructionError := githubcli.NewClient(executor)
			require.NoError(testInstance, constructionError)

			exists, probeError := client.PathExists(context.Background(), testOrganizationNameConstant, testRepositoryNameConstant, testContentPathConstant)

			require.Len(testInstance, executor.recordedDetails, 1)
			require.Equal(
				testInstance,
				[]string{"api", "repos/example-org/service-api/contents/lefthook.yml"},
				executor.recordedDetails[0].Arguments,
			)
			if testCase.expectError {
				var operationError githubcli.OperationError
				require.ErrorAs(testInstance, probeError, &operationError)
				return
			}
			require.NoError(testInstance, probeError)
			require.Equal(testInstance, testCase.expectedExists, exists)
		})
	}
}

func TestPathExistsInputValidation(testInstance *testing.T) {
	client, constructionError := githubcli.NewClient(&scriptedExecutor{})
	require.NoError(testInstance, constructionError)

	testCases := []struct {
		name         string
		organization string
		repository   string
		contentPath  string
	}{
		{name: "blank_organization", organization: " ", repository: testRepositoryNameConstant, contentPath: testContentPathConstant},
		{name: "blank_repository", organization: testOrganizationNameConstant, repository: "", contentPath: testContentPathConstant},
		{name: "blank_path", organization: testOrganizationNameConstant, repository: testRepositoryNameConstant, contentPath: "///"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			_, probeError := client.PathExists(context.Background(), testCase.organization, testCase.repository, testCase.contentPath)

			var inputError githubcli.InvalidInputError
			require.ErrorAs(testInstance, probeError, &inputError)
		})
	}
}

func TestListDirectoryContents(testInstance *testing.T) {
	testCases := []struct {
		name            string
		payload         string
		failure         error
		expectedEntries []githubcli.DirectoryEntry
		expectError     bool
	}{
		{
			name:    "directory_listed",
			payload: testDirectoryListingPayloadConstant,
			expectedEntries: []githubcli.DirectoryEntry{
				{Name: "ci.yml", Type: "file"},
				{Name: "release.yml", Type: "file"},
			},
		},
		{
			name:            "missing_directory_yields_empty_listing",
			failure:         notFoundFailure(),
			expectedEntries: nil,
		},
		{
			name:        "listing_failure_surfaced",
			failure:     serverFailure(),
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			executor := &scriptedExecutor{
				result:  execshell.ExecutionResult{StandardOutput: testCase.payload},
				failure: testCase.failure,
			}
			client, constructionError := githubcli.NewClient(executor)
			require.NoError(testInstance, constructionError)

			entries, listingError := client.ListDirectoryContents(context.Background(), testOrganizationNameConstant, testRepositoryNameConstant, ".github/workflows")

			if testCase.expectError {
				require.Error(testInstance, listingError)
				return
			}
			require.NoError(testInstance, listingError)
			require.Equal(testInstance, testCase.expectedEntries, entries)
		})
	}
}

func TestOperationErrorUnwrap(testInstance *testing.T) {
	rootCause := errors.New("connection reset")
	operationError := githubcli.OperationError{Operation: "ProbeContentPath", Cause: rootCause}

	require.ErrorIs(testInstance, operationError, rootCause)
	require.Contains(testInstance, operationError.Error(), "ProbeContentPath")
}
