package audit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/orgtools/orgops/internal/audit"
	"github.com/orgtools/orgops/internal/githubcli"
	"github.com/orgtools/orgops/internal/utils"
)

func scenarioClient() *fakeAuditClient {
	return &fakeAuditClient{
		listings: []githubcli.RepositoryListing{
			{Name: testAlphaRepositoryConstant, PrimaryLanguage: "Go"},
		},
		presentPaths: map[string]map[string]bool{
			testAlphaRepositoryConstant: fullyCompliantPaths(),
		},
		workflowEntries: map[string][]githubcli.DirectoryEntry{
			testAlphaRepositoryConstant: {{Name: "ci.yml", Type: "file"}},
		},
	}
}

func TestAuditCommandRendersJSON(testInstance *testing.T) {
	builder := audit.CommandBuilder{
		GitHubClient: scenarioClient(),
		Clock:        fixedClock{instant: time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC)},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var output bytes.Buffer
	command.SetOut(&output)
	command.SetErr(&output)
	command.SetArgs([]string{"--org", testOrganizationNameConstant, "--json"})

	require.NoError(testInstance, command.Execute())

	var document map[string]any
	require.NoError(testInstance, json.Unmarshal(output.Bytes(), &document))
	require.Equal(testInstance, "2026-08-25T12:00:00Z", document["audit_date"])
	require.Equal(testInstance, "100%", document["overall_compliance"])
}

func TestAuditCommandRendersTableByDefault(testInstance *testing.T) {
	builder := audit.CommandBuilder{
		GitHubClient: scenarioClient(),
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var output bytes.Buffer
	command.SetOut(&output)
	command.SetErr(&output)
	command.SetArgs([]string{"--org", testOrganizationNameConstant})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, output.String(), "Repository")
	require.Contains(testInstance, output.String(), "Overall compliance: 100%")
}

func TestAuditCommandUsesConfiguredOrganization(testInstance *testing.T) {
	builder := audit.CommandBuilder{
		GitHubClient: scenarioClient(),
		ConfigurationProvider: func() audit.CommandConfiguration {
			return audit.CommandConfiguration{Organization: testOrganizationNameConstant, Output: "table"}
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var output bytes.Buffer
	command.SetOut(&output)
	command.SetErr(&output)
	command.SetArgs([]string{})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, output.String(), testAlphaRepositoryConstant)
}

func TestAuditCommandLogsActiveConfigurationFile(testInstance *testing.T) {
	observerCore, observedLogs := observer.New(zap.DebugLevel)
	builder := audit.CommandBuilder{
		GitHubClient: scenarioClient(),
		LoggerProvider: func() *zap.Logger {
			return zap.New(observerCore)
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var output bytes.Buffer
	command.SetOut(&output)
	command.SetErr(&output)
	command.SetArgs([]string{"--org", testOrganizationNameConstant})

	commandContext := utils.NewCommandContextAccessor().WithConfigurationFilePath(context.Background(), "/etc/orgops/config.yaml")
	require.NoError(testInstance, command.ExecuteContext(commandContext))

	configurationEntries := observedLogs.FilterMessage("audit using configuration file").All()
	require.Len(testInstance, configurationEntries, 1)
	require.Equal(testInstance, "/etc/orgops/config.yaml", configurationEntries[0].ContextMap()["config_file"])
}

func TestAuditCommandRequiresOrganization(testInstance *testing.T) {
	builder := audit.CommandBuilder{
		GitHubClient: scenarioClient(),
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var output bytes.Buffer
	command.SetOut(&output)
	command.SetErr(&output)
	command.SetArgs([]string{})

	require.Error(testInstance, command.Execute())
}

func TestAuditCommandRejectsUnsupportedOutput(testInstance *testing.T) {
	builder := audit.CommandBuilder{
		GitHubClient: scenarioClient(),
		ConfigurationProvider: func() audit.CommandConfiguration {
			return audit.CommandConfiguration{Organization: testOrganizationNameConstant, Output: "yaml"}
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var output bytes.Buffer
	command.SetOut(&output)
	command.SetErr(&output)
	command.SetArgs([]string{})

	require.Error(testInstance, command.Execute())
}
