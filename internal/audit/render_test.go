package audit_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/orgtools/orgops/internal/audit"
)

func scenarioReport() audit.Report {
	return audit.Report{
		Organization: testOrganizationNameConstant,
		GeneratedAt:  time.Date(2026, time.August, 25, 12, 0, 0, 0, time.UTC),
		Repositories: []audit.RepositoryResult{
			{
				Name:            testAlphaRepositoryConstant,
				PrimaryLanguage: "Go",
				Outcomes: map[audit.CheckIdentifier]bool{
					audit.CheckCIWorkflow:          true,
					audit.CheckPullRequestTemplate: true,
					audit.CheckClaudeRules:         true,
					audit.CheckLefthook:            true,
					audit.CheckESLint:              true,
					audit.CheckTestConfiguration:   true,
				},
				PassCount: 6,
			},
			{
				Name:            testBetaRepositoryConstant,
				PrimaryLanguage: "TypeScript",
				Outcomes: map[audit.CheckIdentifier]bool{
					audit.CheckCIWorkflow:          true,
					audit.CheckPullRequestTemplate: true,
					audit.CheckClaudeRules:         false,
					audit.CheckLefthook:            false,
					audit.CheckESLint:              false,
					audit.CheckTestConfiguration:   false,
				},
				PassCount: 2,
			},
		},
		Summaries: map[audit.CheckIdentifier]audit.CheckSummary{
			audit.CheckCIWorkflow:          {PassCount: 2, RepositoryCount: 2},
			audit.CheckPullRequestTemplate: {PassCount: 2, RepositoryCount: 2},
			audit.CheckClaudeRules:         {PassCount: 1, RepositoryCount: 2},
			audit.CheckLefthook:            {PassCount: 1, RepositoryCount: 2},
			audit.CheckESLint:              {PassCount: 1, RepositoryCount: 2},
			audit.CheckTestConfiguration:   {PassCount: 1, RepositoryCount: 2},
		},
		CompliancePercent: 66,
	}
}

func TestRenderTable(testInstance *testing.T) {
	var output strings.Builder
	renderError := audit.RenderTable(&output, scenarioReport())
	require.NoError(testInstance, renderError)

	renderedLines := strings.Split(strings.TrimRight(output.String(), "\n"), "\n")
	require.GreaterOrEqual(testInstance, len(renderedLines), 3)

	headerFields := strings.Fields(renderedLines[0])
	require.Equal(testInstance, []string{"Repository", "CI", "PR", "Claude", "Lefthook", "ESLint", "Tests", "Score"}, headerFields)

	alphaFields := strings.Fields(renderedLines[1])
	require.Equal(testInstance, []string{"alpha", "Y", "Y", "Y", "Y", "Y", "Y", "6/6"}, alphaFields)

	betaFields := strings.Fields(renderedLines[2])
	require.Equal(testInstance, []string{"beta", "Y", "Y", "N", "N", "N", "N", "2/6"}, betaFields)

	require.Contains(testInstance, output.String(), "CI: 2/2")
	require.Contains(testInstance, output.String(), "Lefthook: 1/2")
	require.Contains(testInstance, output.String(), "Overall compliance: 66%")
}

func TestRenderJSON(testInstance *testing.T) {
	var output strings.Builder
	renderError := audit.RenderJSON(&output, scenarioReport())
	require.NoError(testInstance, renderError)

	var document struct {
		AuditDate         string `json:"audit_date"`
		TotalRepositories int    `json:"total_repos"`
		OverallCompliance string `json:"overall_compliance"`
		Summary           map[string]struct {
			Pass  int `json:"pass"`
			Total int `json:"total"`
		} `json:"summary"`
		Repositories []map[string]any `json:"repos"`
	}
	require.NoError(testInstance, json.Unmarshal([]byte(output.String()), &document))

	require.Equal(testInstance, "2026-08-25T12:00:00Z", document.AuditDate)
	require.Equal(testInstance, 2, document.TotalRepositories)
	require.Equal(testInstance, "66%", document.OverallCompliance)
	require.Len(testInstance, document.Summary, 6)
	require.Equal(testInstance, 2, document.Summary["ci_workflow"].Pass)
	require.Equal(testInstance, 1, document.Summary["test_config"].Pass)
	require.Equal(testInstance, 2, document.Summary["test_config"].Total)

	require.Len(testInstance, document.Repositories, 2)
	require.Equal(testInstance, "alpha", document.Repositories[0]["name"])
	require.Equal(testInstance, "6/6", document.Repositories[0]["score"])
	require.Equal(testInstance, true, document.Repositories[0]["eslint"])
	require.Equal(testInstance, "beta", document.Repositories[1]["name"])
	require.Equal(testInstance, "2/6", document.Repositories[1]["score"])
	require.Equal(testInstance, false, document.Repositories[1]["lefthook"])
}

func TestRenderRejectsUnknownMode(testInstance *testing.T) {
	var output strings.Builder
	renderError := audit.Render(&output, scenarioReport(), audit.OutputMode("yaml"))

	require.Error(testInstance, renderError)
	require.Empty(testInstance, output.String())
}
