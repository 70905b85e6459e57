package audit

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

const (
	repositoryColumnLabelConstant         = "Repository"
	scoreColumnLabelConstant              = "Score"
	passMarkerConstant                    = "Y"
	failMarkerConstant                    = "N"
	tableColumnSeparatorConstant          = "\t"
	tableRowTerminatorConstant            = "\n"
	scoreTemplateConstant                 = "%d/%d"
	summaryLineTemplateConstant           = "%s: %d/%d\n"
	overallComplianceTemplateConstant     = "Overall compliance: %d%%\n"
	compliancePercentTemplateConstant     = "%d%%"
	jsonIndentConstant                    = "  "
	unsupportedOutputModeTemplateConstant = "unsupported output mode %q"
)

type checkSummaryDocument struct {
	Pass  int `json:"pass"`
	Total int `json:"total"`
}

type repositoryDocument struct {
	Name                string `json:"name"`
	CIWorkflow          bool   `json:"ci_workflow"`
	PullRequestTemplate bool   `json:"pr_template"`
	ClaudeRules         bool   `json:"claude_rules"`
	Lefthook            bool   `json:"lefthook"`
	ESLint              bool   `json:"eslint"`
	TestConfiguration   bool   `json:"test_config"`
	Score               string `json:"score"`
}

type reportDocument struct {
	AuditDate         string                          `json:"audit_date"`
	TotalRepositories int                             `json:"total_repos"`
	OverallCompliance string                          `json:"overall_compliance"`
	Summary           map[string]checkSummaryDocument `json:"summary"`
	Repositories      []repositoryDocument            `json:"repos"`
}

// Render writes the report to the writer in the requested output mode.
func Render(writer io.Writer, report Report, mode OutputMode) error {
	switch mode {
	case OutputModeTable:
		return RenderTable(writer, report)
	case OutputModeJSON:
		return RenderJSON(writer, report)
	default:
		return fmt.Errorf(unsupportedOutputModeTemplateConstant, mode)
	}
}

// RenderTable writes the report as an aligned text table followed by
// per-check totals and the overall compliance percentage.
func RenderTable(writer io.Writer, report Report) error {
	checks := ComplianceChecks()
	tableWriter := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	headerCells := []string{repositoryColumnLabelConstant}
	for _, check := range checks {
		headerCells = append(headerCells, check.TableLabel)
	}
	headerCells = append(headerCells, scoreColumnLabelConstant)
	fmt.Fprint(tableWriter, strings.Join(headerCells, tableColumnSeparatorConstant)+tableRowTerminatorConstant)

	for _, repositoryResult := range report.Repositories {
		rowCells := []string{repositoryResult.Name}
		for _, check := range checks {
			rowCells = append(rowCells, outcomeMarker(repositoryResult.Outcomes[check.Identifier]))
		}
		rowCells = append(rowCells, fmt.Sprintf(scoreTemplateConstant, repositoryResult.PassCount, len(checks)))
		fmt.Fprint(tableWriter, strings.Join(rowCells, tableColumnSeparatorConstant)+tableRowTerminatorConstant)
	}

	flushError := tableWriter.Flush()
	if flushError != nil {
		return flushError
	}

	fmt.Fprint(writer, tableRowTerminatorConstant)
	for _, check := range checks {
		summary := report.Summaries[check.Identifier]
		fmt.Fprintf(writer, summaryLineTemplateConstant, check.TableLabel, summary.PassCount, summary.RepositoryCount)
	}
	fmt.Fprintf(writer, overallComplianceTemplateConstant, report.CompliancePercent)

	return nil
}

// RenderJSON writes the report as an indented JSON document.
func RenderJSON(writer io.Writer, report Report) error {
	checks := ComplianceChecks()

	document := reportDocument{
		AuditDate:         report.GeneratedAt.UTC().Format(time.RFC3339),
		TotalRepositories: len(report.Repositories),
		OverallCompliance: fmt.Sprintf(compliancePercentTemplateConstant, report.CompliancePercent),
		Summary:           make(map[string]checkSummaryDocument, len(checks)),
		Repositories:      make([]repositoryDocument, 0, len(report.Repositories)),
	}

	for _, check := range checks {
		summary := report.Summaries[check.Identifier]
		document.Summary[string(check.Identifier)] = checkSummaryDocument{
			Pass:  summary.PassCount,
			Total: summary.RepositoryCount,
		}
	}

	for _, repositoryResult := range report.Repositories {
		document.Repositories = append(document.Repositories, repositoryDocument{
			Name:                repositoryResult.Name,
			CIWorkflow:          repositoryResult.Outcomes[CheckCIWorkflow],
			PullRequestTemplate: repositoryResult.Outcomes[CheckPullRequestTemplate],
			ClaudeRules:         repositoryResult.Outcomes[CheckClaudeRules],
			Lefthook:            repositoryResult.Outcomes[CheckLefthook],
			ESLint:              repositoryResult.Outcomes[CheckESLint],
			TestConfiguration:   repositoryResult.Outcomes[CheckTestConfiguration],
			Score:               fmt.Sprintf(scoreTemplateConstant, repositoryResult.PassCount, len(checks)),
		})
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", jsonIndentConstant)
	return encoder.Encode(document)
}

func outcomeMarker(passed bool) string {
	if passed {
		return passMarkerConstant
	}
	return failMarkerConstant
}
