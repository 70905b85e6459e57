package audit

import "time"

// CheckIdentifier names a single compliance check.
type CheckIdentifier string

const (
	// CheckCIWorkflow verifies that continuous integration workflows exist.
	CheckCIWorkflow CheckIdentifier = "ci_workflow"
	// CheckPullRequestTemplate verifies the shared pull request template.
	CheckPullRequestTemplate CheckIdentifier = "pr_template"
	// CheckClaudeRules verifies the organization assistant rules file.
	CheckClaudeRules CheckIdentifier = "claude_rules"
	// CheckLefthook verifies the git hooks manifest.
	CheckLefthook CheckIdentifier = "lefthook"
	// CheckESLint verifies that a lint configuration is present.
	CheckESLint CheckIdentifier = "eslint"
	// CheckTestConfiguration verifies that a test runner configuration is present.
	CheckTestConfiguration CheckIdentifier = "test_config"
)

// OutputMode selects the report rendering format.
type OutputMode string

const (
	// OutputModeTable renders the report as an aligned text table.
	OutputModeTable OutputMode = "table"
	// OutputModeJSON renders the report as a JSON document.
	OutputModeJSON OutputMode = "json"
)

// RepositoryResult captures the check outcomes for one repository.
type RepositoryResult struct {
	Name            string
	PrimaryLanguage string
	Outcomes        map[CheckIdentifier]bool
	PassCount       int
}

// CheckSummary aggregates one check across every audited repository.
type CheckSummary struct {
	PassCount       int
	RepositoryCount int
}

// Report is the complete outcome of an organization audit.
type Report struct {
	Organization      string
	GeneratedAt       time.Time
	Repositories      []RepositoryResult
	Summaries         map[CheckIdentifier]CheckSummary
	CompliancePercent int
}

// Clock supplies the report generation timestamp.
type Clock interface {
	Now() time.Time
}

// SystemClock implements Clock using the wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
