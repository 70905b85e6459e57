package audit

const (
	ciWorkflowDirectoryPathConstant       = ".github/workflows"
	pullRequestTemplatePathConstant       = ".github/pull_request_template.md"
	claudeRulesPathConstant               = ".claude/org-rules.md"
	lefthookManifestPathConstant          = "lefthook.yml"
	ciWorkflowTableLabelConstant          = "CI"
	pullRequestTemplateTableLabelConstant = "PR"
	claudeRulesTableLabelConstant         = "Claude"
	lefthookTableLabelConstant            = "Lefthook"
	eslintTableLabelConstant              = "ESLint"
	testConfigurationTableLabelConstant   = "Tests"
)

// CheckKind selects the probe strategy for a compliance check.
type CheckKind string

const (
	// CheckKindAnyPath passes when any candidate path exists; candidates are
	// probed in declaration order and stop on the first match.
	CheckKindAnyPath CheckKind = "any_path"
	// CheckKindDirectoryListing passes when the directory listing succeeds
	// and contains at least one entry.
	CheckKindDirectoryListing CheckKind = "directory_listing"
)

// CheckDefinition describes one compliance check over a repository file tree.
type CheckDefinition struct {
	Identifier     CheckIdentifier
	TableLabel     string
	Kind           CheckKind
	CandidatePaths []string
}

// ComplianceChecks returns the ordered check definitions applied to every
// audited repository.
func ComplianceChecks() []CheckDefinition {
	return []CheckDefinition{
		{
			Identifier:     CheckCIWorkflow,
			TableLabel:     ciWorkflowTableLabelConstant,
			Kind:           CheckKindDirectoryListing,
			CandidatePaths: []string{ciWorkflowDirectoryPathConstant},
		},
		{
			Identifier:     CheckPullRequestTemplate,
			TableLabel:     pullRequestTemplateTableLabelConstant,
			Kind:           CheckKindAnyPath,
			CandidatePaths: []string{pullRequestTemplatePathConstant},
		},
		{
			Identifier:     CheckClaudeRules,
			TableLabel:     claudeRulesTableLabelConstant,
			Kind:           CheckKindAnyPath,
			CandidatePaths: []string{claudeRulesPathConstant},
		},
		{
			Identifier:     CheckLefthook,
			TableLabel:     lefthookTableLabelConstant,
			Kind:           CheckKindAnyPath,
			CandidatePaths: []string{lefthookManifestPathConstant},
		},
		{
			Identifier: CheckESLint,
			TableLabel: eslintTableLabelConstant,
			Kind:       CheckKindAnyPath,
			CandidatePaths: []string{
				"eslint.config.mjs",
				"eslint.config.js",
				"eslint.config.ts",
				".eslintrc.json",
				".eslintrc.js",
				".eslintrc.yml",
			},
		},
		{
			Identifier: CheckTestConfiguration,
			TableLabel: testConfigurationTableLabelConstant,
			Kind:       CheckKindAnyPath,
			CandidatePaths: []string{
				"vitest.config.ts",
				"vitest.config.js",
				"vitest.config.mts",
				"jest.config.ts",
				"jest.config.js",
				"jest.config.json",
			},
		},
	}
}
