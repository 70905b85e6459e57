package audit

import (
	"context"
	"errors"
	"sort"

	"go.uber.org/zap"
)

const (
	clientNotConfiguredMessageConstant = "github audit client not configured"
	probeFailureLogMessageConstant     = "Treating path as absent after probe failure"
	listingFailureLogMessageConstant   = "Treating workflow directory as empty after listing failure"
	repositoryLogFieldNameConstant     = "repository"
	contentPathLogFieldNameConstant    = "path"
	checkLogFieldNameConstant          = "check"
)

// ErrClientNotConfigured indicates the service was constructed without a GitHub client.
var ErrClientNotConfigured = errors.New(clientNotConfiguredMessageConstant)

// Service runs organization compliance audits.
type Service struct {
	logger *zap.Logger
	client GitHubAuditClient
	clock  Clock
	checks []CheckDefinition
}

// NewService constructs an audit service; the client is required while the
// logger and clock fall back to no-op and wall-clock implementations.
func NewService(logger *zap.Logger, client GitHubAuditClient, clock Clock) (*Service, error) {
	if client == nil {
		return nil, ErrClientNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Service{logger: logger, client: client, clock: clock, checks: ComplianceChecks()}, nil
}

// Run audits every non-archived repository of the organization and returns
// the aggregate report.
//
// Authentication failures and empty listings abort the run; every
// per-repository probe failure is absorbed as a failed check so a single
// flaky probe cannot abort the audit.
func (service *Service) Run(executionContext context.Context, organization string) (Report, error) {
	authenticationError := service.client.CheckAuthentication(executionContext)
	if authenticationError != nil {
		return Report{}, AuthenticationError{Cause: authenticationError}
	}

	listings, listingError := service.client.ListOrganizationRepositories(executionContext, organization)
	if listingError != nil {
		return Report{}, listingError
	}
	if len(listings) == 0 {
		return Report{}, EmptyOrganizationError{Organization: organization}
	}

	sort.Slice(listings, func(firstIndex int, secondIndex int) bool {
		return listings[firstIndex].Name < listings[secondIndex].Name
	})

	report := Report{
		Organization: organization,
		GeneratedAt:  service.clock.Now().UTC(),
		Repositories: make([]RepositoryResult, 0, len(listings)),
		Summaries:    make(map[CheckIdentifier]CheckSummary, len(service.checks)),
	}

	totalPassCount := 0
	for _, listing := range listings {
		repositoryResult := RepositoryResult{
			Name:            listing.Name,
			PrimaryLanguage: listing.PrimaryLanguage,
			Outcomes:        make(map[CheckIdentifier]bool, len(service.checks)),
		}

		for _, check := range service.checks {
			passed := service.evaluateCheck(executionContext, organization, listing.Name, check)
			repositoryResult.Outcomes[check.Identifier] = passed
			if passed {
				repositoryResult.PassCount++
			}
		}

		totalPassCount += repositoryResult.PassCount
		report.Repositories = append(report.Repositories, repositoryResult)
	}

	for _, check := range service.checks {
		summary := CheckSummary{RepositoryCount: len(report.Repositories)}
		for _, repositoryResult := range report.Repositories {
			if repositoryResult.Outcomes[check.Identifier] {
				summary.PassCount++
			}
		}
		report.Summaries[check.Identifier] = summary
	}

	checkSlotCount := len(report.Repositories) * len(service.checks)
	if checkSlotCount > 0 {
		report.CompliancePercent = 100 * totalPassCount / checkSlotCount
	}

	return report, nil
}

// evaluateCheck applies one check to one repository, absorbing probe
// failures as negative results. Candidate probing continues past an erroring
// candidate so a later match can still satisfy the check.
func (service *Service) evaluateCheck(executionContext context.Context, organization string, repository string, check CheckDefinition) bool {
	if check.Kind == CheckKindDirectoryListing {
		directoryPath := check.CandidatePaths[0]
		entries, listingError := service.client.ListDirectoryContents(executionContext, organization, repository, directoryPath)
		if listingError != nil {
			service.logger.Warn(
				listingFailureLogMessageConstant,
				zap.String(repositoryLogFieldNameConstant, repository),
				zap.String(contentPathLogFieldNameConstant, directoryPath),
				zap.String(checkLogFieldNameConstant, string(check.Identifier)),
				zap.Error(listingError),
			)
			return false
		}
		return len(entries) > 0
	}

	for _, candidatePath := range check.CandidatePaths {
		exists, probeError := service.client.PathExists(executionContext, organization, repository, candidatePath)
		if probeError != nil {
			service.logger.Warn(
				probeFailureLogMessageConstant,
				zap.String(repositoryLogFieldNameConstant, repository),
				zap.String(contentPathLogFieldNameConstant, candidatePath),
				zap.String(checkLogFieldNameConstant, string(check.Identifier)),
				zap.Error(probeError),
			)
			continue
		}
		if exists {
			return true
		}
	}

	return false
}
