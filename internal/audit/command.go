package audit

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/orgtools/orgops/internal/execshell"
	"github.com/orgtools/orgops/internal/githubcli"
	"github.com/orgtools/orgops/internal/utils"
)

const (
	commandNameConstant                      = "audit"
	commandShortDescriptionConstant          = "Audit organization repositories for compliance with shared standards"
	commandLongDescriptionConstant           = "Audit lists the non-archived repositories of a GitHub organization, checks each one for the expected configuration files, and prints a compliance report."
	organizationFlagNameConstant             = "org"
	organizationFlagDescriptionConstant      = "GitHub organization to audit"
	jsonFlagNameConstant                     = "json"
	jsonFlagDescriptionConstant              = "render the report as JSON instead of a table"
	missingOrganizationMessageConstant       = "organization must be provided via --org or configuration"
	unsupportedOutputMessageTemplateConstant = "unsupported output mode %q; expected table or json"
	configurationFileLogMessageConstant      = "audit using configuration file"
	configurationFileLogFieldNameConstant    = "config_file"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies persistent configuration for the audit command.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	GitHubClient          GitHubAuditClient
	Clock                 Clock
	CommandEventsObserver execshell.CommandEventObserver
}

// Build constructs the cobra command for organization compliance audits.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(organizationFlagNameConstant, "", organizationFlagDescriptionConstant)
	command.Flags().Bool(jsonFlagNameConstant, false, jsonFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	configuration := builder.resolveConfiguration()

	organizationFlagValue, _ := command.Flags().GetString(organizationFlagNameConstant)
	if command.Flags().Changed(organizationFlagNameConstant) {
		configuration.Organization = organizationFlagValue
	}
	jsonFlagValue, _ := command.Flags().GetBool(jsonFlagNameConstant)
	if jsonFlagValue {
		configuration.Output = string(OutputModeJSON)
	}
	configuration = configuration.sanitize()

	if len(configuration.Organization) == 0 {
		return errors.New(missingOrganizationMessageConstant)
	}

	outputMode := OutputMode(configuration.Output)
	if outputMode != OutputModeTable && outputMode != OutputModeJSON {
		return fmt.Errorf(unsupportedOutputMessageTemplateConstant, configuration.Output)
	}

	logger := builder.resolveLogger()
	if configurationFilePath, configurationFileAvailable := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); configurationFileAvailable && len(configurationFilePath) > 0 {
		logger.Debug(
			configurationFileLogMessageConstant,
			zap.String(configurationFileLogFieldNameConstant, configurationFilePath),
		)
	}

	client, clientError := builder.resolveClient(logger)
	if clientError != nil {
		return clientError
	}

	service, serviceError := NewService(logger, client, builder.Clock)
	if serviceError != nil {
		return serviceError
	}

	report, runError := service.Run(command.Context(), configuration.Organization)
	if runError != nil {
		return runError
	}

	return Render(command.OutOrStdout(), report, outputMode)
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveClient(logger *zap.Logger) (GitHubAuditClient, error) {
	if builder.GitHubClient != nil {
		return builder.GitHubClient, nil
	}

	executor, executorError := execshell.NewShellExecutorWithObserver(logger, execshell.NewOSCommandRunner(), builder.CommandEventsObserver)
	if executorError != nil {
		return nil, executorError
	}

	return githubcli.NewClient(executor)
}
