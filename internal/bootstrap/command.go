package bootstrap

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/orgtools/orgops/internal/execshell"
	"github.com/orgtools/orgops/internal/utils"
)

const (
	commandNameConstant                   = "bootstrap"
	commandShortDescriptionConstant       = "Copy organization standards files into a repository clone"
	commandLongDescriptionConstant        = "Bootstrap reads the sync manifest, detects the repository package manager from its lock file, and copies the organization standards templates into the target repository without overwriting existing files."
	targetFlagNameConstant                = "target"
	targetFlagDescriptionConstant         = "path of the repository clone to bootstrap"
	templatesFlagNameConstant             = "templates"
	templatesFlagDescriptionConstant      = "directory holding the standards templates"
	manifestFlagNameConstant              = "manifest"
	manifestFlagDescriptionConstant       = "path of the YAML sync manifest"
	dryRunFlagNameConstant                = "dry-run"
	dryRunFlagDescriptionConstant         = "print the copy plan without writing files"
	summaryTemplateConstant               = "Bootstrap complete (%s): %d copied, %d skipped, %d failed\n"
	dryRunSummaryTemplateConstant         = "Bootstrap plan (%s): %d to copy, %d skipped\n"
	configurationFileLogMessageConstant   = "bootstrap using configuration file"
	configurationFileLogFieldNameConstant = "config_file"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies persistent configuration for the bootstrap command.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the bootstrap cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	FileSystem            FileSystem
	GitExecutor           GitExecutor
	CommandEventsObserver execshell.CommandEventObserver
}

// Build constructs the cobra command for repository bootstrap workflows.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandNameConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		RunE:  builder.run,
	}

	command.Flags().String(targetFlagNameConstant, "", targetFlagDescriptionConstant)
	command.Flags().String(templatesFlagNameConstant, "", templatesFlagDescriptionConstant)
	command.Flags().String(manifestFlagNameConstant, "", manifestFlagDescriptionConstant)
	command.Flags().Bool(dryRunFlagNameConstant, false, dryRunFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, _ []string) error {
	configuration := builder.resolveConfiguration()

	if command.Flags().Changed(targetFlagNameConstant) {
		configuration.Target, _ = command.Flags().GetString(targetFlagNameConstant)
	}
	if command.Flags().Changed(templatesFlagNameConstant) {
		configuration.Templates, _ = command.Flags().GetString(templatesFlagNameConstant)
	}
	if command.Flags().Changed(manifestFlagNameConstant) {
		configuration.Manifest, _ = command.Flags().GetString(manifestFlagNameConstant)
	}
	dryRunFlagValue, _ := command.Flags().GetBool(dryRunFlagNameConstant)
	configuration = configuration.sanitize()

	logger := builder.resolveLogger()
	if configurationFilePath, configurationFileAvailable := utils.NewCommandContextAccessor().ConfigurationFilePath(command.Context()); configurationFileAvailable && len(configurationFilePath) > 0 {
		logger.Debug(
			configurationFileLogMessageConstant,
			zap.String(configurationFileLogFieldNameConstant, configurationFilePath),
		)
	}

	gitExecutor, executorError := builder.resolveGitExecutor(logger)
	if executorError != nil {
		return executorError
	}

	service, serviceError := NewService(logger, builder.resolveFileSystem(), gitExecutor)
	if serviceError != nil {
		return serviceError
	}

	summary, runError := service.Run(command.Context(), Options{
		TargetPath:    configuration.Target,
		TemplatesPath: configuration.Templates,
		ManifestPath:  configuration.Manifest,
		DryRun:        dryRunFlagValue,
	})
	if runError != nil {
		return runError
	}

	if dryRunFlagValue {
		fmt.Fprintf(command.OutOrStdout(), dryRunSummaryTemplateConstant, summary.PackageManager, len(summary.CopiedFiles), len(summary.SkippedFiles))
		return nil
	}

	fmt.Fprintf(command.OutOrStdout(), summaryTemplateConstant, summary.PackageManager, len(summary.CopiedFiles), len(summary.SkippedFiles), len(summary.FailedFiles))
	return nil
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

func (builder *CommandBuilder) resolveFileSystem() FileSystem {
	if builder.FileSystem != nil {
		return builder.FileSystem
	}
	return OSFileSystem{}
}

func (builder *CommandBuilder) resolveGitExecutor(logger *zap.Logger) (GitExecutor, error) {
	if builder.GitExecutor != nil {
		return builder.GitExecutor, nil
	}
	return execshell.NewShellExecutorWithObserver(logger, execshell.NewOSCommandRunner(), builder.CommandEventsObserver)
}
