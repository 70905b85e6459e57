package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/orgtools/orgops/internal/execshell"
)

const (
	gitRevParseArgumentConstant             = "rev-parse"
	gitWorktreeFlagConstant                 = "--is-inside-work-tree"
	gitWorktreeAffirmativeOutputConstant    = "true"
	fileSystemNotConfiguredMessageConstant  = "bootstrap file system not configured"
	gitExecutorNotConfiguredMessageConstant = "bootstrap git executor not configured"
	targetNotRepositoryTemplateConstant     = "%s is not inside a git worktree"
	manifestReadErrorTemplateConstant       = "failed to load sync manifest %s: %w"
	packageManagerTokenConstant             = "{manager}"
	copyPlannedLogMessageConstant           = "Would copy standards file"
	copyPerformedLogMessageConstant         = "Copied standards file"
	copySkippedLogMessageConstant           = "Skipping existing file"
	copyFailedLogMessageConstant            = "Failed to copy standards file"
	sourceLogFieldNameConstant              = "source"
	destinationLogFieldNameConstant         = "destination"
	packageManagerLogFieldNameConstant      = "package_manager"
	copiedDirectoryPermissionsConstant      = os.FileMode(0o755)
	copiedFilePermissionsConstant           = os.FileMode(0o644)
)

// ErrFileSystemNotConfigured indicates the service was constructed without a file system.
var ErrFileSystemNotConfigured = errors.New(fileSystemNotConfiguredMessageConstant)

// ErrGitExecutorNotConfigured indicates the service was constructed without a git executor.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorNotConfiguredMessageConstant)

// TargetNotRepositoryError indicates the bootstrap target is not a git worktree.
type TargetNotRepositoryError struct {
	Path string
}

// Error describes the invalid target.
func (targetError TargetNotRepositoryError) Error() string {
	return fmt.Sprintf(targetNotRepositoryTemplateConstant, targetError.Path)
}

// FileSystem abstracts the local file operations performed by the bootstrapper.
type FileSystem interface {
	FileExists(path string) bool
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, permissions os.FileMode) error
	MkdirAll(path string, permissions os.FileMode) error
}

// OSFileSystem implements FileSystem against the real file system.
type OSFileSystem struct{}

// FileExists reports whether the path names an existing file or directory.
func (OSFileSystem) FileExists(path string) bool {
	_, statError := os.Stat(path)
	return statError == nil
}

// ReadFile reads the file contents.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFile writes the file contents with the given permissions.
func (OSFileSystem) WriteFile(path string, content []byte, permissions os.FileMode) error {
	return os.WriteFile(path, content, permissions)
}

// MkdirAll creates the directory hierarchy.
func (OSFileSystem) MkdirAll(path string, permissions os.FileMode) error {
	return os.MkdirAll(path, permissions)
}

// GitExecutor is the subset of execshell.ShellExecutor used by the bootstrapper.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Options describes one bootstrap invocation.
type Options struct {
	TargetPath    string
	TemplatesPath string
	ManifestPath  string
	DryRun        bool
}

// Summary reports the outcome of a bootstrap run.
type Summary struct {
	PackageManager PackageManager
	CopiedFiles    []string
	SkippedFiles   []string
	FailedFiles    []string
}

// Service copies organization standards files into repository clones.
type Service struct {
	logger      *zap.Logger
	fileSystem  FileSystem
	gitExecutor GitExecutor
}

// NewService constructs a bootstrap service; file system and git executor are required.
func NewService(logger *zap.Logger, fileSystem FileSystem, gitExecutor GitExecutor) (*Service, error) {
	if fileSystem == nil {
		return nil, ErrFileSystemNotConfigured
	}
	if gitExecutor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger, fileSystem: fileSystem, gitExecutor: gitExecutor}, nil
}

// Run copies every manifest entry into the target repository, skipping
// destinations that already exist. Per-file copy failures are recorded and
// reported without aborting the run.
func (service *Service) Run(executionContext context.Context, options Options) (Summary, error) {
	worktreeError := service.ensureGitWorktree(executionContext, options.TargetPath)
	if worktreeError != nil {
		return Summary{}, worktreeError
	}

	manifestContent, readError := service.fileSystem.ReadFile(options.ManifestPath)
	if readError != nil {
		return Summary{}, fmt.Errorf(manifestReadErrorTemplateConstant, options.ManifestPath, readError)
	}

	manifest, parseError := ParseManifest(manifestContent)
	if parseError != nil {
		return Summary{}, parseError
	}

	packageManager := DetectPackageManager(service.fileSystem, options.TargetPath)
	summary := Summary{PackageManager: packageManager}

	for _, manifestEntry := range manifest.Files {
		sourcePath := filepath.Join(options.TemplatesPath, resolvePackageManagerToken(manifestEntry.Source, packageManager))
		destinationPath := filepath.Join(options.TargetPath, resolvePackageManagerToken(manifestEntry.Destination, packageManager))

		if service.fileSystem.FileExists(destinationPath) {
			service.logger.Info(
				copySkippedLogMessageConstant,
				zap.String(destinationLogFieldNameConstant, destinationPath),
			)
			summary.SkippedFiles = append(summary.SkippedFiles, destinationPath)
			continue
		}

		if options.DryRun {
			service.logger.Info(
				copyPlannedLogMessageConstant,
				zap.String(sourceLogFieldNameConstant, sourcePath),
				zap.String(destinationLogFieldNameConstant, destinationPath),
			)
			summary.CopiedFiles = append(summary.CopiedFiles, destinationPath)
			continue
		}

		copyError := service.copyFile(sourcePath, destinationPath)
		if copyError != nil {
			service.logger.Warn(
				copyFailedLogMessageConstant,
				zap.String(sourceLogFieldNameConstant, sourcePath),
				zap.String(destinationLogFieldNameConstant, destinationPath),
				zap.Error(copyError),
			)
			summary.FailedFiles = append(summary.FailedFiles, destinationPath)
			continue
		}

		service.logger.Info(
			copyPerformedLogMessageConstant,
			zap.String(sourceLogFieldNameConstant, sourcePath),
			zap.String(destinationLogFieldNameConstant, destinationPath),
			zap.String(packageManagerLogFieldNameConstant, string(packageManager)),
		)
		summary.CopiedFiles = append(summary.CopiedFiles, destinationPath)
	}

	return summary, nil
}

func (service *Service) ensureGitWorktree(executionContext context.Context, targetPath string) error {
	commandDetails := execshell.CommandDetails{
		Arguments:        []string{gitRevParseArgumentConstant, gitWorktreeFlagConstant},
		WorkingDirectory: targetPath,
	}

	executionResult, executionError := service.gitExecutor.ExecuteGit(executionContext, commandDetails)
	if executionError != nil {
		return TargetNotRepositoryError{Path: targetPath}
	}
	if strings.TrimSpace(executionResult.StandardOutput) != gitWorktreeAffirmativeOutputConstant {
		return TargetNotRepositoryError{Path: targetPath}
	}

	return nil
}

func (service *Service) copyFile(sourcePath string, destinationPath string) error {
	sourceContent, readError := service.fileSystem.ReadFile(sourcePath)
	if readError != nil {
		return readError
	}

	directoryError := service.fileSystem.MkdirAll(filepath.Dir(destinationPath), copiedDirectoryPermissionsConstant)
	if directoryError != nil {
		return directoryError
	}

	return service.fileSystem.WriteFile(destinationPath, sourceContent, copiedFilePermissionsConstant)
}

// resolvePackageManagerToken substitutes the {manager} token so manifests can
// reference package-manager specific templates.
func resolvePackageManagerToken(templatePath string, packageManager PackageManager) string {
	return strings.ReplaceAll(templatePath, packageManagerTokenConstant, string(packageManager))
}
