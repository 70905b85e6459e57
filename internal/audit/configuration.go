package audit

import "strings"

const (
	organizationConfigurationKeyConstant = "organization"
	outputConfigurationKeyConstant       = "output"
)

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	Organization string `mapstructure:"organization"`
	Output       string `mapstructure:"output"`
}

// DefaultCommandConfiguration returns baseline configuration values for the audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Organization: "",
		Output:       string(OutputModeTable),
	}
}

// DefaultConfigurationValues exposes audit defaults keyed beneath the provided prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationPrefix + "." + organizationConfigurationKeyConstant: defaults.Organization,
		configurationPrefix + "." + outputConfigurationKeyConstant:       defaults.Output,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Organization = strings.TrimSpace(configuration.Organization)
	sanitized.Output = strings.ToLower(strings.TrimSpace(configuration.Output))
	if len(sanitized.Output) == 0 {
		sanitized.Output = string(OutputModeTable)
	}

	return sanitized
}
