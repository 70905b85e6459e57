package bootstrap

import "strings"

const (
	targetConfigurationKeyConstant    = "target"
	templatesConfigurationKeyConstant = "templates"
	manifestConfigurationKeyConstant  = "manifest"
	defaultTargetPathConstant         = "."
	defaultTemplatesPathConstant      = "templates"
	defaultManifestPathConstant       = "sync.yml"
)

// CommandConfiguration captures persistent settings for the bootstrap command.
type CommandConfiguration struct {
	Target    string `mapstructure:"target"`
	Templates string `mapstructure:"templates"`
	Manifest  string `mapstructure:"manifest"`
}

// DefaultCommandConfiguration returns baseline configuration values for the bootstrap command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Target:    defaultTargetPathConstant,
		Templates: defaultTemplatesPathConstant,
		Manifest:  defaultManifestPathConstant,
	}
}

// DefaultConfigurationValues exposes bootstrap defaults keyed beneath the provided prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationPrefix + "." + targetConfigurationKeyConstant:    defaults.Target,
		configurationPrefix + "." + templatesConfigurationKeyConstant: defaults.Templates,
		configurationPrefix + "." + manifestConfigurationKeyConstant:  defaults.Manifest,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration

	sanitized.Target = strings.TrimSpace(configuration.Target)
	if len(sanitized.Target) == 0 {
		sanitized.Target = defaultTargetPathConstant
	}
	sanitized.Templates = strings.TrimSpace(configuration.Templates)
	if len(sanitized.Templates) == 0 {
		sanitized.Templates = defaultTemplatesPathConstant
	}
	sanitized.Manifest = strings.TrimSpace(configuration.Manifest)
	if len(sanitized.Manifest) == 0 {
		sanitized.Manifest = defaultManifestPathConstant
	}

	return sanitized
}
