package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	manifestParseErrorTemplateConstant    = "failed to parse sync manifest: %w"
	manifestEmptyEntriesMessageConstant   = "sync manifest must define at least one file entry"
	manifestMissingSourceTemplateConstant = "sync manifest entry %d is missing a source path"
)

// SyncEntry pairs a template source path with its destination inside the
// target repository; an empty destination defaults to the source path.
type SyncEntry struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
}

// SyncManifest lists the files distributed to every repository.
type SyncManifest struct {
	Files []SyncEntry `yaml:"files"`
}

// ParseManifest decodes and validates a sync manifest document.
func ParseManifest(manifestContent []byte) (SyncManifest, error) {
	var manifest SyncManifest
	if unmarshalError := yaml.Unmarshal(manifestContent, &manifest); unmarshalError != nil {
		return SyncManifest{}, fmt.Errorf(manifestParseErrorTemplateConstant, unmarshalError)
	}

	if len(manifest.Files) == 0 {
		return SyncManifest{}, errors.New(manifestEmptyEntriesMessageConstant)
	}

	for entryIndex := range manifest.Files {
		manifest.Files[entryIndex].Source = strings.TrimSpace(manifest.Files[entryIndex].Source)
		manifest.Files[entryIndex].Destination = strings.TrimSpace(manifest.Files[entryIndex].Destination)

		if len(manifest.Files[entryIndex].Source) == 0 {
			return SyncManifest{}, fmt.Errorf(manifestMissingSourceTemplateConstant, entryIndex)
		}
		if len(manifest.Files[entryIndex].Destination) == 0 {
			manifest.Files[entryIndex].Destination = manifest.Files[entryIndex].Source
		}
	}

	return manifest, nil
}
