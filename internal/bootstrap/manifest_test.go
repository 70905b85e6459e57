package bootstrap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgtools/orgops/internal/bootstrap"
)

const (
	testValidManifestConstant = `files:
  - source: .github/pull_request_template.md
  - source: workflows/{manager}-ci.yml
    destination: .github/workflows/ci.yml
  - source: lefthook.yml
    destination: ""
`
	testEmptyManifestConstant         = "files: []\n"
	testMissingSourceManifestConstant = "files:\n  - destination: lefthook.yml\n"
	testMalformedManifestConstant     = "files: {not a list"
)

func TestParseManifest(testInstance *testing.T) {
	testCases := []struct {
		name            string
		manifestContent string
		expectedEntries []bootstrap.SyncEntry
		expectError     bool
	}{
		{
			name:            "valid_manifest_defaults_destination",
			manifestContent: testValidManifestConstant,
			expectedEntries: []bootstrap.SyncEntry{
				{Source: ".github/pull_request_template.md", Destination: ".github/pull_request_template.md"},
				{Source: "workflows/{manager}-ci.yml", Destination: ".github/workflows/ci.yml"},
				{Source: "lefthook.yml", Destination: "lefthook.yml"},
			},
		},
		{
			name:            "empty_manifest_rejected",
			manifestContent: testEmptyManifestConstant,
			expectError:     true,
		},
		{
			name:            "missing_source_rejected",
			manifestContent: testMissingSourceManifestConstant,
			expectError:     true,
		},
		{
			name:            "malformed_yaml_rejected",
			manifestContent: testMalformedManifestConstant,
			expectError:     true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			manifest, parseError := bootstrap.ParseManifest([]byte(testCase.manifestContent))

			if testCase.expectError {
				require.Error(testInstance, parseError)
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedEntries, manifest.Files)
		})
	}
}
