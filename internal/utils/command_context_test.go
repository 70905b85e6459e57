package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/orgtools/orgops/internal/utils"
)

const (
	testConfigurationFilePathConstant    = "/etc/orgops/config.yaml"
	testRoundTripCaseNameConstant        = "round_trip"
	testMissingValueCaseNameConstant     = "missing_value"
	testNilParentContextCaseNameConstant = "nil_parent_context"
	testOverwrittenValueCaseNameConstant = "latest_value_wins"
	testReplacementConfigurationConstant = "/tmp/override.yaml"
)

func TestCommandContextAccessorConfigurationFilePath(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	testCases := []struct {
		name          string
		buildContext  func() context.Context
		expectedPath  string
		expectedFound bool
	}{
		{
			name: testRoundTripCaseNameConstant,
			buildContext: func() context.Context {
				return accessor.WithConfigurationFilePath(context.Background(), testConfigurationFilePathConstant)
			},
			expectedPath:  testConfigurationFilePathConstant,
			expectedFound: true,
		},
		{
			name: testMissingValueCaseNameConstant,
			buildContext: func() context.Context {
				return context.Background()
			},
			expectedFound: false,
		},
		{
			name: testNilParentContextCaseNameConstant,
			buildContext: func() context.Context {
				return accessor.WithConfigurationFilePath(nil, testConfigurationFilePathConstant)
			},
			expectedPath:  testConfigurationFilePathConstant,
			expectedFound: true,
		},
		{
			name: testOverwrittenValueCaseNameConstant,
			buildContext: func() context.Context {
				seededContext := accessor.WithConfigurationFilePath(context.Background(), testConfigurationFilePathConstant)
				return accessor.WithConfigurationFilePath(seededContext, testReplacementConfigurationConstant)
			},
			expectedPath:  testReplacementConfigurationConstant,
			expectedFound: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			configurationFilePath, configurationFileAvailable := accessor.ConfigurationFilePath(testCase.buildContext())

			require.Equal(testInstance, testCase.expectedFound, configurationFileAvailable)
			require.Equal(testInstance, testCase.expectedPath, configurationFilePath)
		})
	}
}

func TestCommandContextAccessorRejectsNilContextLookup(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	configurationFilePath, configurationFileAvailable := accessor.ConfigurationFilePath(nil)

	require.False(testInstance, configurationFileAvailable)
	require.Empty(testInstance, configurationFilePath)
}
