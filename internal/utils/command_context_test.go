package utils_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/gitcred/internal/utils"
)

const (
	testConfigurationFilePathConstant = "/tmp/gitcred/config.yaml"
)

func TestCommandContextAccessorRoundTripsConfigurationFilePath(testInstance *testing.T) {
	contextAccessor := utils.NewCommandContextAccessor()

	decoratedContext := contextAccessor.WithConfigurationFilePath(context.Background(), testConfigurationFilePathConstant)

	storedPath, pathAvailable := contextAccessor.ConfigurationFilePath(decoratedContext)
	require.True(testInstance, pathAvailable)
	require.Equal(testInstance, testConfigurationFilePathConstant, storedPath)
}

func TestCommandContextAccessorHandlesMissingValues(testInstance *testing.T) {
	contextAccessor := utils.NewCommandContextAccessor()

	_, pathAvailable := contextAccessor.ConfigurationFilePath(context.Background())
	require.False(testInstance, pathAvailable)

	_, nilContextPathAvailable := contextAccessor.ConfigurationFilePath(nil)
	require.False(testInstance, nilContextPathAvailable)
}
