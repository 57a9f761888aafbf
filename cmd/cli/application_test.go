package cli_test

import (
	"bytes"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/temirov/gitcred/cmd/cli"
	"github.com/temirov/gitcred/internal/envsource"
	"github.com/temirov/gitcred/internal/utils"
)

const (
	testFillCommandNameConstant        = "fill"
	testEmbeddedConfigurationTypeError = "embedded configuration type mismatch"
	testUsernameValueConstant          = "me"
	testPasswordValueConstant          = "%sec&ret!"
	testExpectedFillOutputConstant     = "username=me\npassword=%sec&ret!\n\n"
	testLogLevelOverrideConstant       = "--log-level"
	testInvalidLogLevelValueConstant   = "verbose"
)

func decodeEmbeddedConfiguration(testInstance *testing.T) cli.ApplicationConfiguration {
	testInstance.Helper()

	embeddedContent, embeddedType := cli.EmbeddedDefaultConfiguration()
	require.Equalf(testInstance, "yaml", embeddedType, testEmbeddedConfigurationTypeError)

	viperInstance := viper.New()
	viperInstance.SetConfigType(embeddedType)
	require.NoError(testInstance, viperInstance.ReadConfig(bytes.NewReader(embeddedContent)))

	var decodedConfiguration cli.ApplicationConfiguration
	require.NoError(testInstance, mapstructure.Decode(viperInstance.AllSettings(), &decodedConfiguration))

	return decodedConfiguration
}

func TestEmbeddedDefaultConfigurationProvidesDefaults(testInstance *testing.T) {
	decodedConfiguration := decodeEmbeddedConfiguration(testInstance)

	require.Equal(testInstance, string(utils.LogLevelInfo), decodedConfiguration.Common.LogLevel)
	require.Equal(testInstance, string(utils.LogFormatStructured), decodedConfiguration.Common.LogFormat)
	require.Equal(testInstance, envsource.DefaultUsernameVariableName, decodedConfiguration.Fill.UsernameVariable)
	require.Equal(testInstance, envsource.DefaultPasswordVariableName, decodedConfiguration.Fill.PasswordVariable)
}

func TestApplicationExecutesFillCommand(testInstance *testing.T) {
	testInstance.Setenv(envsource.DefaultUsernameVariableName, testUsernameValueConstant)
	testInstance.Setenv(envsource.DefaultPasswordVariableName, testPasswordValueConstant)

	application := cli.NewApplication()

	outputBuffer := &bytes.Buffer{}
	application.RootCommand().SetOut(outputBuffer)

	require.NoError(testInstance, application.ExecuteWithArguments([]string{testFillCommandNameConstant}))
	require.Equal(testInstance, testExpectedFillOutputConstant, outputBuffer.String())
}

func TestApplicationInitializesConfigurationDefaults(testInstance *testing.T) {
	application := cli.NewApplication()

	outputBuffer := &bytes.Buffer{}
	application.RootCommand().SetOut(outputBuffer)

	require.NoError(testInstance, application.ExecuteWithArguments([]string{testFillCommandNameConstant}))

	resolvedConfiguration := application.Configuration()
	require.Equal(testInstance, envsource.DefaultUsernameVariableName, resolvedConfiguration.Fill.UsernameVariable)
	require.Equal(testInstance, envsource.DefaultPasswordVariableName, resolvedConfiguration.Fill.PasswordVariable)
	require.Equal(testInstance, string(utils.LogLevelInfo), resolvedConfiguration.Common.LogLevel)
}

func TestApplicationRejectsUnsupportedLogLevelOverride(testInstance *testing.T) {
	application := cli.NewApplication()

	application.RootCommand().SetOut(&bytes.Buffer{})
	application.RootCommand().SetErr(&bytes.Buffer{})

	executionError := application.ExecuteWithArguments([]string{
		testFillCommandNameConstant,
		testLogLevelOverrideConstant,
		testInvalidLogLevelValueConstant,
	})

	require.Error(testInstance, executionError)
}

func TestApplicationRootCommandShowsHelp(testInstance *testing.T) {
	application := cli.NewApplication()

	outputBuffer := &bytes.Buffer{}
	application.RootCommand().SetOut(outputBuffer)
	application.RootCommand().SetErr(&bytes.Buffer{})

	require.NoError(testInstance, application.ExecuteWithArguments([]string{}))
	require.Contains(testInstance, outputBuffer.String(), testFillCommandNameConstant)
}
