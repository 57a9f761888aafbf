package fill

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitcred/internal/credential"
	"github.com/temirov/gitcred/internal/envsource"
	"github.com/temirov/gitcred/internal/utils"
)

const (
	commandUseConstant                       = "fill"
	commandShortDescriptionConstant          = "Emit credentials resolved from environment variables"
	commandLongDescriptionConstant           = "fill resolves username and password from the configured environment variables and writes a git-credential record to standard output."
	usernameVariableFlagNameConstant         = "username-variable"
	usernameVariableFlagDescriptionConstant  = "Environment variable supplying the username"
	passwordVariableFlagNameConstant         = "password-variable"
	passwordVariableFlagDescriptionConstant  = "Environment variable supplying the password"
	credentialsResolvedMessageConstant       = "credentials resolved"
	recordWrittenMessageConstant             = "credential record written"
	logFieldUsernameVariableConstant         = "username_variable"
	logFieldPasswordVariableConstant         = "password_variable"
	logFieldUsernamePresentConstant          = "username_present"
	logFieldPasswordPresentConstant          = "password_present"
	logFieldConfigurationFilePathConstant    = "config_file"
	usernameVariableConfigurationKeyConstant = "username_variable"
	passwordVariableConfigurationKeyConstant = "password_variable"
	configurationKeySeparatorConstant        = "."
)

// CommandConfiguration stores the configurable environment variable names for the fill command.
type CommandConfiguration struct {
	UsernameVariable string `mapstructure:"username_variable"`
	PasswordVariable string `mapstructure:"password_variable"`
}

// DefaultConfigurationValues returns the configuration defaults registered under the provided key prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	return map[string]any{
		configurationKeyPrefix + configurationKeySeparatorConstant + usernameVariableConfigurationKeyConstant: envsource.DefaultUsernameVariableName,
		configurationKeyPrefix + configurationKeySeparatorConstant + passwordVariableConfigurationKeyConstant: envsource.DefaultPasswordVariableName,
	}
}

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the fill command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	EnvironmentOverrides  map[string]string
}

// Build constructs the fill command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	command.Flags().String(usernameVariableFlagNameConstant, "", usernameVariableFlagDescriptionConstant)
	command.Flags().String(passwordVariableFlagNameConstant, "", passwordVariableFlagDescriptionConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	usernameVariableName, usernameFlagError := resolveVariableName(command, usernameVariableFlagNameConstant, configuration.UsernameVariable)
	if usernameFlagError != nil {
		return usernameFlagError
	}
	passwordVariableName, passwordFlagError := resolveVariableName(command, passwordVariableFlagNameConstant, configuration.PasswordVariable)
	if passwordFlagError != nil {
		return passwordFlagError
	}

	environmentSource := envsource.NewSource(usernameVariableName, passwordVariableName, builder.EnvironmentOverrides)
	resolvedRecord := environmentSource.Resolve()

	commandLogger := builder.resolveLogger()
	commandLogger.Debug(
		credentialsResolvedMessageConstant,
		zap.String(logFieldUsernameVariableConstant, usernameVariableName),
		zap.String(logFieldPasswordVariableConstant, passwordVariableName),
		zap.Bool(logFieldUsernamePresentConstant, resolvedRecord.Username.IsSet()),
		zap.Bool(logFieldPasswordPresentConstant, resolvedRecord.Password.IsSet()),
	)

	serializer := credential.NewSerializer()
	if serializeError := serializer.Serialize(resolvedRecord, command.OutOrStdout()); serializeError != nil {
		return serializeError
	}

	contextAccessor := utils.NewCommandContextAccessor()
	if configurationFilePath, pathAvailable := contextAccessor.ConfigurationFilePath(command.Context()); pathAvailable {
		commandLogger.Debug(
			recordWrittenMessageConstant,
			zap.String(logFieldConfigurationFilePathConstant, configurationFilePath),
		)
	}

	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return CommandConfiguration{}
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	if providedLogger := builder.LoggerProvider(); providedLogger != nil {
		return providedLogger
	}
	return zap.NewNop()
}

func resolveVariableName(command *cobra.Command, flagName string, configuredName string) (string, error) {
	flagValue, flagError := command.Flags().GetString(flagName)
	if flagError != nil {
		return "", flagError
	}
	if len(strings.TrimSpace(flagValue)) > 0 {
		return flagValue, nil
	}
	return configuredName, nil
}
