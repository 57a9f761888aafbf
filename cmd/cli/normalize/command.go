package normalize

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/gitcred/internal/credential"
	"github.com/temirov/gitcred/internal/ui"
)

const (
	commandUseConstant              = "normalize"
	commandShortDescriptionConstant = "Rewrite a credential record in canonical order"
	commandLongDescriptionConstant  = "normalize reads a git-credential record from standard input and writes it back to standard output in the canonical attribute order, warning about malformed lines and unknown keys."
	recordParsedMessageConstant     = "credential record parsed"
	logFieldURLPresentConstant      = "url_present"
	logFieldUsernamePresentConstant = "username_present"
	logFieldPasswordPresentConstant = "password_present"
)

// LoggerProvider yields a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the normalize command.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the normalize command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:   commandUseConstant,
		Short: commandShortDescriptionConstant,
		Long:  commandLongDescriptionConstant,
		Args:  cobra.NoArgs,
		RunE:  builder.run,
	}

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	commandLogger := builder.resolveLogger()

	parser := credential.NewParser(ui.NewConsoleParseEventLogger(commandLogger))
	parsedRecord, parseError := parser.Parse(command.InOrStdin())
	if parseError != nil {
		return parseError
	}

	commandLogger.Debug(
		recordParsedMessageConstant,
		zap.Bool(logFieldURLPresentConstant, parsedRecord.URL != nil),
		zap.Bool(logFieldUsernamePresentConstant, parsedRecord.Username.IsSet()),
		zap.Bool(logFieldPasswordPresentConstant, parsedRecord.Password.IsSet()),
	)

	serializer := credential.NewSerializer()
	return serializer.Serialize(parsedRecord, command.OutOrStdout())
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
