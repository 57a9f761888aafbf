package ui

import (
	"fmt"

	"go.uber.org/zap"
)

const (
	malformedLineMessageTemplateConstant = "Skipping malformed credential line: %s"
	unknownKeyMessageTemplateConstant    = "Ignoring unknown credential key: %s=%s"
)

// ParseEventFormatter builds human-readable messages for credential parse events.
type ParseEventFormatter struct{}

// BuildMalformedLineMessage formats the message describing a skipped line without a key=value separator.
func (formatter ParseEventFormatter) BuildMalformedLineMessage(line string) string {
	return fmt.Sprintf(malformedLineMessageTemplateConstant, line)
}

// BuildUnknownKeyMessage formats the message describing an ignored unrecognized key.
func (formatter ParseEventFormatter) BuildUnknownKeyMessage(key string, value string) string {
	return fmt.Sprintf(unknownKeyMessageTemplateConstant, key, value)
}

// ConsoleParseEventLogger renders credential parse events using a zap logger.
// It implements credential.ParseEventObserver.
type ConsoleParseEventLogger struct {
	logger    *zap.Logger
	formatter ParseEventFormatter
}

// NewConsoleParseEventLogger constructs a parse event logger backed by the provided zap logger.
func NewConsoleParseEventLogger(logger *zap.Logger) *ConsoleParseEventLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ConsoleParseEventLogger{logger: logger, formatter: ParseEventFormatter{}}
}

// MalformedLineSkipped implements credential.ParseEventObserver by logging skipped malformed lines.
func (eventLogger *ConsoleParseEventLogger) MalformedLineSkipped(line string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildMalformedLineMessage(line))
}

// UnknownKeyIgnored implements credential.ParseEventObserver by logging ignored unknown keys.
func (eventLogger *ConsoleParseEventLogger) UnknownKeyIgnored(key string, value string) {
	if eventLogger == nil {
		return
	}
	eventLogger.logger.Warn(eventLogger.formatter.BuildUnknownKeyMessage(key, value))
}
