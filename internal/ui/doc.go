// Package ui renders diagnostic events as human-readable log output.
//
// It provides ConsoleParseEventLogger, a zap-backed implementation of
// credential.ParseEventObserver, together with the message formatter used to
// describe malformed lines and unknown keys encountered while parsing.
package ui
