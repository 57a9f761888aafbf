package credential

// ParseEventObserver receives notifications about recoverable anomalies
// encountered while parsing a credential stream. Observers are advisory:
// parsing succeeds identically whether or not one is configured.
type ParseEventObserver interface {
	// MalformedLineSkipped reports a line without a key=value separator that was skipped.
	MalformedLineSkipped(line string)
	// UnknownKeyIgnored reports a key=value line whose key is not part of the format.
	UnknownKeyIgnored(key string, value string)
}

// noopParseEventObserver discards all parse events.
type noopParseEventObserver struct{}

// MalformedLineSkipped implements ParseEventObserver for the no-op observer.
func (noopParseEventObserver) MalformedLineSkipped(string) {}

// UnknownKeyIgnored implements ParseEventObserver for the no-op observer.
func (noopParseEventObserver) UnknownKeyIgnored(string, string) {}
