// Package credential implements the git-credential helper line protocol.
//
// It exposes Record as the in-memory representation of one credential
// exchange, Parser for reading key=value streams, and Serializer for writing
// them back in the canonical field order. Recoverable input anomalies are
// reported through ParseEventObserver so callers decide how warnings surface.
//
// The wire format is documented in git-credential(1).
package credential
