// Package envsource resolves credential attributes from environment variables.
//
// It backs the fill command: a Source reads the configured username and
// password variables and produces a credential.Record ready for
// serialization. Variables that are present but empty count as set; the
// format distinguishes an empty value from an absent one.
package envsource
