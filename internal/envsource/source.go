package envsource

import (
	"os"
	"strings"

	"github.com/temirov/gitcred/internal/credential"
)

// Default environment variable names consulted by the fill command.
const (
	DefaultUsernameVariableName = "GIT_USER"
	DefaultPasswordVariableName = "GIT_PASS"
)

// Source resolves username and password attributes from environment variables.
type Source struct {
	usernameVariableName string
	passwordVariableName string
	environmentOverrides map[string]string
}

// NewSource constructs a Source consulting the named variables. Blank names
// fall back to the defaults. Entries in environmentOverrides take precedence
// over the process environment, which keeps resolution testable.
func NewSource(usernameVariableName string, passwordVariableName string, environmentOverrides map[string]string) *Source {
	if len(strings.TrimSpace(usernameVariableName)) == 0 {
		usernameVariableName = DefaultUsernameVariableName
	}
	if len(strings.TrimSpace(passwordVariableName)) == 0 {
		passwordVariableName = DefaultPasswordVariableName
	}

	return &Source{
		usernameVariableName: usernameVariableName,
		passwordVariableName: passwordVariableName,
		environmentOverrides: environmentOverrides,
	}
}

// Resolve returns a record whose username and password reflect the configured
// environment variables. Absent variables leave the attributes unset. Values
// are not trimmed: passwords may legitimately carry whitespace.
func (source *Source) Resolve() credential.Record {
	resolvedRecord := credential.Record{}

	if usernameValue, usernameFound := source.lookupVariable(source.usernameVariableName); usernameFound {
		resolvedRecord.Username = credential.NewAttribute(usernameValue)
	}
	if passwordValue, passwordFound := source.lookupVariable(source.passwordVariableName); passwordFound {
		resolvedRecord.Password = credential.NewAttribute(passwordValue)
	}

	return resolvedRecord
}

func (source *Source) lookupVariable(variableName string) (string, bool) {
	if source.environmentOverrides != nil {
		if overrideValue, overrideExists := source.environmentOverrides[variableName]; overrideExists {
			return overrideValue, true
		}
	}
	return os.LookupEnv(variableName)
}
