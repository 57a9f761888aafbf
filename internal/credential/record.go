package credential

import "net/url"

// Attribute stores one optional credential attribute, distinguishing an unset
// attribute from one that was explicitly set to the empty string.
type Attribute struct {
	attributeValue   string
	attributePresent bool
}

// NewAttribute constructs a set Attribute holding the provided value.
func NewAttribute(value string) Attribute {
	return Attribute{attributeValue: value, attributePresent: true}
}

// IsSet reports whether the attribute carries a value.
func (attribute Attribute) IsSet() bool {
	return attribute.attributePresent
}

// Value returns the stored value; unset attributes yield the empty string.
func (attribute Attribute) Value() string {
	return attribute.attributeValue
}

// Record holds the values of all attributes recognized by the git-credential
// format. A zero Record has every attribute unset.
type Record struct {
	// URL is treated specially by git-credential: a url line conventionally
	// subsumes protocol, host, path, username, and password. The codec never
	// derives one representation from the other; both are emitted when both
	// are set, in the documented order, and reconciling them is the caller's
	// responsibility. A nil URL means the attribute is unset.
	URL *url.URL
	// Protocol names the scheme over which the credential will be used (for example "https").
	Protocol Attribute
	// Host is the remote hostname, optionally carrying a port.
	Host Attribute
	// Path is the resource path on the host, such as a repository path.
	Path Attribute
	// Username is the credential's username, when one is already known.
	Username Attribute
	// Password is the credential's password.
	Password Attribute
}
