package credential

import (
	"fmt"
	"io"
)

const (
	attributeLineTemplateConstant = "%s=%s\n"
	recordTerminatorConstant      = "\n"
)

// Serializer writes git-credential records as key=value line streams.
type Serializer struct{}

// NewSerializer constructs a Serializer.
func NewSerializer() *Serializer {
	return &Serializer{}
}

// Serialize writes every set attribute of record to destination, one
// key=value line each, followed by one blank terminator line. The url line
// is written first so that subsequent attribute lines can be read as
// refinements of it. Serialization aborts with a WriteError on the first
// failed write.
func (serializer *Serializer) Serialize(record Record, destination io.Writer) error {
	if record.URL != nil {
		if writeError := writeAttributeLine(destination, urlAttributeKeyConstant, record.URL.String()); writeError != nil {
			return writeError
		}
	}

	orderedAttributes := []struct {
		attributeKey string
		attribute    Attribute
	}{
		{attributeKey: protocolAttributeKeyConstant, attribute: record.Protocol},
		{attributeKey: hostAttributeKeyConstant, attribute: record.Host},
		{attributeKey: pathAttributeKeyConstant, attribute: record.Path},
		{attributeKey: usernameAttributeKeyConstant, attribute: record.Username},
		{attributeKey: passwordAttributeKeyConstant, attribute: record.Password},
	}

	for _, orderedAttribute := range orderedAttributes {
		if !orderedAttribute.attribute.IsSet() {
			continue
		}
		if writeError := writeAttributeLine(destination, orderedAttribute.attributeKey, orderedAttribute.attribute.Value()); writeError != nil {
			return writeError
		}
	}

	if _, writeError := io.WriteString(destination, recordTerminatorConstant); writeError != nil {
		return WriteError{Cause: writeError}
	}

	return nil
}

func writeAttributeLine(destination io.Writer, attributeKey string, attributeValue string) error {
	if _, writeError := fmt.Fprintf(destination, attributeLineTemplateConstant, attributeKey, attributeValue); writeError != nil {
		return WriteError{Cause: writeError}
	}
	return nil
}
