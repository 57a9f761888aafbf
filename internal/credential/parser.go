package credential

import (
	"bufio"
	"errors"
	"io"
	"net/url"
	"strings"
)

const (
	attributeSeparatorConstant   = "="
	urlAttributeKeyConstant      = "url"
	protocolAttributeKeyConstant = "protocol"
	hostAttributeKeyConstant     = "host"
	pathAttributeKeyConstant     = "path"
	usernameAttributeKeyConstant = "username"
	passwordAttributeKeyConstant = "password"
	relativeURLMessageConstant   = "not an absolute url"
)

// Parser reads git-credential records from key=value line streams.
type Parser struct {
	eventObserver ParseEventObserver
}

// NewParser constructs a Parser reporting recoverable anomalies to the
// provided observer. A nil observer disables event reporting.
func NewParser(eventObserver ParseEventObserver) *Parser {
	if eventObserver == nil {
		eventObserver = noopParseEventObserver{}
	}
	return &Parser{eventObserver: eventObserver}
}

// Parse reads key=value lines from source until a blank line or end of stream
// and returns the populated record. A blank terminator line is not required
// at end of stream. Lines without a separator and lines with unrecognized
// keys are reported to the observer and skipped; a repeated key keeps its
// last value. Parse fails with a ReadError when the stream fails and with a
// ParseError when a url value is not an absolute URI.
func (parser *Parser) Parse(source io.Reader) (Record, error) {
	parsedRecord := Record{}

	lineScanner := bufio.NewScanner(source)
	for lineScanner.Scan() {
		currentLine := lineScanner.Text()
		if len(currentLine) == 0 {
			// A blank line terminates the record; anything after it belongs
			// to the caller.
			return parsedRecord, nil
		}

		attributeKey, attributeValue, separatorFound := strings.Cut(currentLine, attributeSeparatorConstant)
		if !separatorFound {
			parser.eventObserver.MalformedLineSkipped(currentLine)
			continue
		}

		switch attributeKey {
		case urlAttributeKeyConstant:
			parsedURL, urlParseError := parseAbsoluteURL(attributeValue)
			if urlParseError != nil {
				return Record{}, urlParseError
			}
			parsedRecord.URL = parsedURL
		case protocolAttributeKeyConstant:
			parsedRecord.Protocol = NewAttribute(attributeValue)
		case hostAttributeKeyConstant:
			parsedRecord.Host = NewAttribute(attributeValue)
		case pathAttributeKeyConstant:
			parsedRecord.Path = NewAttribute(attributeValue)
		case usernameAttributeKeyConstant:
			parsedRecord.Username = NewAttribute(attributeValue)
		case passwordAttributeKeyConstant:
			parsedRecord.Password = NewAttribute(attributeValue)
		default:
			parser.eventObserver.UnknownKeyIgnored(attributeKey, attributeValue)
		}
	}

	if scanError := lineScanner.Err(); scanError != nil {
		return Record{}, ReadError{Cause: scanError}
	}

	return parsedRecord, nil
}

// parseAbsoluteURL validates the raw value as an absolute URI. net/url accepts
// relative references, so absoluteness is enforced explicitly.
func parseAbsoluteURL(rawValue string) (*url.URL, error) {
	parsedURL, urlParseError := url.Parse(rawValue)
	if urlParseError != nil {
		return nil, ParseError{Value: rawValue, Cause: urlParseError}
	}
	if !parsedURL.IsAbs() {
		return nil, ParseError{Value: rawValue, Cause: errors.New(relativeURLMessageConstant)}
	}
	return parsedURL, nil
}
