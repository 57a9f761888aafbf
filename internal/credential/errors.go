package credential

import "fmt"

const (
	readErrorTemplateConstant  = "could not read credential stream: %v"
	writeErrorTemplateConstant = "could not write credential stream: %v"
	parseErrorTemplateConstant = "could not parse credential url %q: %v"
)

// ReadError indicates the underlying input stream failed while reading a record.
type ReadError struct {
	Cause error
}

// Error describes the read failure.
func (readError ReadError) Error() string {
	return fmt.Sprintf(readErrorTemplateConstant, readError.Cause)
}

// Unwrap exposes the underlying stream error.
func (readError ReadError) Unwrap() error {
	return readError.Cause
}

// WriteError indicates the underlying output stream failed while writing a record.
type WriteError struct {
	Cause error
}

// Error describes the write failure.
func (writeError WriteError) Error() string {
	return fmt.Sprintf(writeErrorTemplateConstant, writeError.Cause)
}

// Unwrap exposes the underlying stream error.
func (writeError WriteError) Unwrap() error {
	return writeError.Cause
}

// ParseError indicates a url attribute value is not a valid absolute URI.
type ParseError struct {
	Value string
	Cause error
}

// Error describes the parse failure including the offending raw value.
func (parseError ParseError) Error() string {
	return fmt.Sprintf(parseErrorTemplateConstant, parseError.Value, parseError.Cause)
}

// Unwrap exposes the underlying URL parsing error.
func (parseError ParseError) Unwrap() error {
	return parseError.Cause
}
