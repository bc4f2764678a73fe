package errors

import (
	"errors"
	"fmt"
)

// Error codes for the parse-error taxonomy.
const (
	CodeUnsupportedType = "UNSUPPORTED_TYPE"
	CodeFormat          = "FORMAT_ERROR"
)

// ParseError represents a structural failure while parsing one export file.
type ParseError struct {
	Code    string `json:"code"`
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"` // 1-based source line, 0 when not line-specific
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s: %s line %d: %s", e.Code, e.File, e.Line, e.Message)
	case e.File != "":
		return fmt.Sprintf("%s: %s: %s", e.Code, e.File, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// Unwrap exposes the wrapped cause for errors.Is/As chains.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// New creates a ParseError with the given code and message.
func New(code, file, message string) *ParseError {
	return &ParseError{Code: code, File: file, Message: message}
}

// UnsupportedType creates an error for a file with no recognized signal-type
// marker.
func UnsupportedType(file string) *ParseError {
	return New(CodeUnsupportedType, file, "no recognized signal type marker")
}

// Format creates an error for a recognized file whose structure is malformed.
// line is 1-based; pass 0 when the failure is not tied to one line.
func Format(file string, line int, message string) *ParseError {
	return &ParseError{Code: CodeFormat, File: file, Line: line, Message: message}
}

// Formatf is Format with fmt-style message construction.
func Formatf(file string, line int, format string, args ...interface{}) *ParseError {
	return Format(file, line, fmt.Sprintf(format, args...))
}

// IsUnsupportedType reports whether err is (or wraps) an UNSUPPORTED_TYPE
// parse error.
func IsUnsupportedType(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Code == CodeUnsupportedType
}

// IsFormat reports whether err is (or wraps) a FORMAT_ERROR parse error.
func IsFormat(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Code == CodeFormat
}
