// Package errors defines the coded error taxonomy shared by the
// truncation pipeline and the dataset fetcher. Every fatal condition
// maps to one of the codes below; callers match with errors.As or the
// IsCode helper rather than string comparison.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for the pipeline failure classes.
const (
	CodeInputNotFound  = "INPUT_NOT_FOUND"
	CodeColumnNotFound = "COLUMN_NOT_FOUND"
	CodeEmptyResult    = "EMPTY_RESULT"
	CodeDownloadFailed = "DOWNLOAD_FAILED"
)

// Error represents a structured pipeline error
type Error struct {
	Code    string
	Message string
	Details interface{}
	Err     error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/As chains
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the given code and message
func New(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a new Error wrapping an underlying cause
func Wrap(code, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// InputNotFound reports a missing explicit source path.
func InputNotFound(path string) *Error {
	return &Error{
		Code:    CodeInputNotFound,
		Message: fmt.Sprintf("source CSV not found: %s", path),
		Details: path,
	}
}

// NoCandidateFound reports that no candidate file exists in the search
// directory. The candidate list is kept in Details for the CLI summary.
func NoCandidateFound(dir string, candidates []string) *Error {
	return &Error{
		Code: CodeInputNotFound,
		Message: fmt.Sprintf("no candidate CSV found in %s (looked for: %s); provide one via --csv",
			dir, strings.Join(candidates, ", ")),
		Details: candidates,
	}
}

// ColumnNotFound reports a date column absent from the source schema
func ColumnNotFound(column, path string) *Error {
	return &Error{
		Code:    CodeColumnNotFound,
		Message: fmt.Sprintf("column %q not found in %s", column, path),
		Details: column,
	}
}

// EmptyResult reports an aggregation that produced zero distinct dates
func EmptyResult(message string) *Error {
	return &Error{Code: CodeEmptyResult, Message: message}
}

// DownloadFailed wraps the final failure of the acquisition ladder
func DownloadFailed(message string, err error) *Error {
	return &Error{Code: CodeDownloadFailed, Message: message, Err: err}
}

// IsCode reports whether err carries the given pipeline error code
func IsCode(err error, code string) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}
