package errors

import (
	stderrors "errors"
	"fmt"

	"gradereport/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of the
// wrapped error when it has one
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    Classify(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Classify maps any error onto a code, looking at the domain error kinds
// first and falling back to an AppError code in the chain
func Classify(err error) string {
	switch {
	case err == nil:
		return ""
	case core.IsUsageError(err):
		return CodeUsage
	case core.IsFileNotFoundError(err):
		return CodeFileNotFound
	case core.IsMalformedError(err):
		return CodeMalformed
	case core.IsIOError(err):
		return CodeIOFailure
	}
	if code := GetCode(err); code != "UNKNOWN" {
		return code
	}
	return CodeInternalError
}

// Predefined error codes
const (
	CodeUsage         = "USAGE"
	CodeFileNotFound  = "FILE_NOT_FOUND"
	CodeMalformed     = "MALFORMED"
	CodeIOFailure     = "IO_FAILURE"
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
