package core

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure of a run wraps exactly one of these.
var (
	ErrUsage        = errors.New("usage error")
	ErrFileNotFound = errors.New("file not found")
	ErrMalformed    = errors.New("malformed input")
	ErrIOFailure    = errors.New("i/o failure")
)

// Error constructors with context
func NewUsageError(reason string) error {
	return fmt.Errorf("%w: %s", ErrUsage, reason)
}

func NewFileNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

// NewMalformedError reports a row-level problem. line is 1-based and counts
// the header; 0 means the whole file.
func NewMalformedError(line int, reason string) error {
	if line <= 0 {
		return fmt.Errorf("%w: %s", ErrMalformed, reason)
	}
	return fmt.Errorf("%w: line %d: %s", ErrMalformed, line, reason)
}

func NewGradeParseError(line int, student, subject, value string) error {
	return NewMalformedError(line, fmt.Sprintf("grade %q for student %q in subject %q is not an integer", value, student, subject))
}

func NewIOError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", ErrIOFailure, op, path, err)
}

// Error checking helpers
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage)
}

func IsFileNotFoundError(err error) bool {
	return errors.Is(err, ErrFileNotFound)
}

func IsMalformedError(err error) bool {
	return errors.Is(err, ErrMalformed)
}

func IsIOError(err error) bool {
	return errors.Is(err, ErrIOFailure)
}
