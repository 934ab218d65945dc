package envkit

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for accessor failures.
const (
	ErrCodeMissing       = "missing"
	ErrCodeInvalidFormat = "invalid_format"
	ErrCodeOutOfRange    = "out_of_range"
)

// Sentinels for errors.Is. Every *KeyError matches exactly one of them.
var (
	ErrMissingKey    = errors.New("envkit: missing key")
	ErrInvalidFormat = errors.New("envkit: invalid format")
	ErrOutOfRange    = errors.New("envkit: out of range")
)

// KeyError describes why a single variable could not be read.
type KeyError struct {
	Key     string // Variable name (e.g., "PORT")
	Code    string // Error code (e.g., "missing", "out_of_range")
	Message string // Human-readable description
	Err     error  // Underlying cause, if any (e.g., *strconv.NumError)
}

// Error formats the failure as "envkit: KEY: code (message)".
func (e *KeyError) Error() string {
	return fmt.Sprintf("envkit: %s: %s (%s)", e.Key, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *KeyError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's code.
func (e *KeyError) Is(target error) bool {
	switch e.Code {
	case ErrCodeMissing:
		return target == ErrMissingKey
	case ErrCodeInvalidFormat:
		return target == ErrInvalidFormat
	case ErrCodeOutOfRange:
		return target == ErrOutOfRange
	}
	return false
}

func missingKey(key string) *KeyError {
	return &KeyError{
		Key:     key,
		Code:    ErrCodeMissing,
		Message: "variable is required but not set",
	}
}

func invalidFormat(cause error, format string, args ...any) *KeyError {
	return &KeyError{
		Code:    ErrCodeInvalidFormat,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

func outOfRange(format string, args ...any) *KeyError {
	return &KeyError{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidationError aggregates failures collected across many variables.
type ValidationError struct {
	Errors []*KeyError
}

// Error formats validation errors as a multi-line message.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "config validation failed: no errors"
	}

	var b strings.Builder
	if len(e.Errors) == 1 {
		b.WriteString("config validation failed: 1 error\n")
	} else {
		fmt.Fprintf(&b, "config validation failed: %d errors\n", len(e.Errors))
	}

	for _, ke := range e.Errors {
		fmt.Fprintf(&b, "  - %s: %s (%s)\n", ke.Key, ke.Code, ke.Message)
	}

	return strings.TrimRight(b.String(), "\n")
}

// Unwrap exposes every collected failure to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, ke := range e.Errors {
		errs[i] = ke
	}
	return errs
}
