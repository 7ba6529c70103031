// Package errors defines the coded errors envpath returns from every layer.
//
// The code is the stable part: tests and the JSON error document match on
// it, while the message is for people. Details carry the values that caused
// the failure under a small set of keys:
//
//	path    the startup file or directory involved
//	shell   the requested or detected shell name
//	target  the requested target (rc, profile, all)
//	state   the requested state (present, absent)
//	repo    the owner/name of a release lookup
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a failure category
type ErrorCode string

const (
	// ErrUnknown is what GetErrorCode reports for errors not built here
	ErrUnknown ErrorCode = "UNKNOWN"
	// ErrInternal marks a broken invariant, such as embedded defaults that
	// fail to parse
	ErrInternal ErrorCode = "INTERNAL"
	// ErrInvalidInput covers bad arguments: an empty path, an unknown
	// shell, target, state or output format, a malformed repo
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// ErrConfigLoad and ErrConfigParse come from reading envpath.toml and
	// ENVPATH_* overrides
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Startup file errors. Files written before one of these keep their
	// new content.
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileCreate ErrorCode = "FILE_CREATE"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// ErrReleaseNotFound means the repository has no published release;
	// ErrReleaseFetch is any other failure talking to the releases API
	ErrReleaseNotFound ErrorCode = "RELEASE_NOT_FOUND"
	ErrReleaseFetch    ErrorCode = "RELEASE_FETCH"
)

// EnvpathError is a coded error with optional details and cause
type EnvpathError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

func (e *EnvpathError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *EnvpathError) Unwrap() error {
	return e.Wrapped
}

// Is matches on code alone, so errors.Is(err, New(ErrFileWrite, "")) holds
// for any write failure
func (e *EnvpathError) Is(target error) bool {
	var other *EnvpathError
	if errors.As(target, &other) {
		return e.Code == other.Code
	}
	return false
}

func build(cause error, code ErrorCode, message string) *EnvpathError {
	return &EnvpathError{
		Code:    code,
		Message: message,
		Details: map[string]interface{}{},
		Wrapped: cause,
	}
}

func New(code ErrorCode, message string) *EnvpathError {
	return build(nil, code, message)
}

func Newf(code ErrorCode, format string, args ...interface{}) *EnvpathError {
	return build(nil, code, fmt.Sprintf(format, args...))
}

// Wrap attaches code and message to err. A nil err yields nil so callers
// can wrap the result of a call unconditionally.
func Wrap(err error, code ErrorCode, message string) *EnvpathError {
	if err == nil {
		return nil
	}
	return build(err, code, message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EnvpathError {
	if err == nil {
		return nil
	}
	return build(err, code, fmt.Sprintf(format, args...))
}

// WithDetail records key and returns e for chaining
func (e *EnvpathError) WithDetail(key string, value interface{}) *EnvpathError {
	if e.Details == nil {
		e.Details = map[string]interface{}{}
	}
	e.Details[key] = value
	return e
}

func asEnvpath(err error) (*EnvpathError, bool) {
	var envErr *EnvpathError
	ok := errors.As(err, &envErr)
	return envErr, ok
}

// IsErrorCode reports whether the outermost EnvpathError in err's chain
// carries code
func IsErrorCode(err error, code ErrorCode) bool {
	envErr, ok := asEnvpath(err)
	return ok && envErr.Code == code
}

// GetErrorCode returns the outermost code in err's chain, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	if envErr, ok := asEnvpath(err); ok {
		return envErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the outermost details in err's chain, or nil
func GetErrorDetails(err error) map[string]interface{} {
	if envErr, ok := asEnvpath(err); ok {
		return envErr.Details
	}
	return nil
}
