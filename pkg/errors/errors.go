// Package errors defines the coded error type shared by every linkrouter
// package. Codes are stable and meant to be matched in tests and by callers
// deciding whether a failure is fatal to the whole run or to a single URL.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration and rule loading, fatal to the whole run
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrRulesLoad   ErrorCode = "RULES_LOAD"
	ErrPattern     ErrorCode = "PATTERN_INVALID"

	// Argument decoding, fatal to a single URL
	ErrSignatureSyntax ErrorCode = "SIGNATURE_SYNTAX"
	ErrUnsupportedTag  ErrorCode = "UNSUPPORTED_TAG"
	ErrTypeMismatch    ErrorCode = "TYPE_MISMATCH"
	ErrArityMismatch   ErrorCode = "ARITY_MISMATCH"

	// Dispatch and invocation, fatal to a single URL
	ErrNoAction      ErrorCode = "NO_ACTION"
	ErrExecFailed    ErrorCode = "EXEC_FAILED"
	ErrRemoteCall    ErrorCode = "REMOTE_CALL"
	ErrRemoteTimeout ErrorCode = "REMOTE_TIMEOUT"
)

// Detail keys used across packages
const (
	DetailIndex       = "index"
	DetailPath        = "path"
	DetailExpectedTag = "expected_tag"
	DetailActualKind  = "actual_kind"
	DetailTag         = "tag"
	DetailPosition    = "position"
	DetailSignature   = "signature"
	DetailPattern     = "pattern"
	DetailRuleIndex   = "rule_index"
	DetailSource      = "source"
)

// LinkrouterError represents a structured error with code and details
type LinkrouterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LinkrouterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LinkrouterError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a LinkrouterError with the same code
func (e *LinkrouterError) Is(target error) bool {
	var targetErr *LinkrouterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LinkrouterError with the given code and message
func New(code ErrorCode, message string) *LinkrouterError {
	return &LinkrouterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LinkrouterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LinkrouterError {
	return &LinkrouterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *LinkrouterError {
	if err == nil {
		return nil
	}
	return &LinkrouterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LinkrouterError {
	if err == nil {
		return nil
	}
	return &LinkrouterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LinkrouterError) WithDetail(key string, value interface{}) *LinkrouterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *LinkrouterError) WithDetails(details map[string]interface{}) *LinkrouterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lrErr *LinkrouterError
	if errors.As(err, &lrErr) {
		return lrErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a LinkrouterError
func GetErrorCode(err error) ErrorCode {
	var lrErr *LinkrouterError
	if errors.As(err, &lrErr) {
		return lrErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details of the outermost LinkrouterError in the chain
func GetErrorDetails(err error) map[string]interface{} {
	var lrErr *LinkrouterError
	if errors.As(err, &lrErr) {
		return lrErr.Details
	}
	return nil
}

// IsRunFatal reports whether err invalidates the whole rule set rather than a
// single URL.
func IsRunFatal(err error) bool {
	switch GetErrorCode(err) {
	case ErrConfigLoad, ErrConfigParse, ErrRulesLoad, ErrPattern:
		return true
	}
	return false
}
