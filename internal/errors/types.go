package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode identifies the stage and kind of a failure.
type ErrorCode string

const (
	// Local preconditions
	ErrCodeAlreadyInitialized   ErrorCode = "ALREADY_INITIALIZED"
	ErrCodeCredentialValidation ErrorCode = "CREDENTIAL_VALIDATION"
	ErrCodeAborted              ErrorCode = "ABORTED"

	// Remote API errors
	ErrCodeAuthAPI      ErrorCode = "AUTH_API"
	ErrCodeRepoCreation ErrorCode = "REPO_CREATION"

	// Local side effects
	ErrCodeIO  ErrorCode = "IO"
	ErrCodeVCS ErrorCode = "VCS"
)

// Error is a structured error. Remote failures carry the HTTP status in
// Status and the API message in Message; neither is ever encoded into the
// other.
type Error struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Status  int                    `json:"status,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
	Cause   error                  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := string(e.Code) + ": " + e.Message
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (caused by: %v)", msg, e.Cause)
	}
	return msg
}

// Unwrap implements the errors.Unwrap interface
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// ToJSON converts the error to JSON
func (e *Error) ToJSON() string {
	data, _ := json.MarshalIndent(e, "", "  ")
	return string(data)
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with an Error
func Wrap(err error, code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Is checks if an error is a specific Error code
func Is(err error, code ErrorCode) bool {
	return GetCode(err) == code && code != ""
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if e := find(err); e != nil {
		return e.Code
	}
	return ""
}

// StatusOf returns the remote status code carried by err, or 0.
func StatusOf(err error) int {
	if e := find(err); e != nil {
		return e.Status
	}
	return 0
}

// find walks the unwrap chain and returns the outermost *Error.
func find(err error) *Error {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = unwrapper.Unwrap()
	}
	return nil
}

// From returns the outermost *Error in err's chain, or nil.
func From(err error) *Error {
	return find(err)
}
