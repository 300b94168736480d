package result

import (
	"errors"
	"fmt"
)

// Code identifies a failure kind. Codes are stable and safe to expose to
// presentation layers.
type Code string

const (
	CodeNone                         Code = ""
	CodeEmptyInput                   Code = "empty_input"
	CodeUsage                        Code = "usage_error"
	CodeNotFound                     Code = "not_found"
	CodePermissionDenied             Code = "permission_denied"
	CodeWrongType                    Code = "wrong_type"
	CodeTimeout                      Code = "timeout"
	CodeCommandNotFound              Code = "command_not_found"
	CodeCommandFailed                Code = "command_failed"
	CodeTranslationDisabled          Code = "translation_disabled"
	CodeTranslationAuthFailure       Code = "translation_auth_failure"
	CodeTranslationRateLimited       Code = "translation_rate_limited"
	CodeTranslationNetworkFailure    Code = "translation_network_failure"
	CodeTranslationMalformedResponse Code = "translation_malformed_response"
	CodeGenericIO                    Code = "generic_io"
)

// IsTranslation reports whether the code belongs to the translator family.
func (c Code) IsTranslation() bool {
	switch c {
	case CodeTranslationDisabled,
		CodeTranslationAuthFailure,
		CodeTranslationRateLimited,
		CodeTranslationNetworkFailure,
		CodeTranslationMalformedResponse:
		return true
	}
	return false
}

// Error is a classified failure.
type Error struct {
	Code    Code
	Message string
	// Err is the underlying cause, if any. It is kept for logging and errors.Is
	// checks and is never shown to the caller directly.
	Err error
}

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that keeps err as its cause.
func Wrap(code Code, err error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// AsError extracts an *Error from err. Anything else becomes GenericIO with
// the original text.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) {
		return re
	}
	return Wrap(CodeGenericIO, err, "%s", err.Error())
}

// CodeOf returns the code carried by err, or CodeNone when err is nil.
func CodeOf(err error) Code {
	if err == nil {
		return CodeNone
	}
	return AsError(err).Code
}
