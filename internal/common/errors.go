package common

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failure so callers can branch on the class of
// error instead of string-matching messages.
type ErrorKind string

const (
	// KindConfig: a required secret or setting is missing. Never retried.
	KindConfig ErrorKind = "config"
	// KindValidation: the inbound request failed shape/length/enum checks.
	KindValidation ErrorKind = "validation"
	// KindUpstreamTransient: rate-limit or 5xx from the model API. Retryable.
	KindUpstreamTransient ErrorKind = "upstream_transient"
	// KindUpstreamPermanent: auth or bad-request failure from the model API.
	KindUpstreamPermanent ErrorKind = "upstream_permanent"
	// KindParse: the model reply is not valid JSON or violates the
	// response contract. Retrying would not help.
	KindParse ErrorKind = "parse"
	// KindCache: a cache read/write failed. Always recovered locally.
	KindCache ErrorKind = "cache"
)

// AppError is an error with a kind attached.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// NewAppError creates an AppError wrapping err (err may be nil).
func NewAppError(kind ErrorKind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or "" if err carries no kind.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// ValidationError is a validation failure with per-field messages so the
// caller can highlight the offending input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Fields))
}
