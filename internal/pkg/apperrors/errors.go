package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound    = errors.New("resource not found")
	ErrEnhancementNotFound = errors.New("enhancement not found")

	// Request errors
	ErrUnauthorized     = errors.New("unauthorized")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Upstream service errors
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrRateLimited   = errors.New("rate limited")
	ErrMissingAPIKey = errors.New("missing api key")
	ErrInternal      = errors.New("internal server error")
)

// ErrorCode is the closed set of machine-readable codes the wedding API may
// put in the `code` field of an error body.
type ErrorCode string

const (
	CodeUnknown             ErrorCode = ""
	CodeNotFound            ErrorCode = "NOT_FOUND"
	CodeEnhancementNotFound ErrorCode = "ENHANCEMENT_NOT_FOUND"
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeValidationFailed    ErrorCode = "VALIDATION_FAILED"
	CodeQuotaExceeded       ErrorCode = "QUOTA_EXCEEDED"
	CodeRateLimited         ErrorCode = "RATE_LIMITED"
	CodeMissingAPIKey       ErrorCode = "MISSING_API_KEY"
	CodeInternal            ErrorCode = "INTERNAL"

	// CodeUpstream is only produced by the edge server for upstream failures
	// that carry no recognised code.
	CodeUpstream ErrorCode = "UPSTREAM_ERROR"
)

// ParseErrorCode maps a raw code to the enumeration; anything unrecognised is CodeUnknown.
func ParseErrorCode(raw string) ErrorCode {
	switch code := ErrorCode(raw); code {
	case CodeNotFound, CodeEnhancementNotFound, CodeUnauthorized, CodeValidationFailed,
		CodeQuotaExceeded, CodeRateLimited, CodeMissingAPIKey, CodeInternal:
		return code
	default:
		return CodeUnknown
	}
}

// sentinel returns the sentinel error a code stands for, or nil.
func (c ErrorCode) sentinel() error {
	switch c {
	case CodeNotFound:
		return ErrResourceNotFound
	case CodeEnhancementNotFound:
		return ErrEnhancementNotFound
	case CodeUnauthorized:
		return ErrUnauthorized
	case CodeValidationFailed:
		return ErrValidationFailed
	case CodeQuotaExceeded:
		return ErrQuotaExceeded
	case CodeRateLimited:
		return ErrRateLimited
	case CodeMissingAPIKey:
		return ErrMissingAPIKey
	case CodeInternal:
		return ErrInternal
	case CodeUnknown, CodeUpstream:
		return nil
	}
	return nil
}

// HTTPError is returned for every response outside the 2xx range.
type HTTPError struct {
	Status  int
	Message string
	Code    ErrorCode
}

// NewHTTPError builds an HTTPError, falling back to the status text for an empty message.
func NewHTTPError(status int, message string, code ErrorCode) *HTTPError {
	if message == "" {
		message = http.StatusText(status)
	}
	return &HTTPError{Status: status, Message: message, Code: code}
}

// Error implements error interface
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// Unwrap exposes the sentinel matching the error code, or the status when uncoded,
// so callers can use errors.Is.
func (e *HTTPError) Unwrap() error {
	if err := e.Code.sentinel(); err != nil {
		return err
	}

	switch {
	case e.Status == http.StatusNotFound:
		return ErrResourceNotFound
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusTooManyRequests:
		return ErrRateLimited
	case e.Status == http.StatusBadRequest || e.Status == http.StatusUnprocessableEntity:
		return ErrBadRequest
	case e.Status >= http.StatusInternalServerError:
		return ErrInternal
	}
	return nil
}

// StatusOf returns the HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}

// CodeOf returns the error code carried by err, or CodeUnknown.
func CodeOf(err error) ErrorCode {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return CodeUnknown
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return NewCustomError(ErrResourceNotFound, message)
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return NewCustomError(ErrBadRequest, message)
}
