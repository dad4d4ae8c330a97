package dto

import (
	"time"

	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// ErrorDetail is the error body of the API; Message and Code follow the
// contract the httpclient parses.
type ErrorDetail struct {
	Code    apperrors.ErrorCode     `json:"code" example:"VALIDATION_FAILED"`
	Message string                  `json:"message" example:"File size exceeds the 10MB limit"`
	Field   string                  `json:"field,omitempty" example:"file"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code apperrors.ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// WithFieldErrors attaches per-field validation failures
func (e *ErrorDetail) WithFieldErrors(fields []validation.FieldError) *ErrorDetail {
	e.Fields = fields
	return e
}

// APIResponse is the envelope of every edge server response
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Message   string       `json:"message,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewDataResponse wraps data in an APIResponse
func NewDataResponse(data interface{}) APIResponse {
	return APIResponse{Data: data, Timestamp: time.Now()}
}

// NewErrorResponse wraps an error detail in an APIResponse. Message mirrors the
// detail message so clients reading the top-level `message` field work too.
func NewErrorResponse(detail *ErrorDetail) APIResponse {
	return APIResponse{Error: detail, Message: detail.Message, Timestamp: time.Now()}
}
