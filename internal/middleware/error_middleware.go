package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/logger"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// HandleAPIError maps err to a status code and error envelope and aborts the request
func HandleAPIError(c *gin.Context, err error) {
	status, detail := errorDetail(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func errorDetail(err error) (int, *dto.ErrorDetail) {
	message := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		detail := dto.NewErrorDetail(apperrors.CodeValidationFailed, message)
		return http.StatusBadRequest, detail.WithFieldErrors(fieldErrors(err))
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.NewErrorDetail(apperrors.CodeValidationFailed, message)
	case errors.Is(err, apperrors.ErrEnhancementNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(apperrors.CodeEnhancementNotFound, message)
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(apperrors.CodeNotFound, message)
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized, dto.NewErrorDetail(apperrors.CodeUnauthorized, message)
	case errors.Is(err, apperrors.ErrQuotaExceeded):
		return http.StatusTooManyRequests, dto.NewErrorDetail(apperrors.CodeQuotaExceeded, message)
	case errors.Is(err, apperrors.ErrRateLimited):
		return http.StatusTooManyRequests, dto.NewErrorDetail(apperrors.CodeRateLimited, message)
	case errors.Is(err, apperrors.ErrMissingAPIKey):
		return http.StatusServiceUnavailable, dto.NewErrorDetail(apperrors.CodeMissingAPIKey, message)
	}

	var httpErr *apperrors.HTTPError
	if errors.As(err, &httpErr) {
		return upstreamDetail(httpErr)
	}
	return http.StatusInternalServerError, dto.NewErrorDetail(apperrors.CodeInternal, "Internal server error")
}

// upstreamDetail passes an upstream 4xx through with its message and reports
// an upstream 5xx as 502.
func upstreamDetail(httpErr *apperrors.HTTPError) (int, *dto.ErrorDetail) {
	code := httpErr.Code
	if code == apperrors.CodeUnknown || code == apperrors.CodeInternal {
		code = apperrors.CodeUpstream
	}
	if httpErr.Status >= http.StatusInternalServerError {
		return http.StatusBadGateway, dto.NewErrorDetail(code, "Upstream request failed")
	}
	return httpErr.Status, dto.NewErrorDetail(code, httpErr.Message)
}

func fieldErrors(err error) []validation.FieldError {
	var customErr *apperrors.CustomError
	if !errors.As(err, &customErr) || customErr.Details == nil {
		return nil
	}
	fields, _ := customErr.Details["fields"].([]validation.FieldError)
	return fields
}
