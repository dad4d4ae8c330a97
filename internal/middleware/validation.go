package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// validatedBodyKey is the gin context key holding the bound request
const validatedBodyKey = "validatedBody"

// ValidateRequest binds the JSON body into a fresh T, validates it and stores
// it in the context for ValidatedBody.
func ValidateRequest[T any]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req T
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleAPIError(c, apperrors.NewBadRequestError("Invalid request format: "+err.Error()))
			return
		}

		if fieldErrs := validation.ValidateStruct(req); len(fieldErrs) > 0 {
			detail := dto.NewErrorDetail(apperrors.CodeValidationFailed, fieldErrs[0].Message).WithFieldErrors(fieldErrs)
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
			return
		}

		c.Set(validatedBodyKey, req)
		c.Next()
	}
}

// ValidatedBody returns the request stored by ValidateRequest[T]
func ValidatedBody[T any](c *gin.Context) (T, bool) {
	value, ok := c.Get(validatedBodyKey)
	if !ok {
		var zero T
		return zero, false
	}
	req, ok := value.(T)
	return req, ok
}
