package helpers

import (
	"fmt"
	"math"

	"github.com/gin-gonic/gin"

	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// ParsePaginationParams reads the page and limit query parameters. Missing or
// invalid values are coerced, never rejected.
func ParsePaginationParams(c *gin.Context) validation.Pagination {
	return validation.ParsePagination(c.Query("page"), c.Query("limit"))
}

// ParseLimitParam reads the limit query parameter, clamped to [1,100] and
// falling back to fallback when missing or invalid.
func ParseLimitParam(c *gin.Context, fallback int) int {
	return validation.ParseLimit(c.Query("limit"), fallback)
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
func NewPaginationInfo(totalItems int64, page validation.Pagination) dto.PaginationInfo {
	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(page.Limit)))
	}

	return dto.PaginationInfo{
		Page:       page.Page,
		Limit:      page.Limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// ParseIDParam reads a positive numeric path parameter
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, ok := validation.ValidateID(raw)
	if !ok {
		return 0, apperrors.NewBadRequestError(fmt.Sprintf("invalid %s %q", name, raw))
	}
	return id, nil
}
