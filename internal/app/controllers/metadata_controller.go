package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/middleware"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// MetadataController validates site setting payloads before they reach the API
type MetadataController struct{}

// NewMetadataController creates a new MetadataController
func NewMetadataController() *MetadataController {
	return &MetadataController{}
}

// Validate checks a metadata create payload and decodes its typed value.
// Runs after middleware.ValidateRequest[dto.CreateMetadataRequest].
// @Summary Validate a metadata payload
// @Tags metadata
// @Accept json
// @Produce json
// @Param request body dto.CreateMetadataRequest true "Metadata payload"
// @Success 200 {object} dto.APIResponse{data=dto.MetadataValidationResponse}
// @Failure 400 {object} dto.APIResponse "Field errors"
// @Router /api/metadata/validate [post]
func (mc *MetadataController) Validate(c *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.CreateMetadataRequest](c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.NewBadRequestError("missing request body"))
		return
	}

	item := models.Metadata{
		MetaKey:   validation.SanitizeString(req.MetaKey, 100),
		MetaValue: req.MetaValue,
		MetaType:  req.MetaType,
	}
	value, err := item.Value()
	if err != nil {
		fieldErr := validation.FieldError{Field: "metaValue", Message: err.Error()}
		detail := dto.NewErrorDetail(apperrors.CodeValidationFailed, fieldErr.Message).
			WithField(fieldErr.Field).
			WithFieldErrors([]validation.FieldError{fieldErr})
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.MetadataValidationResponse{Valid: true, Value: value}))
}
