package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/middleware"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/filestorage"
	"github.com/yigit/weddingsite/internal/pkg/helpers"
	"github.com/yigit/weddingsite/internal/pkg/logger"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// photoField is the multipart field carrying the uploaded photo
const photoField = "photo"

// UploadController handles guest photo intake
type UploadController struct {
	storage filestorage.FileStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.FileStorage) *UploadController {
	return &UploadController{storage: storage}
}

func toUploadResponse(file *filestorage.StoredFile) dto.UploadResponse {
	return dto.UploadResponse{
		ID:           file.ID,
		FileName:     file.FileName,
		FileURL:      file.URL,
		FileSize:     file.FileSize,
		FileType:     file.MimeType,
		UploaderName: file.UploaderName,
		Caption:      file.Caption,
		CreatedAt:    file.CreatedAt,
	}
}

// Upload handles a photo upload
// @Summary Upload a photo
// @Description Validates and stores a guest photo (JPEG, PNG, GIF or WebP, at most 10MB)
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Photo"
// @Param uploaderName formData string false "Guest name"
// @Param caption formData string false "Caption"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "Photo stored"
// @Failure 400 {object} dto.APIResponse "Invalid photo"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /api/uploads [post]
func (uc *UploadController) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile(photoField)
	if err != nil {
		fileHeader = nil
	}

	result := validation.ValidateImageFile(validation.FileMetaFromHeader(fileHeader))
	if !result.Valid {
		logger.Warn().Str("reason", result.Error).Msg("Rejected photo upload")
		detail := dto.NewErrorDetail(apperrors.CodeValidationFailed, result.Error).WithField(photoField)
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(detail))
		return
	}

	stored, err := uc.storage.Save(fileHeader, filestorage.UploadMeta{
		UploaderName: c.PostForm("uploaderName"),
		Caption:      c.PostForm("caption"),
	})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(toUploadResponse(stored)))
}

// List handles listing uploaded photos
// @Summary List photos
// @Description Returns uploaded photos, newest first
// @Tags uploads
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 12, max: 100)"
// @Success 200 {object} dto.APIResponse{data=dto.UploadListResponse}
// @Router /api/uploads [get]
func (uc *UploadController) List(c *gin.Context) {
	page := helpers.ParsePaginationParams(c)

	files, total, err := uc.storage.List(page)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	uploads := make([]dto.UploadResponse, 0, len(files))
	for i := range files {
		uploads = append(uploads, toUploadResponse(&files[i]))
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.UploadListResponse{
		Uploads:    uploads,
		Pagination: helpers.NewPaginationInfo(int64(total), page),
	}))
}

// Get handles retrieving a photo by ID
// @Summary Get photo by ID
// @Tags uploads
// @Produce json
// @Param id path int true "Upload ID"
// @Success 200 {object} dto.APIResponse{data=dto.UploadResponse}
// @Failure 400 {object} dto.APIResponse "Invalid upload ID"
// @Failure 404 {object} dto.APIResponse "Upload not found"
// @Router /api/uploads/{id} [get]
func (uc *UploadController) Get(c *gin.Context) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	stored, err := uc.storage.Get(id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(toUploadResponse(stored)))
}

// Delete handles removing a photo
// @Summary Delete photo
// @Tags uploads
// @Produce json
// @Param id path int true "Upload ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.APIResponse "Invalid upload ID"
// @Failure 404 {object} dto.APIResponse "Upload not found"
// @Router /api/uploads/{id} [delete]
func (uc *UploadController) Delete(c *gin.Context) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	if err := uc.storage.Delete(id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Upload deleted"})
}
