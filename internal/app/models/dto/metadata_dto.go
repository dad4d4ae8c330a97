package dto

import "github.com/yigit/weddingsite/internal/app/models"

// CreateMetadataRequest creates a site setting
type CreateMetadataRequest struct {
	MetaKey     string          `json:"metaKey" validate:"required,min=1,max=100"`
	MetaValue   string          `json:"metaValue" validate:"max=10000"`
	MetaType    models.MetaType `json:"metaType" validate:"required,oneof=string number boolean json"`
	Category    string          `json:"category" validate:"required,max=50"`
	Description string          `json:"description,omitempty" validate:"max=500"`
	IsEditable  *bool           `json:"isEditable,omitempty"`
}

// UpdateMetadataRequest patches a site setting; nil fields are left unchanged
type UpdateMetadataRequest struct {
	MetaValue   *string          `json:"metaValue,omitempty" validate:"omitempty,max=10000"`
	MetaType    *models.MetaType `json:"metaType,omitempty" validate:"omitempty,oneof=string number boolean json"`
	Category    *string          `json:"category,omitempty" validate:"omitempty,max=50"`
	Description *string          `json:"description,omitempty" validate:"omitempty,max=500"`
	IsEditable  *bool            `json:"isEditable,omitempty"`
}

// MetadataValidationResponse reports a metadata payload that passed validation
// together with its decoded typed value
type MetadataValidationResponse struct {
	Valid bool        `json:"valid"`
	Value interface{} `json:"value"`
}
