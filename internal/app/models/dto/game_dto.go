package dto

import (
	"encoding/json"

	"github.com/yigit/weddingsite/internal/app/models"
)

// CreateParticipantRequest registers the current guest in the game
type CreateParticipantRequest struct {
	DisplayName string `json:"displayName" validate:"required,min=1,max=50"`
}

// RecordActivityRequest appends an activity for the current guest
type RecordActivityRequest struct {
	ActivityType models.ActivityType `json:"activityType" validate:"required"`
	ReferenceID  *int64              `json:"referenceId,omitempty"`
	Metadata     json.RawMessage     `json:"metadata,omitempty"`
}

// CompleteChallengeRequest carries optional proof for a challenge completion
type CompleteChallengeRequest struct {
	PhotoID *int64 `json:"photoId,omitempty"`
	Notes   string `json:"notes,omitempty" validate:"max=500"`
}
