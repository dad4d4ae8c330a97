package services

import (
	"context"

	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/httpclient"
	"github.com/yigit/weddingsite/internal/pkg/querycache"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// APIClient is the subset of *httpclient.Client the services call.
type APIClient interface {
	Request(ctx context.Context, method, path string, body, out interface{}) error
	Get(ctx context.Context, path string, out interface{}) error
	Query(ctx context.Context, path string, on401 httpclient.UnauthorizedBehavior, out interface{}) (bool, error)
}

// Services bundles every resource service sharing one cache.
type Services struct {
	Game        *GameService
	Metadata    *MetadataService
	Enhancement *EnhancementService
	Playlist    *PlaylistService
	Schedule    *ScheduleService
}

// NewServices wires all services to client and cache.
func NewServices(client APIClient, cache *querycache.Cache) *Services {
	return &Services{
		Game:        NewGameService(client, cache),
		Metadata:    NewMetadataService(client, cache),
		Enhancement: NewEnhancementService(client, cache),
		Playlist:    NewPlaylistService(client, cache),
		Schedule:    NewScheduleService(client, cache),
	}
}

// validateRequest returns an ErrValidationFailed error carrying every field error.
func validateRequest(req interface{}) error {
	fieldErrs := validation.ValidateStruct(req)
	if len(fieldErrs) == 0 {
		return nil
	}
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, fieldErrs[0].Message).
		WithDetails(map[string]interface{}{"fields": fieldErrs})
}
