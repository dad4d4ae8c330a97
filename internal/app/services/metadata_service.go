package services

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/querycache"
)

// MetadataService reads and edits key-value site settings
type MetadataService struct {
	client APIClient
	cache  *querycache.Cache
}

// NewMetadataService creates a new MetadataService
func NewMetadataService(client APIClient, cache *querycache.Cache) *MetadataService {
	return &MetadataService{client: client, cache: cache}
}

func metadataPath(metaKey string) string {
	return metadataKey[0] + "/" + url.PathEscape(metaKey)
}

// List returns every setting
func (s *MetadataService) List(ctx context.Context) ([]models.Metadata, error) {
	return querycache.Fetch(ctx, s.cache, metadataKey, func(ctx context.Context) ([]models.Metadata, error) {
		var items []models.Metadata
		if err := s.client.Get(ctx, metadataKey[0], &items); err != nil {
			return nil, err
		}
		return items, nil
	})
}

// Get returns the setting stored under metaKey
func (s *MetadataService) Get(ctx context.Context, metaKey string) (*models.Metadata, error) {
	return querycache.Fetch(ctx, s.cache, metadataItemKey(metaKey), func(ctx context.Context) (*models.Metadata, error) {
		var item models.Metadata
		if err := s.client.Get(ctx, metadataPath(metaKey), &item); err != nil {
			return nil, err
		}
		return &item, nil
	})
}

// Create adds a setting
func (s *MetadataService) Create(ctx context.Context, req dto.CreateMetadataRequest) (*models.Metadata, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.Metadata]{
		Name: "create metadata",
		Run: func(ctx context.Context) (*models.Metadata, error) {
			if err := validateRequest(req); err != nil {
				return nil, err
			}
			var item models.Metadata
			if err := s.client.Request(ctx, http.MethodPost, metadataKey[0], req, &item); err != nil {
				return nil, err
			}
			return &item, nil
		},
		Invalidates:    []querycache.Key{metadataKey},
		SuccessMessage: "Setting created",
		ErrorTitle:     "Could not create setting",
	})
}

// Update patches the setting stored under metaKey
func (s *MetadataService) Update(ctx context.Context, metaKey string, req dto.UpdateMetadataRequest) (*models.Metadata, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.Metadata]{
		Name: "update metadata",
		Run: func(ctx context.Context) (*models.Metadata, error) {
			if err := validateRequest(req); err != nil {
				return nil, err
			}
			var item models.Metadata
			if err := s.client.Request(ctx, http.MethodPatch, metadataPath(metaKey), req, &item); err != nil {
				return nil, err
			}
			return &item, nil
		},
		Invalidates:    []querycache.Key{metadataKey},
		SuccessMessage: "Setting updated",
		ErrorTitle:     "Could not update setting",
	})
}

// Delete removes the setting stored under metaKey
func (s *MetadataService) Delete(ctx context.Context, metaKey string) error {
	_, err := querycache.Mutate(ctx, s.cache, querycache.Mutation[struct{}]{
		Name: "delete metadata",
		Run: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.client.Request(ctx, http.MethodDelete, metadataPath(metaKey), nil, nil)
		},
		Invalidates:    []querycache.Key{metadataKey},
		SuccessMessage: "Setting deleted",
		ErrorTitle:     "Could not delete setting",
	})
	return err
}
