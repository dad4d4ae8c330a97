package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/querycache"
)

// legacyNotAnalyzedMessage is what older API versions answer, without a code,
// for a photo that has not been analyzed yet.
const legacyNotAnalyzedMessage = "enhancement analysis not found"

// EnhancementService reads and triggers AI photo analyses
type EnhancementService struct {
	client APIClient
	cache  *querycache.Cache
}

// NewEnhancementService creates a new EnhancementService
func NewEnhancementService(client APIClient, cache *querycache.Cache) *EnhancementService {
	return &EnhancementService{client: client, cache: cache}
}

func enhancementPath(photoID int64) string {
	return fmt.Sprintf("/api/photos/%d/enhancement", photoID)
}

// Get returns the analysis of photoID. A photo that has not been analyzed
// yields apperrors.ErrEnhancementNotFound, which is never retried.
func (s *EnhancementService) Get(ctx context.Context, photoID int64) (*models.PhotoEnhancementAnalysis, error) {
	base := s.cache.DefaultRetry()
	retry := func(failureCount int, err error) bool {
		if errors.Is(err, apperrors.ErrEnhancementNotFound) {
			return false
		}
		return base(failureCount, err)
	}

	return querycache.Fetch(ctx, s.cache, enhancementKey(photoID), func(ctx context.Context) (*models.PhotoEnhancementAnalysis, error) {
		var analysis models.PhotoEnhancementAnalysis
		if err := s.client.Get(ctx, enhancementPath(photoID), &analysis); err != nil {
			if isNotAnalyzed(err) {
				return nil, apperrors.NewCustomError(apperrors.ErrEnhancementNotFound,
					fmt.Sprintf("photo %d has not been analyzed", photoID))
			}
			return nil, err
		}
		return &analysis, nil
	}, querycache.WithRetry(retry))
}

// isNotAnalyzed recognises the "no analysis yet" answer by status code and
// falls back to the legacy message for uncoded errors.
func isNotAnalyzed(err error) bool {
	if errors.Is(err, apperrors.ErrEnhancementNotFound) || apperrors.StatusOf(err) == http.StatusNotFound {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), legacyNotAnalyzedMessage)
}

// Analyze asks the API to analyze photoID
func (s *EnhancementService) Analyze(ctx context.Context, photoID int64) (*models.PhotoEnhancementAnalysis, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.PhotoEnhancementAnalysis]{
		Name: "analyze photo",
		Run: func(ctx context.Context) (*models.PhotoEnhancementAnalysis, error) {
			var analysis models.PhotoEnhancementAnalysis
			path := fmt.Sprintf("/api/photos/%d/analyze", photoID)
			if err := s.client.Request(ctx, http.MethodPost, path, nil, &analysis); err != nil {
				return nil, err
			}
			return &analysis, nil
		},
		Invalidates:    []querycache.Key{enhancementKey(photoID)},
		SuccessMessage: "Photo analysis complete",
		ErrorTitle:     "Photo analysis failed",
	})
}

// SetVisibility shows or hides the analysis of photoID to other guests
func (s *EnhancementService) SetVisibility(ctx context.Context, photoID int64, visible bool) (*models.PhotoEnhancementAnalysis, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.PhotoEnhancementAnalysis]{
		Name: "set enhancement visibility",
		Run: func(ctx context.Context) (*models.PhotoEnhancementAnalysis, error) {
			var analysis models.PhotoEnhancementAnalysis
			body := map[string]bool{"isVisible": visible}
			if err := s.client.Request(ctx, http.MethodPatch, enhancementPath(photoID)+"/visibility", body, &analysis); err != nil {
				return nil, err
			}
			return &analysis, nil
		},
		Invalidates: []querycache.Key{enhancementKey(photoID)},
		ErrorTitle:  "Could not update visibility",
	})
}
