package services

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/querycache"
)

// ScheduleService reads and edits the wedding day programme
type ScheduleService struct {
	client APIClient
	cache  *querycache.Cache
}

// NewScheduleService creates a new ScheduleService
func NewScheduleService(client APIClient, cache *querycache.Cache) *ScheduleService {
	return &ScheduleService{client: client, cache: cache}
}

// Items returns the schedule ordered by OrderIndex
func (s *ScheduleService) Items(ctx context.Context) ([]models.ScheduleItem, error) {
	return querycache.Fetch(ctx, s.cache, scheduleKey, func(ctx context.Context) ([]models.ScheduleItem, error) {
		var items []models.ScheduleItem
		if err := s.client.Get(ctx, scheduleKey[0], &items); err != nil {
			return nil, err
		}
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].OrderIndex < items[j].OrderIndex
		})
		return items, nil
	})
}

// Create adds a schedule item
func (s *ScheduleService) Create(ctx context.Context, req dto.ScheduleItemRequest) (*models.ScheduleItem, error) {
	return s.save(ctx, "create schedule item", http.MethodPost, scheduleKey[0], req, "Schedule item added")
}

// Update replaces schedule item itemID
func (s *ScheduleService) Update(ctx context.Context, itemID int64, req dto.ScheduleItemRequest) (*models.ScheduleItem, error) {
	return s.save(ctx, "update schedule item", http.MethodPut, fmt.Sprintf("%s/%d", scheduleKey[0], itemID), req, "Schedule item updated")
}

func (s *ScheduleService) save(ctx context.Context, name, method, path string, req dto.ScheduleItemRequest, success string) (*models.ScheduleItem, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.ScheduleItem]{
		Name: name,
		Run: func(ctx context.Context) (*models.ScheduleItem, error) {
			if err := validateRequest(req); err != nil {
				return nil, err
			}
			var item models.ScheduleItem
			if err := s.client.Request(ctx, method, path, req, &item); err != nil {
				return nil, err
			}
			return &item, nil
		},
		Invalidates:    []querycache.Key{scheduleKey},
		SuccessMessage: success,
		ErrorTitle:     "Could not save schedule item",
	})
}

// Delete removes schedule item itemID
func (s *ScheduleService) Delete(ctx context.Context, itemID int64) error {
	_, err := querycache.Mutate(ctx, s.cache, querycache.Mutation[struct{}]{
		Name: "delete schedule item",
		Run: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.client.Request(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", scheduleKey[0], itemID), nil, nil)
		},
		Invalidates:    []querycache.Key{scheduleKey},
		SuccessMessage: "Schedule item removed",
		ErrorTitle:     "Could not remove schedule item",
	})
	return err
}
