package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/httpclient"
	"github.com/yigit/weddingsite/internal/pkg/querycache"
	"github.com/yigit/weddingsite/internal/pkg/validation"
)

// DefaultLeaderboardLimit is used when a leaderboard read passes limit <= 0.
// Larger limits are capped at validation.MaxLimit.
const DefaultLeaderboardLimit = 10

// DefaultActivitiesLimit is used when an activities read passes limit <= 0
const DefaultActivitiesLimit = 20

// GameService reads and mutates the guest gamification resources
type GameService struct {
	client APIClient
	cache  *querycache.Cache
}

// NewGameService creates a new GameService
func NewGameService(client APIClient, cache *querycache.Cache) *GameService {
	return &GameService{client: client, cache: cache}
}

// Participant returns the current guest's profile, or nil when the guest is
// not signed in (401) or has not joined the game yet (404).
func (s *GameService) Participant(ctx context.Context) (*models.Participant, error) {
	return querycache.Fetch(ctx, s.cache, participantKey, func(ctx context.Context) (*models.Participant, error) {
		var participant models.Participant
		found, err := s.client.Query(ctx, participantKey[0], httpclient.UnauthorizedReturnNull, &participant)
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, nil
		}
		if err != nil || !found {
			return nil, err
		}
		return &participant, nil
	})
}

// CreateParticipant registers the current guest
func (s *GameService) CreateParticipant(ctx context.Context, req dto.CreateParticipantRequest) (*models.Participant, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.Participant]{
		Name: "create participant",
		Run: func(ctx context.Context) (*models.Participant, error) {
			if err := validateRequest(req); err != nil {
				return nil, err
			}
			var participant models.Participant
			if err := s.client.Request(ctx, http.MethodPost, participantKey[0], req, &participant); err != nil {
				return nil, err
			}
			return &participant, nil
		},
		Patch: func(c *querycache.Cache, participant *models.Participant) {
			c.SetData(participantKey, participant)
		},
		Invalidates:    []querycache.Key{leaderboardKey},
		SuccessMessage: "Welcome to the game!",
		ErrorTitle:     "Could not join the game",
	})
}

// Challenges returns the challenge catalog, optionally filtered by the active flag
func (s *GameService) Challenges(ctx context.Context, activeOnly *bool) ([]models.Challenge, error) {
	path := challengesKey[0]
	if activeOnly != nil {
		path += "?" + url.Values{"active": {strconv.FormatBool(*activeOnly)}}.Encode()
	}

	return querycache.Fetch(ctx, s.cache, challengesFilterKey(activeOnly), func(ctx context.Context) ([]models.Challenge, error) {
		var challenges []models.Challenge
		if err := s.client.Get(ctx, path, &challenges); err != nil {
			return nil, err
		}
		return challenges, nil
	})
}

// Leaderboard returns the ranking for category
func (s *GameService) Leaderboard(ctx context.Context, category models.LeaderboardCategory, limit int) ([]models.LeaderboardEntry, error) {
	if category == "" {
		category = models.LeaderboardOverall
	}
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	limit = min(limit, validation.MaxLimit)
	query := url.Values{"category": {string(category)}, "limit": {strconv.Itoa(limit)}}

	return querycache.Fetch(ctx, s.cache, leaderboardFilterKey(category, limit), func(ctx context.Context) ([]models.LeaderboardEntry, error) {
		var entries []models.LeaderboardEntry
		if err := s.client.Get(ctx, leaderboardKey[0]+"?"+query.Encode(), &entries); err != nil {
			return nil, err
		}
		return entries, nil
	})
}

// Activities returns the activity log, either everyone's or only the current guest's
func (s *GameService) Activities(ctx context.Context, userOnly bool, limit int) ([]models.Activity, error) {
	if limit <= 0 {
		limit = DefaultActivitiesLimit
	}
	query := url.Values{"user_only": {strconv.FormatBool(userOnly)}, "limit": {strconv.Itoa(limit)}}

	return querycache.Fetch(ctx, s.cache, activitiesFilterKey(userOnly, limit), func(ctx context.Context) ([]models.Activity, error) {
		var activities []models.Activity
		if err := s.client.Get(ctx, activitiesKey[0]+"?"+query.Encode(), &activities); err != nil {
			return nil, err
		}
		return activities, nil
	})
}

// Achievements returns the achievements the current guest has earned
func (s *GameService) Achievements(ctx context.Context) ([]models.EarnedAchievement, error) {
	return querycache.Fetch(ctx, s.cache, achievementsKey, func(ctx context.Context) ([]models.EarnedAchievement, error) {
		var achievements []models.EarnedAchievement
		if err := s.client.Get(ctx, achievementsKey[0], &achievements); err != nil {
			return nil, err
		}
		return achievements, nil
	})
}

// RecordActivity appends an activity and refreshes everything derived from points
func (s *GameService) RecordActivity(ctx context.Context, req dto.RecordActivityRequest) (*models.Activity, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.Activity]{
		Name: "record activity",
		Run: func(ctx context.Context) (*models.Activity, error) {
			if err := validateRequest(req); err != nil {
				return nil, err
			}
			var activity models.Activity
			if err := s.client.Request(ctx, http.MethodPost, activitiesKey[0], req, &activity); err != nil {
				return nil, err
			}
			return &activity, nil
		},
		Invalidates: []querycache.Key{participantKey, activitiesKey, leaderboardKey, achievementsKey},
		ErrorTitle:  "Could not record activity",
	})
}

// CompleteChallenge completes challengeID for the current guest
func (s *GameService) CompleteChallenge(ctx context.Context, challengeID int64, req dto.CompleteChallengeRequest) (*models.ChallengeCompletion, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.ChallengeCompletion]{
		Name: "complete challenge",
		Run: func(ctx context.Context) (*models.ChallengeCompletion, error) {
			if err := validateRequest(req); err != nil {
				return nil, err
			}
			var completion models.ChallengeCompletion
			path := fmt.Sprintf("%s/%d/complete", challengesKey[0], challengeID)
			if err := s.client.Request(ctx, http.MethodPost, path, req, &completion); err != nil {
				return nil, err
			}
			return &completion, nil
		},
		Invalidates:    []querycache.Key{participantKey, activitiesKey, leaderboardKey, challengesKey, achievementsKey},
		SuccessMessage: "Challenge completed!",
		ErrorTitle:     "Could not complete challenge",
	})
}

// JoinEvent records that the current guest joined eventID
func (s *GameService) JoinEvent(ctx context.Context, eventID int64) (*models.Activity, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.Activity]{
		Name: "join event",
		Run: func(ctx context.Context) (*models.Activity, error) {
			var activity models.Activity
			path := fmt.Sprintf("/api/game/events/%d/join", eventID)
			if err := s.client.Request(ctx, http.MethodPost, path, nil, &activity); err != nil {
				return nil, err
			}
			return &activity, nil
		},
		Invalidates:    []querycache.Key{participantKey, activitiesKey, leaderboardKey},
		SuccessMessage: "You joined the event",
		ErrorTitle:     "Could not join event",
	})
}
