package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/querycache"
)

// PlaylistService reads and edits the song-request playlist
type PlaylistService struct {
	client APIClient
	cache  *querycache.Cache
}

// NewPlaylistService creates a new PlaylistService
func NewPlaylistService(client APIClient, cache *querycache.Cache) *PlaylistService {
	return &PlaylistService{client: client, cache: cache}
}

// Songs returns the playlist
func (s *PlaylistService) Songs(ctx context.Context) ([]models.PlaylistSong, error) {
	return querycache.Fetch(ctx, s.cache, playlistKey, func(ctx context.Context) ([]models.PlaylistSong, error) {
		var songs []models.PlaylistSong
		if err := s.client.Get(ctx, playlistKey[0], &songs); err != nil {
			return nil, err
		}
		return songs, nil
	})
}

// AddSong requests a song
func (s *PlaylistService) AddSong(ctx context.Context, req dto.AddSongRequest) (*models.PlaylistSong, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.PlaylistSong]{
		Name: "add song",
		Run: func(ctx context.Context) (*models.PlaylistSong, error) {
			if err := validateRequest(req); err != nil {
				return nil, err
			}
			var song models.PlaylistSong
			if err := s.client.Request(ctx, http.MethodPost, playlistKey[0], req, &song); err != nil {
				return nil, err
			}
			return &song, nil
		},
		Invalidates:    []querycache.Key{playlistKey},
		SuccessMessage: "Song added to the playlist",
		ErrorTitle:     "Could not add song",
	})
}

// DeleteSong removes songID from the playlist
func (s *PlaylistService) DeleteSong(ctx context.Context, songID int64) error {
	_, err := querycache.Mutate(ctx, s.cache, querycache.Mutation[struct{}]{
		Name: "delete song",
		Run: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.client.Request(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", playlistKey[0], songID), nil, nil)
		},
		Invalidates:    []querycache.Key{playlistKey},
		SuccessMessage: "Song removed",
		ErrorTitle:     "Could not remove song",
	})
	return err
}

// ToggleLike likes or unlikes songID. The cached playlist is patched with the
// returned like count instead of being refetched.
func (s *PlaylistService) ToggleLike(ctx context.Context, songID int64) (*models.SongLikeResult, error) {
	return querycache.Mutate(ctx, s.cache, querycache.Mutation[*models.SongLikeResult]{
		Name: "toggle song like",
		Run: func(ctx context.Context) (*models.SongLikeResult, error) {
			var result models.SongLikeResult
			path := fmt.Sprintf("%s/%d/like", playlistKey[0], songID)
			if err := s.client.Request(ctx, http.MethodPost, path, nil, &result); err != nil {
				return nil, err
			}
			return &result, nil
		},
		Patch: func(c *querycache.Cache, result *models.SongLikeResult) {
			querycache.UpdateData(c, playlistKey, func(songs []models.PlaylistSong) []models.PlaylistSong {
				return withLikes(songs, songID, result.Likes)
			})
		},
		ErrorTitle: "Could not update like",
	})
}

// withLikes returns a copy of songs with songID's like count replaced, leaving
// the slice other readers hold untouched.
func withLikes(songs []models.PlaylistSong, songID int64, likes int) []models.PlaylistSong {
	patched := make([]models.PlaylistSong, len(songs))
	copy(patched, songs)
	for i := range patched {
		if patched[i].ID == songID {
			patched[i].Likes = likes
		}
	}
	return patched
}
