package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/httpclient"
	"github.com/yigit/weddingsite/internal/pkg/notify"
	"github.com/yigit/weddingsite/internal/pkg/querycache"
)

// fakeAPI serves canned responses per "METHOD /path" and counts requests.
type fakeAPI struct {
	mu       sync.Mutex
	calls    map[string]int
	handlers map[string]http.HandlerFunc
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{calls: map[string]int{}, handlers: map[string]http.HandlerFunc{}}
}

func (f *fakeAPI) handle(route string, h http.HandlerFunc) {
	f.handlers[route] = h
}

func (f *fakeAPI) json(route string, status int, body interface{}) {
	f.handle(route, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	})
}

func (f *fakeAPI) count(route string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[route]
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	route := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.calls[route]++
	h, ok := f.handlers[route]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no route"}`))
		return
	}
	h(w, r)
}

type fixture struct {
	api      *fakeAPI
	cache    *querycache.Cache
	toasts   *notify.Queue
	services *Services
}

func newFixture(t *testing.T, maxRetries int) *fixture {
	t.Helper()
	api := newFakeAPI()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	toasts := notify.NewQueue(nil)
	cache := querycache.New(querycache.Options{MaxRetries: maxRetries, Notifier: toasts})
	client := httpclient.New(httpclient.Config{BaseURL: srv.URL})

	return &fixture{api: api, cache: cache, toasts: toasts, services: NewServices(client, cache)}
}

func TestAddSongInvalidatesPlaylist(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.api.json("GET /api/playlist", http.StatusOK, []models.PlaylistSong{{ID: 1, Title: "At Last", Artist: "Etta James"}})
	f.api.json("POST /api/playlist", http.StatusCreated, models.PlaylistSong{ID: 2, Title: "Moon River", Artist: "Audrey Hepburn"})

	_, err := f.services.Playlist.Songs(ctx)
	require.NoError(t, err)
	_, err = f.services.Playlist.Songs(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, f.api.count("GET /api/playlist"))

	_, err = f.services.Playlist.AddSong(ctx, dto.AddSongRequest{Title: "Moon River", Artist: "Audrey Hepburn"})
	require.NoError(t, err)

	_, err = f.services.Playlist.Songs(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, f.api.count("GET /api/playlist"))

	toasts := f.toasts.Drain()
	require.Len(t, toasts, 1)
	require.Equal(t, notify.VariantSuccess, toasts[0].Variant)
}

func TestToggleLikePatchesWithoutRefetch(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.api.json("GET /api/playlist", http.StatusOK, []models.PlaylistSong{
		{ID: 1, Title: "At Last", Likes: 3},
		{ID: 2, Title: "Moon River", Likes: 0},
	})
	f.api.json("POST /api/playlist/2/like", http.StatusOK, models.SongLikeResult{Liked: true, Likes: 1})

	before, err := f.services.Playlist.Songs(ctx)
	require.NoError(t, err)

	result, err := f.services.Playlist.ToggleLike(ctx, 2)
	require.NoError(t, err)
	require.True(t, result.Liked)

	after, err := f.services.Playlist.Songs(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, f.api.count("GET /api/playlist"))
	require.Equal(t, 1, after[1].Likes)
	require.Equal(t, 3, after[0].Likes)
	require.Equal(t, 0, before[1].Likes, "earlier readers keep their copy")
}

func TestAddSongValidationFailsBeforeRequest(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.services.Playlist.AddSong(context.Background(), dto.AddSongRequest{Artist: "Nobody"})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	require.Zero(t, f.api.count("POST /api/playlist"))

	toasts := f.toasts.Drain()
	require.Len(t, toasts, 1)
	require.Equal(t, notify.VariantDestructive, toasts[0].Variant)
	require.Equal(t, "title is required", toasts[0].Description)
}

func TestEnhancementNotFoundIsNotRetried(t *testing.T) {
	f := newFixture(t, 3)
	f.api.json("GET /api/photos/9/enhancement", http.StatusNotFound, map[string]string{"message": "Enhancement analysis not found"})

	_, err := f.services.Enhancement.Get(context.Background(), 9)
	require.ErrorIs(t, err, apperrors.ErrEnhancementNotFound)
	require.Equal(t, 1, f.api.count("GET /api/photos/9/enhancement"))
}

func TestEnhancementServerErrorIsRetried(t *testing.T) {
	f := newFixture(t, 2)
	f.api.json("GET /api/photos/9/enhancement", http.StatusServiceUnavailable, map[string]string{"message": "warming up"})

	_, err := f.services.Enhancement.Get(context.Background(), 9)
	require.Error(t, err)
	require.Equal(t, 3, f.api.count("GET /api/photos/9/enhancement"))
}

func TestAnalyzeInvalidatesEnhancement(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.api.json("GET /api/photos/4/enhancement", http.StatusOK, models.PhotoEnhancementAnalysis{ID: 1, PhotoID: 4, OverallScore: 7.5})
	f.api.json("POST /api/photos/4/analyze", http.StatusOK, models.PhotoEnhancementAnalysis{ID: 1, PhotoID: 4, OverallScore: 8})

	_, err := f.services.Enhancement.Get(ctx, 4)
	require.NoError(t, err)
	_, err = f.services.Enhancement.Analyze(ctx, 4)
	require.NoError(t, err)
	_, err = f.services.Enhancement.Get(ctx, 4)
	require.NoError(t, err)

	require.Equal(t, 2, f.api.count("GET /api/photos/4/enhancement"))
}

func TestAnalyzeQuotaErrorShowsFriendlyToast(t *testing.T) {
	f := newFixture(t, 0)
	f.api.json("POST /api/photos/4/analyze", http.StatusTooManyRequests, map[string]string{"message": "quota", "code": "QUOTA_EXCEEDED"})

	_, err := f.services.Enhancement.Analyze(context.Background(), 4)
	require.ErrorIs(t, err, apperrors.ErrQuotaExceeded)
	require.Equal(t, 1, f.api.count("POST /api/photos/4/analyze"))

	toasts := f.toasts.Drain()
	require.Len(t, toasts, 1)
	require.Equal(t, "Analysis limit reached", toasts[0].Title)
}

func TestMetadataUpdateInvalidatesListAndItem(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.api.json("GET /api/metadata", http.StatusOK, []models.Metadata{{MetaKey: "site_title", MetaValue: "Ada & Alan"}})
	f.api.json("GET /api/metadata/site_title", http.StatusOK, models.Metadata{MetaKey: "site_title", MetaValue: "Ada & Alan"})
	f.api.json("PATCH /api/metadata/site_title", http.StatusOK, models.Metadata{MetaKey: "site_title", MetaValue: "A & A"})

	_, err := f.services.Metadata.List(ctx)
	require.NoError(t, err)
	_, err = f.services.Metadata.Get(ctx, "site_title")
	require.NoError(t, err)

	value := "A & A"
	_, err = f.services.Metadata.Update(ctx, "site_title", dto.UpdateMetadataRequest{MetaValue: &value})
	require.NoError(t, err)

	_, err = f.services.Metadata.List(ctx)
	require.NoError(t, err)
	_, err = f.services.Metadata.Get(ctx, "site_title")
	require.NoError(t, err)

	require.Equal(t, 2, f.api.count("GET /api/metadata"))
	require.Equal(t, 2, f.api.count("GET /api/metadata/site_title"))
}

func TestMetadataCreateRejectsUnknownType(t *testing.T) {
	f := newFixture(t, 0)

	_, err := f.services.Metadata.Create(context.Background(), dto.CreateMetadataRequest{
		MetaKey:  "colors",
		MetaType: "yaml",
		Category: "theme",
	})
	require.ErrorIs(t, err, apperrors.ErrValidationFailed)
	require.Zero(t, f.api.count("POST /api/metadata"))
}

func TestParticipantUnauthorizedIsNil(t *testing.T) {
	f := newFixture(t, 0)
	f.api.json("GET /api/game/participant", http.StatusUnauthorized, map[string]string{"message": "Not signed in"})

	participant, err := f.services.Game.Participant(context.Background())
	require.NoError(t, err)
	require.Nil(t, participant)
}

func TestParticipantEmptyBodyIsNil(t *testing.T) {
	f := newFixture(t, 0)
	f.api.handle("GET /api/game/participant", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	participant, err := f.services.Game.Participant(context.Background())
	require.NoError(t, err)
	require.Nil(t, participant)
}

func TestLeaderboardLimitIsCapped(t *testing.T) {
	f := newFixture(t, 0)
	var gotLimit string
	f.api.handle("GET /api/game/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		gotLimit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := f.services.Game.Leaderboard(context.Background(), "", 5000)
	require.NoError(t, err)
	require.Equal(t, "100", gotLimit)
}

func TestCompleteChallengeInvalidatesGameState(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.api.json("GET /api/game/participant", http.StatusOK, models.Participant{ID: 1, DisplayName: "Ada", TotalPoints: 10})
	f.api.json("GET /api/game/leaderboard", http.StatusOK, []models.LeaderboardEntry{{ParticipantID: 1, Rank: 1, Points: 10}})
	f.api.json("GET /api/game/challenges", http.StatusOK, []models.Challenge{{ID: 3, Title: "Dance with a stranger", IsActive: true}})
	f.api.json("GET /api/schedule", http.StatusOK, []models.ScheduleItem{})
	f.api.json("POST /api/game/challenges/3/complete", http.StatusOK, models.ChallengeCompletion{PointsEarned: 25})

	active := true
	read := func() {
		_, err := f.services.Game.Participant(ctx)
		require.NoError(t, err)
		_, err = f.services.Game.Leaderboard(ctx, models.LeaderboardOverall, 5)
		require.NoError(t, err)
		_, err = f.services.Game.Challenges(ctx, &active)
		require.NoError(t, err)
		_, err = f.services.Schedule.Items(ctx)
		require.NoError(t, err)
	}

	read()
	completion, err := f.services.Game.CompleteChallenge(ctx, 3, dto.CompleteChallengeRequest{})
	require.NoError(t, err)
	require.Equal(t, 25, completion.PointsEarned)
	read()

	require.Equal(t, 2, f.api.count("GET /api/game/participant"))
	require.Equal(t, 2, f.api.count("GET /api/game/leaderboard"))
	require.Equal(t, 2, f.api.count("GET /api/game/challenges"))
	require.Equal(t, 1, f.api.count("GET /api/schedule"))
}

func TestChallengesSendsActiveFilter(t *testing.T) {
	f := newFixture(t, 0)
	f.api.handle("GET /api/game/challenges", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("active") != "true" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode([]models.Challenge{{ID: 1, IsActive: true}})
	})

	active := true
	challenges, err := f.services.Game.Challenges(context.Background(), &active)
	require.NoError(t, err)
	require.Len(t, challenges, 1)
}

func TestScheduleItemsSortedByOrderIndex(t *testing.T) {
	f := newFixture(t, 0)
	f.api.json("GET /api/schedule", http.StatusOK, []models.ScheduleItem{
		{ID: 1, Title: "Dinner", OrderIndex: 3},
		{ID: 2, Title: "Ceremony", OrderIndex: 1},
		{ID: 3, Title: "First dance", OrderIndex: 2},
	})

	items, err := f.services.Schedule.Items(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Ceremony", "First dance", "Dinner"}, []string{items[0].Title, items[1].Title, items[2].Title})
}

func TestScheduleDeleteInvalidates(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	f.api.json("GET /api/schedule", http.StatusOK, []models.ScheduleItem{{ID: 1}})
	f.api.handle("DELETE /api/schedule/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	_, err := f.services.Schedule.Items(ctx)
	require.NoError(t, err)
	require.NoError(t, f.services.Schedule.Delete(ctx, 1))
	_, err = f.services.Schedule.Items(ctx)
	require.NoError(t, err)

	require.Equal(t, 2, f.api.count("GET /api/schedule"))
}
