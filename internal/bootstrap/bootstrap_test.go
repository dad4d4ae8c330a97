package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/config"
	"github.com/yigit/weddingsite/internal/pkg/logger"
	"github.com/yigit/weddingsite/internal/snapshot"
)

type testApp struct {
	router        *gin.Engine
	cfg           *config.Config
	scheduleCalls *atomic.Int32
	leaderLimit   *atomic.Value
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	var scheduleCalls atomic.Int32
	var leaderLimit atomic.Value
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/schedule":
			scheduleCalls.Add(1)
			_, _ = w.Write([]byte(`[{"id":2,"title":"Dinner","orderIndex":2},{"id":1,"title":"Ceremony","orderIndex":1}]`))
		case "/api/game/leaderboard":
			leaderLimit.Store(r.URL.Query().Get("limit"))
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"not found"}`))
		}
	}))
	t.Cleanup(upstream.Close)

	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	dir := t.TempDir()
	cfg.Server.Mode = "production"
	cfg.Server.StoragePath = filepath.Join(dir, "uploads")
	cfg.Snapshot.OutputPath = filepath.Join(dir, "public", "static-data.json")
	cfg.API.BaseURL = upstream.URL
	cfg.API.MaxRetries = 0

	lgr := logger.Get()
	deps, err := BuildDependencies(cfg, lgr)
	require.NoError(t, err)

	return &testApp{router: SetupRouter(cfg, deps, lgr), cfg: cfg, scheduleCalls: &scheduleCalls, leaderLimit: &leaderLimit}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func uploadRequest(t *testing.T, filename, contentType string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename="%s"`, filename))
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("uploaderName", "Cousin Ben"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestPing(t *testing.T) {
	app := newTestApp(t)
	w := app.do(httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUploadLifecycle(t *testing.T) {
	app := newTestApp(t)

	w := app.do(uploadRequest(t, "bouquet toss.png", "image/png", []byte("png-bytes")))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data dto.UploadResponse `json:"data"`
	}
	decode(t, w, &created)
	assert.Equal(t, "bouquet_toss.png", created.Data.FileName)
	assert.Equal(t, "Cousin Ben", created.Data.UploaderName)

	w = app.do(httptest.NewRequest(http.MethodGet, "/api/uploads?page=1&limit=5", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Data dto.UploadListResponse `json:"data"`
	}
	decode(t, w, &listed)
	require.Len(t, listed.Data.Uploads, 1)
	assert.Equal(t, int64(1), listed.Data.Pagination.TotalItems)
	assert.Equal(t, 5, listed.Data.Pagination.Limit)

	path := fmt.Sprintf("/api/uploads/%d", created.Data.ID)
	w = app.do(httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(httptest.NewRequest(http.MethodDelete, path, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = app.do(httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = app.do(httptest.NewRequest(http.MethodGet, "/api/uploads/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadRejectsInvalidFiles(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name        string
		filename    string
		contentType string
		wantMessage string
	}{
		{"extension mismatch", "payload.exe", "image/png", "extension"},
		{"mime type", "notes.png", "text/plain", "file type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := app.do(uploadRequest(t, tt.filename, tt.contentType, []byte("x")))
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.APIResponse
			decode(t, w, &resp)
			require.NotNil(t, resp.Error)
			assert.Contains(t, strings.ToLower(resp.Error.Message), tt.wantMessage)
			assert.Equal(t, "photo", resp.Error.Field)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
	w := app.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No file provided")
}

func TestMetadataValidate(t *testing.T) {
	app := newTestApp(t)
	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/metadata/validate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return app.do(req)
	}

	w := post(`{"metaKey":"max_guests","metaValue":"120","metaType":"number","category":"rsvp"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var ok struct {
		Data dto.MetadataValidationResponse `json:"data"`
	}
	decode(t, w, &ok)
	assert.True(t, ok.Data.Valid)
	assert.Equal(t, float64(120), ok.Data.Value)

	w = post(`{"metaKey":"max_guests","metaValue":"lots","metaType":"number","category":"rsvp"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	var bad dto.APIResponse
	decode(t, w, &bad)
	assert.Equal(t, "metaValue", bad.Error.Field)

	w = post(`{"metaValue":"x","metaType":"yaml"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, w, &bad)
	fields := make([]string, 0, len(bad.Error.Fields))
	for _, f := range bad.Error.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"metaKey", "metaType", "category"}, fields)
}

func TestStaticSnapshotFallbackAndReload(t *testing.T) {
	app := newTestApp(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/static-data.json", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	require.NoError(t, snapshot.Write(app.cfg.Snapshot.OutputPath, &models.Snapshot{
		WeddingDetails: json.RawMessage(`{"coupleNames":"Ada & Alan"}`),
		Photos:         json.RawMessage(`[]`),
		Schedule:       json.RawMessage(`[]`),
		Playlist:       json.RawMessage(`[]`),
		BuildTime:      time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}))

	w = app.do(httptest.NewRequest(http.MethodGet, "/static-data.json", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code, "fallback stays until reload")

	w = app.do(httptest.NewRequest(http.MethodPost, "/api/snapshot/reload", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = app.do(httptest.NewRequest(http.MethodGet, "/static-data.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada & Alan")
}

func TestScheduleIsCachedAndSorted(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 3; i++ {
		w := app.do(httptest.NewRequest(http.MethodGet, "/api/schedule", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []models.ScheduleItem `json:"data"`
		}
		decode(t, w, &resp)
		require.Len(t, resp.Data, 2)
		assert.Equal(t, "Ceremony", resp.Data[0].Title)
	}
	assert.EqualValues(t, 1, app.scheduleCalls.Load())
}

func TestLeaderboardLimitIsClamped(t *testing.T) {
	app := newTestApp(t)

	w := app.do(httptest.NewRequest(http.MethodGet, "/api/game/leaderboard?limit=5000", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "100", app.leaderLimit.Load())

	w = app.do(httptest.NewRequest(http.MethodGet, "/api/game/leaderboard?category=photos&limit=abc", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "10", app.leaderLimit.Load())
}

func TestUpstreamNotFoundIsMapped(t *testing.T) {
	app := newTestApp(t)
	w := app.do(httptest.NewRequest(http.MethodGet, "/api/playlist", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.do(httptest.NewRequest(http.MethodGet, "/api/schedule", nil))

	w := app.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body, err := io.ReadAll(w.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "weddingsite_query_cache_fetches_total")
}
