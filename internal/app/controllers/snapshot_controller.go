package controllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/pkg/apperrors"
	"github.com/yigit/weddingsite/internal/pkg/boundary"
	"github.com/yigit/weddingsite/internal/snapshot"
)

// SnapshotController serves the static snapshot file. A missing or corrupt
// file puts the controller into its fallback state until it is reloaded.
type SnapshotController struct {
	path string

	mu     sync.Mutex
	loaded *models.Snapshot
	view   *boundary.Boundary[*models.Snapshot]
}

// NewSnapshotController creates a SnapshotController reading path
func NewSnapshotController(path string) *SnapshotController {
	sc := &SnapshotController{path: path}
	sc.view = boundary.New("static-snapshot", sc.load,
		func(error) *models.Snapshot { return nil },
		boundary.WithReload[*models.Snapshot](sc.forget),
	)
	return sc
}

func (sc *SnapshotController) load() (*models.Snapshot, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.loaded != nil {
		return sc.loaded, nil
	}
	snap, err := snapshot.Load(sc.path)
	if err != nil {
		return nil, err
	}
	sc.loaded = snap
	return snap, nil
}

func (sc *SnapshotController) forget() {
	sc.mu.Lock()
	sc.loaded = nil
	sc.mu.Unlock()
}

func unavailable(c *gin.Context) {
	detail := dto.NewErrorDetail(apperrors.CodeInternal, "Static snapshot is unavailable")
	c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(detail))
}

// Serve returns the snapshot document
// @Summary Static snapshot
// @Tags snapshot
// @Produce json
// @Success 200 {object} models.Snapshot
// @Failure 503 {object} dto.APIResponse "Snapshot unavailable"
// @Router /static-data.json [get]
func (sc *SnapshotController) Serve(c *gin.Context) {
	snap, ok := sc.view.Render()
	if !ok {
		unavailable(c)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// Reload drops the loaded snapshot and reads the file again
// @Summary Reload static snapshot
// @Tags snapshot
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Failure 503 {object} dto.APIResponse "Snapshot unavailable"
// @Router /api/snapshot/reload [post]
func (sc *SnapshotController) Reload(c *gin.Context) {
	if _, ok := sc.view.Reload(); !ok {
		unavailable(c)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Message: "Snapshot reloaded"})
}
