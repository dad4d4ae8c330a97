package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/weddingsite/internal/app/models"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/app/services"
	"github.com/yigit/weddingsite/internal/middleware"
	"github.com/yigit/weddingsite/internal/pkg/helpers"
)

// ContentController serves API reads through the shared query cache so
// repeated guest requests hit the upstream API once per invalidation.
type ContentController struct {
	services *services.Services
}

// NewContentController creates a new ContentController
func NewContentController(svc *services.Services) *ContentController {
	return &ContentController{services: svc}
}

// Schedule returns the wedding day programme
// @Summary Wedding schedule
// @Tags content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.ScheduleItem}
// @Router /api/schedule [get]
func (cc *ContentController) Schedule(c *gin.Context) {
	items, err := cc.services.Schedule.Items(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDataResponse(items))
}

// Playlist returns the song requests
// @Summary Playlist
// @Tags content
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.PlaylistSong}
// @Router /api/playlist [get]
func (cc *ContentController) Playlist(c *gin.Context) {
	songs, err := cc.services.Playlist.Songs(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDataResponse(songs))
}

// ToggleSongLike likes or unlikes a song
// @Summary Toggle song like
// @Tags content
// @Produce json
// @Param id path int true "Song ID"
// @Success 200 {object} dto.APIResponse{data=models.SongLikeResult}
// @Router /api/playlist/{id}/like [post]
func (cc *ContentController) ToggleSongLike(c *gin.Context) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	result, err := cc.services.Playlist.ToggleLike(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDataResponse(result))
}

// Leaderboard returns a ranking
// @Summary Leaderboard
// @Tags content
// @Produce json
// @Param category query string false "overall, photos, social or daily"
// @Param limit query int false "Number of entries (default: 10, max: 100)"
// @Success 200 {object} dto.APIResponse{data=[]models.LeaderboardEntry}
// @Router /api/game/leaderboard [get]
func (cc *ContentController) Leaderboard(c *gin.Context) {
	category := models.LeaderboardCategory(c.Query("category"))
	limit := helpers.ParseLimitParam(c, services.DefaultLeaderboardLimit)

	entries, err := cc.services.Game.Leaderboard(c.Request.Context(), category, limit)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewDataResponse(entries))
}
