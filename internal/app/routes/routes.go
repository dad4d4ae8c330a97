package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yigit/weddingsite/internal/app/controllers"
	"github.com/yigit/weddingsite/internal/app/models/dto"
	"github.com/yigit/weddingsite/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	uploadController *controllers.UploadController,
	metadataController *controllers.MetadataController,
	snapshotController *controllers.SnapshotController,
	contentController *controllers.ContentController,
) {
	api := router.Group("/api")

	// Photo intake
	uploads := api.Group("/uploads")
	{
		uploads.POST("", uploadController.Upload)
		uploads.GET("", uploadController.List)
		uploads.GET("/:id", uploadController.Get)
		uploads.DELETE("/:id", uploadController.Delete)
	}

	api.POST("/metadata/validate",
		middleware.ValidateRequest[dto.CreateMetadataRequest](),
		metadataController.Validate,
	)

	// Cached upstream reads
	api.GET("/schedule", contentController.Schedule)
	api.GET("/playlist", contentController.Playlist)
	api.POST("/playlist/:id/like", contentController.ToggleSongLike)
	api.GET("/game/leaderboard", contentController.Leaderboard)

	// Static snapshot
	router.GET("/static-data.json", snapshotController.Serve)
	api.POST("/snapshot/reload", snapshotController.Reload)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
