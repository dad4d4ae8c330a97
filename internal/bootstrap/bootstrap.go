package bootstrap

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/weddingsite/internal/app/controllers"
	appRoutes "github.com/yigit/weddingsite/internal/app/routes"
	appServices "github.com/yigit/weddingsite/internal/app/services"
	"github.com/yigit/weddingsite/internal/config"
	appMiddleware "github.com/yigit/weddingsite/internal/middleware"
	"github.com/yigit/weddingsite/internal/pkg/filestorage"
	"github.com/yigit/weddingsite/internal/pkg/httpclient"
	"github.com/yigit/weddingsite/internal/pkg/logger"
	"github.com/yigit/weddingsite/internal/pkg/notify"
	"github.com/yigit/weddingsite/internal/pkg/querycache"
	"github.com/yigit/weddingsite/internal/pkg/websocket"
)

// DefaultConfigPath is where the config file is looked up when none is given
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	APIClient          *httpclient.Client
	Cache              *querycache.Cache
	Services           *appServices.Services
	FileStorage        *filestorage.LocalStorage
	UploadController   *appControllers.UploadController
	MetadataController *appControllers.MetadataController
	SnapshotController *appControllers.SnapshotController
	ContentController  *appControllers.ContentController
	Hub                *websocket.Hub
	LiveHandler        *websocket.Handler
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// NewAPIClient creates the client for the external wedding API
func NewAPIClient(cfg *config.Config) *httpclient.Client {
	return httpclient.New(httpclient.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})
}

// NewCache creates the process-wide query cache. Invalidations are pushed to
// hub when it is non-nil.
func NewCache(cfg *config.Config, notifier notify.Notifier, hub *websocket.Hub) *querycache.Cache {
	opts := querycache.Options{
		MaxRetries: cfg.API.MaxRetries,
		RetryDelay: cfg.API.RetryDelay,
		Notifier:   notifier,
	}
	if hub != nil {
		opts.OnInvalidate = func(prefixes []querycache.Key) {
			for _, prefix := range prefixes {
				hub.PublishInvalidation(prefix)
			}
		}
	}
	return querycache.New(opts)
}

// BuildDependencies initializes storage, the API client, services and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	fileStorageBaseURL := "http://localhost:" + cfg.Server.Port + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Hub = websocket.NewHub(logger.Component("websocket"))
	deps.LiveHandler = websocket.NewHandler(deps.Hub, logger.Component("websocket"))

	deps.APIClient = NewAPIClient(cfg)
	deps.Cache = NewCache(cfg, notify.NewLogNotifier(), deps.Hub)
	deps.Services = appServices.NewServices(deps.APIClient, deps.Cache)

	deps.UploadController = appControllers.NewUploadController(deps.FileStorage)
	deps.MetadataController = appControllers.NewMetadataController()
	deps.SnapshotController = appControllers.NewSnapshotController(cfg.Snapshot.OutputPath)
	deps.ContentController = appControllers.NewContentController(deps.Services)

	lgr.Info().Str("apiBaseURL", deps.APIClient.BaseURL()).Msg("Dependencies built")
	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger())
	router.MaxMultipartMemory = 16 << 20

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.UploadController,
		deps.MetadataController,
		deps.SnapshotController,
		deps.ContentController,
	)
	router.GET("/ws/updates", deps.LiveHandler.HandleConnection)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "route not found", "code": "NOT_FOUND"})
	})

	return router
}
