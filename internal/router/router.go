package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"meeting-service/internal/cache"
	"meeting-service/internal/config"
	"meeting-service/internal/handler"
	"meeting-service/internal/metrics"
	"meeting-service/internal/middleware"
	"meeting-service/internal/repository"
	"meeting-service/internal/service"
)

// Setup wires repositories, services and handlers into the gin engine.
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// Initialize repositories
	meetingRepo := repository.NewMeetingRepository(db)
	participantRepo := repository.NewParticipantRepository(db)

	// Initialize preview cache (nil Redis disables it)
	previewCache := cache.NewPreviewCache(redisClient, cache.DefaultPreviewTTL)

	// Initialize services
	participantService := service.NewParticipantService(participantRepo, meetingRepo, previewCache, m, logger)
	meetingService := service.NewMeetingService(meetingRepo, participantRepo, participantService, previewCache, m, logger)

	// Initialize handlers
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	participantHandler := handler.NewParticipantHandler(participantService, logger)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Health endpoints (no base path)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes with base path
	api := r.Group(cfg.Server.BasePath)
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/ready", healthHandler.Ready)
		api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		api.POST("", meetingHandler.CreateMeeting)
		api.GET("/:meetingId", meetingHandler.GetMeeting)
		api.GET("/:meetingId/preview", meetingHandler.GetMeetingPreview)

		api.POST("/:meetingId/join", participantHandler.JoinMeeting)
		api.POST("/:meetingId/verify", participantHandler.VerifyToken)
		api.GET("/:meetingId/participants", participantHandler.GetParticipants)
		api.POST("/:meetingId/leave", participantHandler.LeaveMeeting)
		api.PUT("/:meetingId/participants/location", participantHandler.UpdateLocation)
	}

	return r
}
