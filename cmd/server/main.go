// @title           Meeting Service API
// @version         1.0
// @description     API for creating and joining PIN-protected meetings

// @host      localhost:8002
// @BasePath  /api/meetings

package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "meeting-service/docs" // Swagger docs import

	"meeting-service/internal/config"
	"meeting-service/internal/database"
	"meeting-service/internal/job"
	"meeting-service/internal/metrics"
	"meeting-service/internal/repository"
	"meeting-service/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Server.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Meeting Service",
		zap.Int("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("base_path", cfg.Server.BasePath),
	)

	// Connect to the database; a failure does not stop startup, the
	// connection is retried in the background. Repositories built over a nil
	// handle bind to the shared connection and start serving once the retry
	// succeeds.
	db, err := database.New(cfg)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(cfg, 5*time.Second)
		db = nil
	} else {
		logger.Info("Database connected and migrated")
	}

	// Connect to Redis (optional, preview cache only)
	redisClient, err := database.NewRedis(cfg)
	if err != nil {
		logger.Warn("Failed to connect to Redis, preview caching disabled", zap.Error(err))
		redisClient = nil
	} else if redisClient != nil {
		logger.Info("Redis connected")
	}

	// Initialize metrics
	m := metrics.New()
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			m.StartDBStatsSampler(context.Background(), sqlDB, 15*time.Second)
		}
	}

	// Retention cleanup job
	var cronRunner *cron.Cron
	if cfg.Retention.Days > 0 {
		meetingRepo := repository.NewMeetingRepository(db)
		retention := time.Duration(cfg.Retention.Days) * 24 * time.Hour
		retentionJob := job.NewRetentionJob(meetingRepo, retention, logger)

		cronRunner = cron.New()
		if _, err := cronRunner.AddJob(cfg.Retention.Schedule, retentionJob); err != nil {
			logger.Warn("Failed to schedule retention job", zap.Error(err))
		} else {
			cronRunner.Start()
			logger.Info("Retention job scheduled",
				zap.String("schedule", cfg.Retention.Schedule),
				zap.Int("retention_days", cfg.Retention.Days),
			)
		}
	}

	// Setup router
	r := router.Setup(cfg, db, redisClient, m, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Meeting Service started",
			zap.String("address", srv.Addr),
			zap.String("swagger", fmt.Sprintf("http://localhost:%d%s/swagger/index.html", cfg.Server.Port, cfg.Server.BasePath)),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	if cronRunner != nil {
		cronRunner.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
