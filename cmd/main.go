package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"

	"github.com/trailsentry/tourist-safety-api/internal/classifier"
	"github.com/trailsentry/tourist-safety-api/internal/config"
	v1 "github.com/trailsentry/tourist-safety-api/internal/handler/http/v1"
	"github.com/trailsentry/tourist-safety-api/internal/repository"
	"github.com/trailsentry/tourist-safety-api/internal/scoring"
	"github.com/trailsentry/tourist-safety-api/internal/service"
	"github.com/trailsentry/tourist-safety-api/internal/webhook"
	"github.com/trailsentry/tourist-safety-api/pkg/logger"
	"github.com/trailsentry/tourist-safety-api/pkg/postgres"
	redisclient "github.com/trailsentry/tourist-safety-api/pkg/redis"

	_ "github.com/trailsentry/tourist-safety-api/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Tourist Safety API
// @version 1.0
// @description Safety scoring and zone classification service for tracked tourists.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.LogLevel)

	// Root context for the background workers; cancelled on shutdown.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	webhookPublisher := webhook.NewRedisPublisher(redisClient)

	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	safetyRepo := repository.NewSafetyRepository(dbpool, redisClient)

	zoneNotifier := webhook.NewZoneStatusNotifier(webhookPublisher, log)
	scoringService := scoring.NewService(safetyRepo, log, cfg, zoneNotifier)

	// Prime the score cache before serving, then keep it fresh on the
	// sweep interval.
	if err := scoringService.RecomputeAll(ctx); err != nil {
		log.WithError(err).Warn("Initial score sweep failed; scores will populate on the next cycle")
	}
	scoringService.Start(ctx)

	safetyService := service.NewSafetyService(safetyRepo, classifier.Default(), scoringService, log, cfg, webhookPublisher)

	handler := v1.NewHandler(safetyService, log, cfg)

	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Stop the sweep scheduler and the webhook worker.
	cancel()

	log.Info("Server gracefully stopped")
}
