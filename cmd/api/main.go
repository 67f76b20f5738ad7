package main

// @title Geosearch API
// @version 1.0.0
// @description Geospatial search engine for real-estate listings in Riyadh.
// @description
// @description Core capabilities:
// @description - Viewport-bounded listing search with facet filters and result caching
// @description - Amenity proximity requirements (schools, universities, mosques, metro)
// @description - Map overlay derivation: convex boundary, price colors, recomputed bounds
// @description - Facet option lookups for the filter sheet
// @description - Conversational criteria extraction via the assistant collaborator

// @contact.name API Support
// @contact.email support@aqarview.com

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/aqarview/geosearch/docs"
	"github.com/aqarview/geosearch/internal/config"
	httpDelivery "github.com/aqarview/geosearch/internal/delivery/http"
	"github.com/aqarview/geosearch/internal/delivery/http/handler"
	"github.com/aqarview/geosearch/internal/infrastructure/assistant"
	"github.com/aqarview/geosearch/internal/pkg/logger"
	"github.com/aqarview/geosearch/internal/repository/cache"
	"github.com/aqarview/geosearch/internal/repository/postgres"
	"github.com/aqarview/geosearch/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Geosearch API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	listingRepo := postgres.NewListingRepository(db)
	amenityRepo := postgres.NewAmenityRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	assistantRepo := assistant.NewClient(&cfg.Assistant, log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	proximityUC := usecase.NewProximityUseCase(amenityRepo, log, cfg.Query.AvgSpeedKmh)
	searchUC := usecase.NewSearchUseCase(listingRepo, cacheRepo, proximityUC, cfg, log)
	overlayUC := usecase.NewOverlayUseCase(log)
	criteriaUC := usecase.NewCriteriaUseCase(log)
	assistantUC := usecase.NewAssistantUseCase(assistantRepo, criteriaUC, log)
	facetUC := usecase.NewFacetUseCase(listingRepo, amenityRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	listingHandler := handler.NewListingHandler(searchUC, overlayUC, log)
	amenityHandler := handler.NewAmenityHandler(facetUC, log)
	assistantHandler := handler.NewAssistantHandler(assistantUC, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, listingHandler, amenityHandler, assistantHandler)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
