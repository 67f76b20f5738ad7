package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/config"
	"github.com/aqarview/geosearch/internal/delivery/http/handler"
	"github.com/aqarview/geosearch/internal/delivery/http/middleware"
)

// Server is the fiber shell around the engine.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	listingHandler   *handler.ListingHandler
	amenityHandler   *handler.AmenityHandler
	assistantHandler *handler.AssistantHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	listingHandler *handler.ListingHandler,
	amenityHandler *handler.AmenityHandler,
	assistantHandler *handler.AssistantHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Geosearch API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		listingHandler:   listingHandler,
		amenityHandler:   amenityHandler,
		assistantHandler: assistantHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Listing routes
	api.Post("/listings/search", s.listingHandler.Search)
	api.Post("/listings/overlay", s.listingHandler.Overlay)

	// Amenity routes
	api.Get("/amenities/:category", s.amenityHandler.GetByCategory)

	// Facet option routes
	facets := api.Group("/facets")
	facets.Get("/property-types", s.amenityHandler.PropertyTypes)
	facets.Get("/districts", s.amenityHandler.Districts)
	facets.Get("/school-genders", s.amenityHandler.SchoolGenders)
	facets.Get("/school-levels", s.amenityHandler.SchoolLevels)

	// Assistant routes
	api.Post("/assistant/query", s.assistantHandler.Query)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
