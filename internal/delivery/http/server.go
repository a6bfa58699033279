package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/flat-catalog/internal/config"
	"github.com/flat-catalog/internal/delivery/http/handler"
	"github.com/flat-catalog/internal/delivery/http/middleware"
	"github.com/flat-catalog/internal/pkg/metrics"
)

// Server is the Fiber HTTP front of the catalog.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	cityHandler        *handler.CityHandler
	districtHandler    *handler.DistrictHandler
	flatHandler        *handler.FlatHandler
	amenityHandler     *handler.AmenityHandler
	flatAmenityHandler *handler.FlatAmenityHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	cityHandler *handler.CityHandler,
	districtHandler *handler.DistrictHandler,
	flatHandler *handler.FlatHandler,
	amenityHandler *handler.AmenityHandler,
	flatAmenityHandler *handler.FlatAmenityHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Flat Catalog",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		cityHandler:        cityHandler,
		districtHandler:    districtHandler,
		flatHandler:        flatHandler,
		amenityHandler:     amenityHandler,
		flatAmenityHandler: flatAmenityHandler,
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
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	api := s.app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// City routes
	api.Get("/cities", s.cityHandler.List)
	api.Post("/cities", s.cityHandler.Create)
	api.Get("/cities/:id", s.cityHandler.GetByID)
	api.Patch("/cities/:id", s.cityHandler.Update)
	api.Delete("/cities/:id", s.cityHandler.Delete)
	api.Get("/cities/:id/districts", s.districtHandler.ListByCity)
	api.Get("/cities/:id/flats", s.flatHandler.ListByCity)

	// District routes
	api.Get("/districts", s.districtHandler.List)
	api.Post("/districts", s.districtHandler.Create)
	api.Get("/districts/:id", s.districtHandler.GetByID)
	api.Patch("/districts/:id", s.districtHandler.Update)
	api.Delete("/districts/:id", s.districtHandler.Delete)
	api.Get("/districts/:id/flats", s.flatHandler.ListByDistrict)

	// Flat routes
	api.Get("/flats", s.flatHandler.List)
	api.Post("/flats", s.flatHandler.Create)
	api.Get("/flats/:id", s.flatHandler.GetByID)
	api.Patch("/flats/:id", s.flatHandler.Update)
	api.Delete("/flats/:id", s.flatHandler.Delete)

	// Amenity routes
	api.Get("/amenities", s.amenityHandler.List)
	api.Post("/amenities", s.amenityHandler.Create)
	api.Get("/amenities/:id", s.amenityHandler.GetByID)
	api.Patch("/amenities/:id", s.amenityHandler.Update)
	api.Delete("/amenities/:id", s.amenityHandler.Delete)

	// Flat-amenity association routes
	api.Get("/flat-amenities", s.flatAmenityHandler.List)
	api.Get("/flats/:id/amenities", s.flatAmenityHandler.ListAmenitiesByFlat)
	api.Get("/amenities/:id/flats", s.flatAmenityHandler.ListFlatsByAmenity)
	api.Post("/flats/:id/amenities/:amenityID", s.flatAmenityHandler.Create)
	api.Delete("/flats/:id/amenities/:amenityID", s.flatAmenityHandler.Delete)
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
		status := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Error(err),
		)

		return c.Status(status).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    errorCode(status),
				"message": err.Error(),
			},
		})
	}
}

// errorCode renders an HTTP status as the response code string, e.g.
// 404 -> NOT_FOUND, 405 -> METHOD_NOT_ALLOWED.
func errorCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "INTERNAL_SERVER_ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
