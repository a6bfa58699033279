package main

// @title Flat Catalog API
// @version 1.0.0
// @description CRUD API over a geospatial flat-rental catalog. Cities carry
// @description districts and flats, flats carry amenities through a join
// @description table, and every geometry crosses the wire as WGS-84 GeoJSON.

// @contact.name API Support
// @contact.email support@flat-catalog.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

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

	_ "github.com/flat-catalog/docs"
	"github.com/flat-catalog/internal/config"
	httpDelivery "github.com/flat-catalog/internal/delivery/http"
	"github.com/flat-catalog/internal/delivery/http/handler"
	"github.com/flat-catalog/internal/pkg/logger"
	"github.com/flat-catalog/internal/repository/postgres"
	"github.com/flat-catalog/internal/usecase"
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

	log.Info("Starting Flat Catalog API")
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
	log.Info("PostgreSQL connected")

	// 4. Health check
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 5. Initialize repositories
	cityRepo := postgres.NewCityRepository(db)
	districtRepo := postgres.NewDistrictRepository(db)
	flatRepo := postgres.NewFlatRepository(db)
	amenityRepo := postgres.NewAmenityRepository(db)
	flatAmenityRepo := postgres.NewFlatAmenityRepository(db)

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	cityUC := usecase.NewCityUseCase(cityRepo, districtRepo, log)
	districtUC := usecase.NewDistrictUseCase(districtRepo, cityRepo, log)
	flatUC := usecase.NewFlatUseCase(flatRepo, cityRepo, districtRepo, amenityRepo, log)
	amenityUC := usecase.NewAmenityUseCase(amenityRepo, log)
	flatAmenityUC := usecase.NewFlatAmenityUseCase(flatAmenityRepo, amenityRepo, flatRepo, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	cityHandler := handler.NewCityHandler(cityUC, log)
	districtHandler := handler.NewDistrictHandler(districtUC, log)
	flatHandler := handler.NewFlatHandler(flatUC, log)
	amenityHandler := handler.NewAmenityHandler(amenityUC, log)
	flatAmenityHandler := handler.NewFlatAmenityHandler(flatAmenityUC, log)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		cityHandler,
		districtHandler,
		flatHandler,
		amenityHandler,
		flatAmenityHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
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
