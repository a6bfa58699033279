// One-shot seeding binary. Reads the dataset named by LOADER_DATASET_PATH
// and inserts it through the same repositories the API uses.
package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/flat-catalog/internal/config"
	"github.com/flat-catalog/internal/loader"
	"github.com/flat-catalog/internal/pkg/logger"
	"github.com/flat-catalog/internal/repository/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting dataset loader", zap.String("dataset", cfg.Loader.DatasetPath))

	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	ds, err := loader.ReadDataset(cfg.Loader.DatasetPath)
	if err != nil {
		log.Fatal("Failed to read dataset", zap.Error(err))
	}

	l := loader.New(
		postgres.NewCityRepository(db),
		postgres.NewAmenityRepository(db),
		postgres.NewFlatRepository(db),
		postgres.NewFlatAmenityRepository(db),
		log,
	)

	summary, err := l.Load(ctx, ds)
	if err != nil {
		log.Fatal("Dataset load failed",
			zap.Error(err),
			zap.Int("cities_inserted", summary.Cities),
			zap.Int("amenities_inserted", summary.Amenities),
			zap.Int("flats_inserted", summary.Flats),
		)
	}

	log.Info("Dataset load complete",
		zap.Int("cities", summary.Cities),
		zap.Int("amenities", summary.Amenities),
		zap.Int("flats", summary.Flats),
		zap.Int("associations", summary.Associations),
	)
}
