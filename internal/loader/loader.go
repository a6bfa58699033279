// Package loader seeds the catalog from a static JSON dataset. The run is
// intentionally not wrapped in one transaction: a failure mid-run can leave
// flats without their amenity associations, matching the dataset-import
// semantics this tool replaces.
package loader

import (
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/domain/repository"
	"github.com/flat-catalog/internal/pkg/geojson"
)

// Dataset is the shape of the seed file.
type Dataset struct {
	Cities    []CityRecord    `json:"cities"`
	Amenities []AmenityRecord `json:"amenities"`
	Flats     []FlatRecord    `json:"flats"`
}

type CityRecord struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type AmenityRecord struct {
	Name string `json:"name"`
}

// FlatRecord carries a raw coordinate pair plus the ids of the amenities the
// flat should be associated with after insertion.
type FlatRecord struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Floor       *int    `json:"floor"`
	RoomsNumber int     `json:"rooms_number"`
	Square      float64 `json:"square"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	CityID      int64   `json:"city_id"`
	DistrictID  int64   `json:"district_id"`
	Amenities   []int64 `json:"amenities"`
}

// Summary counts what a run inserted.
type Summary struct {
	Cities       int
	Amenities    int
	Flats        int
	Associations int
}

type Loader struct {
	cityRepo        repository.CityRepository
	amenityRepo     repository.AmenityRepository
	flatRepo        repository.FlatRepository
	flatAmenityRepo repository.FlatAmenityRepository
	logger          *zap.Logger
}

func New(
	cityRepo repository.CityRepository,
	amenityRepo repository.AmenityRepository,
	flatRepo repository.FlatRepository,
	flatAmenityRepo repository.FlatAmenityRepository,
	logger *zap.Logger,
) *Loader {
	return &Loader{
		cityRepo:        cityRepo,
		amenityRepo:     amenityRepo,
		flatRepo:        flatRepo,
		flatAmenityRepo: flatAmenityRepo,
		logger:          logger,
	}
}

// ReadDataset parses a dataset file.
func ReadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, err
	}
	return &ds, nil
}

// ReformatFlat fills loader defaults and turns the coordinate pair into a
// point geometry. Numeric fields absent from the record default to 0,
// missing city/district references fall back to id 1.
func ReformatFlat(rec FlatRecord) *domain.Flat {
	flat := &domain.Flat{
		Title:       rec.Title,
		Description: rec.Description,
		Address:     rec.Address,
		Coordinates: geojson.PointFromLatLon(rec.Latitude, rec.Longitude),
		Floor:       rec.Floor,
		RoomsNumber: rec.RoomsNumber,
		Square:      rec.Square,
		Price:       rec.Price,
		Currency:    rec.Currency,
		CityID:      rec.CityID,
		DistrictID:  rec.DistrictID,
	}
	if flat.Floor == nil {
		floor := 0
		flat.Floor = &floor
	}
	if flat.Currency == "" {
		flat.Currency = domain.DefaultCurrency
	}
	if flat.CityID == 0 {
		flat.CityID = 1
	}
	if flat.DistrictID == 0 {
		flat.DistrictID = 1
	}
	return flat
}

// Load inserts cities, amenities, flats and flat-amenity join rows, in that
// order: cities and amenities carry no mutual dependency, but flats need
// their city and join rows need both a persisted flat id and an amenity.
func (l *Loader) Load(ctx context.Context, ds *Dataset) (*Summary, error) {
	var summary Summary

	for _, rec := range ds.Cities {
		city, err := l.cityRepo.Create(ctx, &domain.City{Name: rec.Name, Country: rec.Country})
		if err != nil {
			return &summary, err
		}
		l.logger.Info("Inserted city", zap.Int64("id", city.ID), zap.String("name", city.Name))
		summary.Cities++
	}

	for _, rec := range ds.Amenities {
		amenity, err := l.amenityRepo.Create(ctx, &domain.Amenity{Name: rec.Name})
		if err != nil {
			return &summary, err
		}
		l.logger.Info("Inserted amenity", zap.Int64("id", amenity.ID), zap.String("name", amenity.Name))
		summary.Amenities++
	}

	for _, rec := range ds.Flats {
		flat, err := l.flatRepo.Create(ctx, ReformatFlat(rec))
		if err != nil {
			return &summary, err
		}
		l.logger.Info("Inserted flat", zap.Int64("id", flat.ID), zap.String("title", flat.Title))
		summary.Flats++

		for _, amenityID := range rec.Amenities {
			if _, err := l.flatAmenityRepo.Create(ctx, flat.ID, amenityID); err != nil {
				return &summary, err
			}
			summary.Associations++
		}
	}

	l.logger.Info("Dataset loaded",
		zap.Int("cities", summary.Cities),
		zap.Int("amenities", summary.Amenities),
		zap.Int("flats", summary.Flats),
		zap.Int("associations", summary.Associations),
	)

	return &summary, nil
}
