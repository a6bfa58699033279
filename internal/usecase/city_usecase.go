package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/domain/repository"
	"github.com/flat-catalog/internal/pkg/geojson"
	"github.com/flat-catalog/internal/pkg/metrics"
	"github.com/flat-catalog/internal/usecase/dto"
)

// CityUseCase wraps city CRUD. Deleting a city relies on the store's cascade
// rules to remove its districts, flats and their join rows.
type CityUseCase struct {
	cityRepo     repository.CityRepository
	districtRepo repository.DistrictRepository
	logger       *zap.Logger
}

func NewCityUseCase(
	cityRepo repository.CityRepository,
	districtRepo repository.DistrictRepository,
	logger *zap.Logger,
) *CityUseCase {
	return &CityUseCase{
		cityRepo:     cityRepo,
		districtRepo: districtRepo,
		logger:       logger,
	}
}

func (uc *CityUseCase) GetAll(ctx context.Context) ([]*domain.City, error) {
	return uc.cityRepo.GetAll(ctx)
}

// GetByID returns the city with its district list embedded.
func (uc *CityUseCase) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	city, err := uc.cityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	districts, err := uc.districtRepo.GetByCity(ctx, id)
	if err != nil {
		uc.logger.Warn("Failed to load districts for city", zap.Int64("city_id", id), zap.Error(err))
	} else {
		city.Districts = districts
	}

	return city, nil
}

func (uc *CityUseCase) GetByCountry(ctx context.Context, country string) ([]*domain.City, error) {
	return uc.cityRepo.GetByCountry(ctx, country)
}

func (uc *CityUseCase) Create(ctx context.Context, req dto.CityCreateRequest) (*domain.City, error) {
	// Boundary is optional; when present it must be a valid polygon.
	if req.Boundaries != nil {
		if err := req.Boundaries.Validate(geojson.TypePolygon); err != nil {
			return nil, err
		}
	}

	city, err := uc.cityRepo.Create(ctx, req.ToDomain())
	if err != nil {
		uc.logger.Error("Failed to create city", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("city").Inc()
	return city, nil
}

func (uc *CityUseCase) Update(ctx context.Context, id int64, req dto.CityUpdateRequest) (*domain.City, error) {
	if req.Boundaries != nil {
		if err := req.Boundaries.Validate(geojson.TypePolygon); err != nil {
			return nil, err
		}
	}

	return uc.cityRepo.Update(ctx, id, req.ToPatch())
}

func (uc *CityUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := uc.cityRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		metrics.EntitiesDeletedTotal.WithLabelValues("city").Inc()
	}
	return deleted, nil
}
