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

type DistrictUseCase struct {
	districtRepo repository.DistrictRepository
	cityRepo     repository.CityRepository
	logger       *zap.Logger
}

func NewDistrictUseCase(
	districtRepo repository.DistrictRepository,
	cityRepo repository.CityRepository,
	logger *zap.Logger,
) *DistrictUseCase {
	return &DistrictUseCase{
		districtRepo: districtRepo,
		cityRepo:     cityRepo,
		logger:       logger,
	}
}

func (uc *DistrictUseCase) GetAll(ctx context.Context) ([]*domain.District, error) {
	return uc.districtRepo.GetAll(ctx)
}

// GetByID returns the district with its parent city summary embedded.
func (uc *DistrictUseCase) GetByID(ctx context.Context, id int64) (*domain.District, error) {
	district, err := uc.districtRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	city, err := uc.cityRepo.GetByID(ctx, district.CityID)
	if err != nil {
		uc.logger.Warn("Failed to load parent city for district",
			zap.Int64("district_id", id),
			zap.Int64("city_id", district.CityID),
			zap.Error(err))
	} else {
		district.City = city.Summary()
	}

	return district, nil
}

func (uc *DistrictUseCase) GetByCity(ctx context.Context, cityID int64) ([]*domain.District, error) {
	return uc.districtRepo.GetByCity(ctx, cityID)
}

func (uc *DistrictUseCase) Create(ctx context.Context, req dto.DistrictCreateRequest) (*domain.District, error) {
	if req.Boundaries != nil {
		if err := req.Boundaries.Validate(geojson.TypePolygon); err != nil {
			return nil, err
		}
	}

	district, err := uc.districtRepo.Create(ctx, req.ToDomain())
	if err != nil {
		uc.logger.Error("Failed to create district",
			zap.String("name", req.Name),
			zap.Int64("city_id", req.CityID),
			zap.Error(err))
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("district").Inc()
	return district, nil
}

func (uc *DistrictUseCase) Update(ctx context.Context, id int64, req dto.DistrictUpdateRequest) (*domain.District, error) {
	if req.Boundaries != nil {
		if err := req.Boundaries.Validate(geojson.TypePolygon); err != nil {
			return nil, err
		}
	}

	return uc.districtRepo.Update(ctx, id, req.ToPatch())
}

func (uc *DistrictUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := uc.districtRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		metrics.EntitiesDeletedTotal.WithLabelValues("district").Inc()
	}
	return deleted, nil
}
