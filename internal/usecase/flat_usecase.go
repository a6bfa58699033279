package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/domain/repository"
	apperrors "github.com/flat-catalog/internal/pkg/errors"
	"github.com/flat-catalog/internal/pkg/geojson"
	"github.com/flat-catalog/internal/pkg/metrics"
	"github.com/flat-catalog/internal/usecase/dto"
)

// FlatUseCase wraps flat CRUD and assembles the nested response: a single
// flat read embeds its city summary, district summary and amenity list.
type FlatUseCase struct {
	flatRepo     repository.FlatRepository
	cityRepo     repository.CityRepository
	districtRepo repository.DistrictRepository
	amenityRepo  repository.AmenityRepository
	logger       *zap.Logger
}

func NewFlatUseCase(
	flatRepo repository.FlatRepository,
	cityRepo repository.CityRepository,
	districtRepo repository.DistrictRepository,
	amenityRepo repository.AmenityRepository,
	logger *zap.Logger,
) *FlatUseCase {
	return &FlatUseCase{
		flatRepo:     flatRepo,
		cityRepo:     cityRepo,
		districtRepo: districtRepo,
		amenityRepo:  amenityRepo,
		logger:       logger,
	}
}

func (uc *FlatUseCase) GetAll(ctx context.Context) ([]*domain.Flat, error) {
	return uc.flatRepo.GetAll(ctx)
}

func (uc *FlatUseCase) GetByID(ctx context.Context, id int64) (*domain.Flat, error) {
	flat, err := uc.flatRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if city, err := uc.cityRepo.GetByID(ctx, flat.CityID); err != nil {
		uc.logger.Warn("Failed to load city for flat",
			zap.Int64("flat_id", id), zap.Int64("city_id", flat.CityID), zap.Error(err))
	} else {
		flat.City = city.Summary()
	}

	if district, err := uc.districtRepo.GetByID(ctx, flat.DistrictID); err != nil {
		uc.logger.Warn("Failed to load district for flat",
			zap.Int64("flat_id", id), zap.Int64("district_id", flat.DistrictID), zap.Error(err))
	} else {
		flat.District = district.Summary()
	}

	amenities, err := uc.amenityRepo.GetByFlat(ctx, id)
	if err != nil {
		uc.logger.Warn("Failed to load amenities for flat", zap.Int64("flat_id", id), zap.Error(err))
	} else {
		flat.Amenities = amenities
	}

	return flat, nil
}

func (uc *FlatUseCase) GetByCity(ctx context.Context, cityID int64) ([]*domain.Flat, error) {
	return uc.flatRepo.GetByCity(ctx, cityID)
}

func (uc *FlatUseCase) GetByDistrict(ctx context.Context, districtID int64) ([]*domain.Flat, error) {
	return uc.flatRepo.GetByDistrict(ctx, districtID)
}

func (uc *FlatUseCase) Create(ctx context.Context, req dto.FlatCreateRequest) (*domain.Flat, error) {
	// Coordinates are mandatory and must be a valid point. Range checks
	// like square > 0 stay with the store's constraints.
	if req.Coordinates == nil {
		return nil, apperrors.ErrInvalidGeometry
	}
	if err := req.Coordinates.Validate(geojson.TypePoint); err != nil {
		return nil, err
	}

	flat, err := uc.flatRepo.Create(ctx, req.ToDomain())
	if err != nil {
		uc.logger.Error("Failed to create flat", zap.String("title", req.Title), zap.Error(err))
		metrics.StoreErrorsTotal.WithLabelValues("flat").Inc()
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("flat").Inc()
	return flat, nil
}

func (uc *FlatUseCase) Update(ctx context.Context, id int64, req dto.FlatUpdateRequest) (*domain.Flat, error) {
	if req.Coordinates != nil {
		if err := req.Coordinates.Validate(geojson.TypePoint); err != nil {
			return nil, err
		}
	}

	return uc.flatRepo.Update(ctx, id, req.ToPatch())
}

func (uc *FlatUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := uc.flatRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		metrics.EntitiesDeletedTotal.WithLabelValues("flat").Inc()
	}
	return deleted, nil
}
