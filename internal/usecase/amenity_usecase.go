package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/domain/repository"
	"github.com/flat-catalog/internal/pkg/metrics"
	"github.com/flat-catalog/internal/usecase/dto"
)

type AmenityUseCase struct {
	amenityRepo repository.AmenityRepository
	logger      *zap.Logger
}

func NewAmenityUseCase(amenityRepo repository.AmenityRepository, logger *zap.Logger) *AmenityUseCase {
	return &AmenityUseCase{
		amenityRepo: amenityRepo,
		logger:      logger,
	}
}

func (uc *AmenityUseCase) GetAll(ctx context.Context) ([]*domain.Amenity, error) {
	return uc.amenityRepo.GetAll(ctx)
}

func (uc *AmenityUseCase) GetByID(ctx context.Context, id int64) (*domain.Amenity, error) {
	return uc.amenityRepo.GetByID(ctx, id)
}

func (uc *AmenityUseCase) Create(ctx context.Context, req dto.AmenityCreateRequest) (*domain.Amenity, error) {
	amenity, err := uc.amenityRepo.Create(ctx, req.ToDomain())
	if err != nil {
		uc.logger.Error("Failed to create amenity", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	metrics.EntitiesCreatedTotal.WithLabelValues("amenity").Inc()
	return amenity, nil
}

func (uc *AmenityUseCase) Update(ctx context.Context, id int64, req dto.AmenityUpdateRequest) (*domain.Amenity, error) {
	return uc.amenityRepo.Update(ctx, id, req.ToPatch())
}

func (uc *AmenityUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := uc.amenityRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		metrics.EntitiesDeletedTotal.WithLabelValues("amenity").Inc()
	}
	return deleted, nil
}
