package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/domain/repository"
)

// FlatAmenityUseCase manages the many-to-many association between flats and
// amenities. Create is intentionally not idempotent: the join table's
// composite primary key rejects duplicate pairs with a conflict error.
type FlatAmenityUseCase struct {
	flatAmenityRepo repository.FlatAmenityRepository
	amenityRepo     repository.AmenityRepository
	flatRepo        repository.FlatRepository
	logger          *zap.Logger
}

func NewFlatAmenityUseCase(
	flatAmenityRepo repository.FlatAmenityRepository,
	amenityRepo repository.AmenityRepository,
	flatRepo repository.FlatRepository,
	logger *zap.Logger,
) *FlatAmenityUseCase {
	return &FlatAmenityUseCase{
		flatAmenityRepo: flatAmenityRepo,
		amenityRepo:     amenityRepo,
		flatRepo:        flatRepo,
		logger:          logger,
	}
}

func (uc *FlatAmenityUseCase) GetAll(ctx context.Context) ([]*domain.FlatAmenity, error) {
	return uc.flatAmenityRepo.GetAll(ctx)
}

// GetAmenitiesByFlat resolves the join rows into full amenity records.
func (uc *FlatAmenityUseCase) GetAmenitiesByFlat(ctx context.Context, flatID int64) ([]*domain.Amenity, error) {
	return uc.amenityRepo.GetByFlat(ctx, flatID)
}

// GetFlatsByAmenity lists the flats carrying the given amenity.
func (uc *FlatAmenityUseCase) GetFlatsByAmenity(ctx context.Context, amenityID int64) ([]*domain.Flat, error) {
	associations, err := uc.flatAmenityRepo.GetByAmenity(ctx, amenityID)
	if err != nil {
		return nil, err
	}

	flats := make([]*domain.Flat, 0, len(associations))
	for _, assoc := range associations {
		flat, err := uc.flatRepo.GetByID(ctx, assoc.FlatID)
		if err != nil {
			uc.logger.Warn("Failed to load flat for association",
				zap.Int64("flat_id", assoc.FlatID),
				zap.Int64("amenity_id", amenityID),
				zap.Error(err))
			continue
		}
		flats = append(flats, flat)
	}

	return flats, nil
}

func (uc *FlatAmenityUseCase) Create(ctx context.Context, flatID, amenityID int64) (*domain.FlatAmenity, error) {
	association, err := uc.flatAmenityRepo.Create(ctx, flatID, amenityID)
	if err != nil {
		uc.logger.Error("Failed to associate flat with amenity",
			zap.Int64("flat_id", flatID),
			zap.Int64("amenity_id", amenityID),
			zap.Error(err))
		return nil, err
	}
	return association, nil
}

func (uc *FlatAmenityUseCase) Delete(ctx context.Context, flatID, amenityID int64) (bool, error) {
	return uc.flatAmenityRepo.Delete(ctx, flatID, amenityID)
}
