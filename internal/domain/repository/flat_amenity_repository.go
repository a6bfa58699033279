package repository

import (
	"context"

	"github.com/flat-catalog/internal/domain"
)

type FlatAmenityRepository interface {
	GetAll(ctx context.Context) ([]*domain.FlatAmenity, error)
	GetByFlat(ctx context.Context, flatID int64) ([]*domain.FlatAmenity, error)
	GetByAmenity(ctx context.Context, amenityID int64) ([]*domain.FlatAmenity, error)
	Create(ctx context.Context, flatID, amenityID int64) (*domain.FlatAmenity, error)
	Delete(ctx context.Context, flatID, amenityID int64) (bool, error)
}
