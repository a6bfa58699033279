package repository

import (
	"context"

	"github.com/flat-catalog/internal/domain"
)

type AmenityRepository interface {
	GetAll(ctx context.Context) ([]*domain.Amenity, error)
	GetByID(ctx context.Context, id int64) (*domain.Amenity, error)
	GetByFlat(ctx context.Context, flatID int64) ([]*domain.Amenity, error)
	Create(ctx context.Context, amenity *domain.Amenity) (*domain.Amenity, error)
	Update(ctx context.Context, id int64, patch domain.AmenityPatch) (*domain.Amenity, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
