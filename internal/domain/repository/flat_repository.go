package repository

import (
	"context"

	"github.com/flat-catalog/internal/domain"
)

type FlatRepository interface {
	GetAll(ctx context.Context) ([]*domain.Flat, error)
	GetByID(ctx context.Context, id int64) (*domain.Flat, error)
	GetByCity(ctx context.Context, cityID int64) ([]*domain.Flat, error)
	GetByDistrict(ctx context.Context, districtID int64) ([]*domain.Flat, error)
	Create(ctx context.Context, flat *domain.Flat) (*domain.Flat, error)
	Update(ctx context.Context, id int64, patch domain.FlatPatch) (*domain.Flat, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
