package repository

import (
	"context"

	"github.com/flat-catalog/internal/domain"
)

type DistrictRepository interface {
	GetAll(ctx context.Context) ([]*domain.District, error)
	GetByID(ctx context.Context, id int64) (*domain.District, error)
	GetByCity(ctx context.Context, cityID int64) ([]*domain.District, error)
	Create(ctx context.Context, district *domain.District) (*domain.District, error)
	Update(ctx context.Context, id int64, patch domain.DistrictPatch) (*domain.District, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
