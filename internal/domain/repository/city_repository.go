package repository

import (
	"context"

	"github.com/flat-catalog/internal/domain"
)

type CityRepository interface {
	GetAll(ctx context.Context) ([]*domain.City, error)
	GetByID(ctx context.Context, id int64) (*domain.City, error)
	GetByCountry(ctx context.Context, country string) ([]*domain.City, error)
	Create(ctx context.Context, city *domain.City) (*domain.City, error)
	Update(ctx context.Context, id int64, patch domain.CityPatch) (*domain.City, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
