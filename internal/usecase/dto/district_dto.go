package dto

import (
	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/pkg/geojson"
)

type DistrictCreateRequest struct {
	Name       string            `json:"name" validate:"required,min=1,max=200"`
	Boundaries *geojson.Geometry `json:"boundaries,omitempty"`
	CityID     int64             `json:"city_id" validate:"required,gt=0"`
}

type DistrictUpdateRequest struct {
	Name       *string           `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Boundaries *geojson.Geometry `json:"boundaries,omitempty"`
	CityID     *int64            `json:"city_id,omitempty" validate:"omitempty,gt=0"`
}

func (r *DistrictCreateRequest) ToDomain() *domain.District {
	return &domain.District{
		Name:       r.Name,
		Boundaries: r.Boundaries,
		CityID:     r.CityID,
	}
}

func (r *DistrictUpdateRequest) ToPatch() domain.DistrictPatch {
	return domain.DistrictPatch{
		Name:       r.Name,
		Boundaries: r.Boundaries,
		CityID:     r.CityID,
	}
}
