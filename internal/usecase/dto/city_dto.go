package dto

import (
	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/pkg/geojson"
)

// CityCreateRequest carries validated input for city creation.
type CityCreateRequest struct {
	Name       string            `json:"name" validate:"required,min=1,max=200"`
	Boundaries *geojson.Geometry `json:"boundaries,omitempty"`
	Country    string            `json:"country" validate:"required,min=1,max=200"`
}

// CityUpdateRequest models every field as present-or-absent; nil means
// "don't touch", which is distinct from an explicit empty value.
type CityUpdateRequest struct {
	Name       *string           `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Boundaries *geojson.Geometry `json:"boundaries,omitempty"`
	Country    *string           `json:"country,omitempty" validate:"omitempty,min=1,max=200"`
}

func (r *CityCreateRequest) ToDomain() *domain.City {
	return &domain.City{
		Name:       r.Name,
		Boundaries: r.Boundaries,
		Country:    r.Country,
	}
}

func (r *CityUpdateRequest) ToPatch() domain.CityPatch {
	return domain.CityPatch{
		Name:       r.Name,
		Boundaries: r.Boundaries,
		Country:    r.Country,
	}
}
