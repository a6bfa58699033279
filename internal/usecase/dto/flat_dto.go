package dto

import (
	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/pkg/geojson"
)

type FlatCreateRequest struct {
	Title       string            `json:"title" validate:"required,min=1,max=150"`
	Description string            `json:"description" validate:"required,min=1,max=1000"`
	Address     string            `json:"address" validate:"max=200"`
	Coordinates *geojson.Geometry `json:"coordinates" validate:"required"`
	Floor       *int              `json:"floor,omitempty" validate:"omitempty,gte=0"`
	RoomsNumber int               `json:"rooms_number" validate:"gte=0"`
	Square      float64           `json:"square" validate:"required,gt=0"`
	Price       float64           `json:"price" validate:"gte=0"`
	Currency    string            `json:"currency,omitempty" validate:"omitempty,max=10"`
	CityID      int64             `json:"city_id" validate:"required,gt=0"`
	DistrictID  int64             `json:"district_id" validate:"required,gt=0"`
}

type FlatUpdateRequest struct {
	Title       *string           `json:"title,omitempty" validate:"omitempty,min=1,max=150"`
	Description *string           `json:"description,omitempty" validate:"omitempty,min=1,max=1000"`
	Address     *string           `json:"address,omitempty" validate:"omitempty,max=200"`
	Coordinates *geojson.Geometry `json:"coordinates,omitempty"`
	Floor       *int              `json:"floor,omitempty" validate:"omitempty,gte=0"`
	RoomsNumber *int              `json:"rooms_number,omitempty" validate:"omitempty,gte=0"`
	Square      *float64          `json:"square,omitempty" validate:"omitempty,gt=0"`
	Price       *float64          `json:"price,omitempty" validate:"omitempty,gte=0"`
	Currency    *string           `json:"currency,omitempty" validate:"omitempty,max=10"`
	CityID      *int64            `json:"city_id,omitempty" validate:"omitempty,gt=0"`
	DistrictID  *int64            `json:"district_id,omitempty" validate:"omitempty,gt=0"`
}

func (r *FlatCreateRequest) ToDomain() *domain.Flat {
	return &domain.Flat{
		Title:       r.Title,
		Description: r.Description,
		Address:     r.Address,
		Coordinates: r.Coordinates,
		Floor:       r.Floor,
		RoomsNumber: r.RoomsNumber,
		Square:      r.Square,
		Price:       r.Price,
		Currency:    r.Currency,
		CityID:      r.CityID,
		DistrictID:  r.DistrictID,
	}
}

func (r *FlatUpdateRequest) ToPatch() domain.FlatPatch {
	return domain.FlatPatch{
		Title:       r.Title,
		Description: r.Description,
		Address:     r.Address,
		Coordinates: r.Coordinates,
		Floor:       r.Floor,
		RoomsNumber: r.RoomsNumber,
		Square:      r.Square,
		Price:       r.Price,
		Currency:    r.Currency,
		CityID:      r.CityID,
		DistrictID:  r.DistrictID,
	}
}
