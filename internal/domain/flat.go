package domain

import "github.com/flat-catalog/internal/pkg/geojson"

// DefaultCurrency applies when a flat is created without one.
const DefaultCurrency = "PLN"

// Flat is a rental listing positioned by a point geometry. It belongs to
// exactly one city and one district and is removed with either.
type Flat struct {
	ID          int64             `json:"id" db:"id"`
	Title       string            `json:"title" db:"title"`
	Description string            `json:"description" db:"description"`
	Address     string            `json:"address" db:"address"`
	Coordinates *geojson.Geometry `json:"coordinates" db:"-"`
	Floor       *int              `json:"floor,omitempty" db:"floor"`
	RoomsNumber int               `json:"rooms_number" db:"rooms_number"`
	Square      float64           `json:"square" db:"square"`
	Price       float64           `json:"price" db:"price"`
	Currency    string            `json:"currency" db:"currency"`
	CityID      int64             `json:"city_id" db:"city_id"`
	DistrictID  int64             `json:"district_id" db:"district_id"`

	// Populated on single-flat reads only.
	City      *CitySummary     `json:"city,omitempty" db:"-"`
	District  *DistrictSummary `json:"district,omitempty" db:"-"`
	Amenities []*Amenity       `json:"amenities,omitempty" db:"-"`
}

// FlatPatch carries a partial update: nil fields stay untouched, so a
// cleared optional field is distinguishable from an omitted one.
type FlatPatch struct {
	Title       *string
	Description *string
	Address     *string
	Coordinates *geojson.Geometry
	Floor       *int
	RoomsNumber *int
	Square      *float64
	Price       *float64
	Currency    *string
	CityID      *int64
	DistrictID  *int64
}

func (p FlatPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Address == nil &&
		p.Coordinates == nil && p.Floor == nil && p.RoomsNumber == nil &&
		p.Square == nil && p.Price == nil && p.Currency == nil &&
		p.CityID == nil && p.DistrictID == nil
}
