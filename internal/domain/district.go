package domain

import "github.com/flat-catalog/internal/pkg/geojson"

// District belongs to exactly one city and owns flats (cascade delete).
type District struct {
	ID         int64             `json:"id" db:"id"`
	Name       string            `json:"name" db:"name"`
	Boundaries *geojson.Geometry `json:"boundaries,omitempty" db:"-"`
	CityID     int64             `json:"city_id" db:"city_id"`

	// City is populated on single-district reads only.
	City *CitySummary `json:"city,omitempty" db:"-"`
}

// DistrictSummary is the nested representation embedded in flat responses.
type DistrictSummary struct {
	ID     int64  `json:"id" db:"id"`
	Name   string `json:"name" db:"name"`
	CityID int64  `json:"city_id" db:"city_id"`
}

// DistrictPatch carries a partial update: nil fields stay untouched.
type DistrictPatch struct {
	Name       *string
	Boundaries *geojson.Geometry
	CityID     *int64
}

func (p DistrictPatch) Empty() bool {
	return p.Name == nil && p.Boundaries == nil && p.CityID == nil
}

func (d *District) Summary() *DistrictSummary {
	return &DistrictSummary{ID: d.ID, Name: d.Name, CityID: d.CityID}
}
