package domain

import "github.com/flat-catalog/internal/pkg/geojson"

// City owns districts and flats; deleting a city cascades to both at the
// store level.
type City struct {
	ID         int64             `json:"id" db:"id"`
	Name       string            `json:"name" db:"name"`
	Boundaries *geojson.Geometry `json:"boundaries,omitempty" db:"-"`
	Country    string            `json:"country" db:"country"`

	// Districts is populated on single-city reads only.
	Districts []*District `json:"districts,omitempty" db:"-"`
}

// CitySummary is the nested parent representation embedded in district and
// flat responses.
type CitySummary struct {
	ID      int64  `json:"id" db:"id"`
	Name    string `json:"name" db:"name"`
	Country string `json:"country" db:"country"`
}

// CityPatch carries a partial update: nil fields stay untouched.
type CityPatch struct {
	Name       *string
	Boundaries *geojson.Geometry
	Country    *string
}

// Empty reports whether the patch changes nothing.
func (p CityPatch) Empty() bool {
	return p.Name == nil && p.Boundaries == nil && p.Country == nil
}

func (c *City) Summary() *CitySummary {
	return &CitySummary{ID: c.ID, Name: c.Name, Country: c.Country}
}
