package domain

// Amenity is many-to-many with flats via the flat_amenities join table.
type Amenity struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

// AmenityPatch carries a partial update: nil fields stay untouched.
type AmenityPatch struct {
	Name *string
}

func (p AmenityPatch) Empty() bool { return p.Name == nil }

// FlatAmenity is one row of the join table. Both sides cascade: removing a
// flat or an amenity removes the association.
type FlatAmenity struct {
	FlatID    int64 `json:"flat_id" db:"flat_id"`
	AmenityID int64 `json:"amenity_id" db:"amenity_id"`
}
