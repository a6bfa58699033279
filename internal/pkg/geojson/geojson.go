// Package geojson converts between wire-level GeoJSON geometry and the
// values stored in PostGIS geometry columns. All stored geometry is WGS-84
// (SRID 4326): inserts bind the encoded text into
// ST_SetSRID(ST_GeomFromGeoJSON($n), 4326), reads project the column back
// with ST_AsGeoJSON in the same query.
package geojson

import (
	"encoding/json"

	"github.com/flat-catalog/internal/pkg/errors"
)

// SRID is the spatial reference for every stored geometry.
const SRID = 4326

const (
	TypePoint   = "Point"
	TypePolygon = "Polygon"
)

// Geometry is a GeoJSON geometry object. Coordinates stay raw until a typed
// accessor parses them, so the same struct carries points and polygons.
type Geometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// Position is a [lon, lat] pair.
type Position [2]float64

func (p Position) Lon() float64 { return p[0] }
func (p Position) Lat() float64 { return p[1] }

func validPosition(p Position) bool {
	return p.Lat() >= -90 && p.Lat() <= 90 && p.Lon() >= -180 && p.Lon() <= 180
}

// Point parses the coordinates of a Point geometry.
func (g *Geometry) Point() (Position, error) {
	var pos Position
	if g.Type != TypePoint {
		return pos, errors.ErrInvalidGeometry
	}
	var coords []float64
	if err := json.Unmarshal(g.Coordinates, &coords); err != nil || len(coords) != 2 {
		return pos, errors.ErrInvalidGeometry
	}
	pos = Position{coords[0], coords[1]}
	if !validPosition(pos) {
		return pos, errors.ErrInvalidGeometry
	}
	return pos, nil
}

// Polygon parses the coordinates of a Polygon geometry.
func (g *Geometry) Polygon() ([][]Position, error) {
	if g.Type != TypePolygon {
		return nil, errors.ErrInvalidGeometry
	}
	var rings [][][]float64
	if err := json.Unmarshal(g.Coordinates, &rings); err != nil || len(rings) == 0 {
		return nil, errors.ErrInvalidGeometry
	}
	result := make([][]Position, 0, len(rings))
	for _, ring := range rings {
		// A linear ring has at least 4 positions and is closed.
		if len(ring) < 4 {
			return nil, errors.ErrInvalidGeometry
		}
		positions := make([]Position, 0, len(ring))
		for _, c := range ring {
			if len(c) != 2 {
				return nil, errors.ErrInvalidGeometry
			}
			pos := Position{c[0], c[1]}
			if !validPosition(pos) {
				return nil, errors.ErrInvalidGeometry
			}
			positions = append(positions, pos)
		}
		if positions[0] != positions[len(positions)-1] {
			return nil, errors.ErrInvalidGeometry
		}
		result = append(result, positions)
	}
	return result, nil
}

// Validate checks that g is a well-formed geometry of the expected type.
func (g *Geometry) Validate(expectedType string) error {
	if g == nil || g.Type != expectedType {
		return errors.ErrInvalidGeometry
	}
	switch g.Type {
	case TypePoint:
		_, err := g.Point()
		return err
	case TypePolygon:
		_, err := g.Polygon()
		return err
	default:
		return errors.ErrInvalidGeometry
	}
}

// Encode validates g against expectedType and returns canonical GeoJSON text
// ready to bind into ST_GeomFromGeoJSON.
func Encode(g *Geometry, expectedType string) (string, error) {
	if err := g.Validate(expectedType); err != nil {
		return "", err
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return "", errors.ErrInvalidGeometry
	}
	return string(raw), nil
}

// Decode parses ST_AsGeoJSON output back into a wire geometry.
func Decode(s string) (*Geometry, error) {
	var g Geometry
	if err := json.Unmarshal([]byte(s), &g); err != nil {
		return nil, errors.ErrInvalidGeometry
	}
	if g.Type == "" || len(g.Coordinates) == 0 {
		return nil, errors.ErrInvalidGeometry
	}
	return &g, nil
}

// PointFromLatLon builds a Point geometry from a latitude/longitude pair.
// Used by the bulk loader, whose source records carry raw coordinates.
func PointFromLatLon(lat, lon float64) *Geometry {
	coords, _ := json.Marshal([]float64{lon, lat})
	return &Geometry{
		Type:        TypePoint,
		Coordinates: coords,
	}
}
