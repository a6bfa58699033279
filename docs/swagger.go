// Package docs Flat Catalog API.
//
// CRUD API over a geospatial flat-rental catalog: cities, districts, flats
// and amenities. City and district boundaries are stored as WGS-84 polygons,
// flat positions as points; all geometry crosses the wire as GeoJSON.
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
