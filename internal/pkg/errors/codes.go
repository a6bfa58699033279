package errors

import "net/http"

var (
	ErrCityNotFound = New(
		"CITY_NOT_FOUND",
		"City not found",
		http.StatusNotFound,
	)

	ErrDistrictNotFound = New(
		"DISTRICT_NOT_FOUND",
		"District not found",
		http.StatusNotFound,
	)

	ErrFlatNotFound = New(
		"FLAT_NOT_FOUND",
		"Flat not found",
		http.StatusNotFound,
	)

	ErrAmenityNotFound = New(
		"AMENITY_NOT_FOUND",
		"Amenity not found",
		http.StatusNotFound,
	)

	ErrAssociationNotFound = New(
		"ASSOCIATION_NOT_FOUND",
		"Flat-amenity association not found",
		http.StatusNotFound,
	)

	ErrInvalidGeometry = New(
		"INVALID_GEOMETRY",
		"Invalid GeoJSON geometry",
		http.StatusBadRequest,
	)

	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request payload",
		http.StatusBadRequest,
	)

	ErrIntegrityViolation = New(
		"INTEGRITY_VIOLATION",
		"Operation violates a store constraint",
		http.StatusConflict,
	)

	ErrDuplicateAssociation = New(
		"DUPLICATE_ASSOCIATION",
		"Flat-amenity association already exists",
		http.StatusConflict,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.StatusCode == http.StatusNotFound
}
