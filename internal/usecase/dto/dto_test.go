package dto_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flat-catalog/internal/pkg/validator"
	"github.com/flat-catalog/internal/usecase/dto"
)

// Field length ceilings mirror the store's column widths exactly
// (cities/districts 200, amenities 250, flat title 150): anything the
// validator admits must fit the column, so no valid payload can die on a
// length constraint inside the store.

func TestCityCreateRequest_LengthCeilings(t *testing.T) {
	req := dto.CityCreateRequest{
		Name:    strings.Repeat("n", 200),
		Country: strings.Repeat("c", 200),
	}
	assert.NoError(t, validator.Validate(&req))

	req.Name = strings.Repeat("n", 201)
	assert.Error(t, validator.Validate(&req))
}

func TestDistrictCreateRequest_LengthCeilings(t *testing.T) {
	req := dto.DistrictCreateRequest{
		Name:   strings.Repeat("n", 200),
		CityID: 1,
	}
	assert.NoError(t, validator.Validate(&req))

	req.Name = strings.Repeat("n", 201)
	assert.Error(t, validator.Validate(&req))
}

func TestAmenityCreateRequest_LengthCeilings(t *testing.T) {
	req := dto.AmenityCreateRequest{Name: strings.Repeat("n", 250)}
	assert.NoError(t, validator.Validate(&req))

	req.Name = strings.Repeat("n", 251)
	assert.Error(t, validator.Validate(&req))
}

func TestFlatCreateRequest_TitleCeiling(t *testing.T) {
	long := strings.Repeat("t", 151)
	req := dto.FlatUpdateRequest{Title: &long}
	assert.Error(t, validator.Validate(&req))
}
