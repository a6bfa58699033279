package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/flat-catalog/internal/domain"
	apperrors "github.com/flat-catalog/internal/pkg/errors"
	"github.com/flat-catalog/internal/pkg/geojson"
	"github.com/flat-catalog/internal/usecase"
	"github.com/flat-catalog/internal/usecase/dto"
)

func newCityUseCase() (*usecase.CityUseCase, *mockCityRepo, *mockDistrictRepo) {
	cityRepo := new(mockCityRepo)
	districtRepo := new(mockDistrictRepo)
	uc := usecase.NewCityUseCase(cityRepo, districtRepo, zap.NewNop())
	return uc, cityRepo, districtRepo
}

func TestCityUseCase_GetByID_EmbedsDistricts(t *testing.T) {
	uc, cityRepo, districtRepo := newCityUseCase()
	ctx := context.Background()

	cityRepo.On("GetByID", ctx, int64(1)).Return(&domain.City{
		ID: 1, Name: "Warsaw", Country: "Poland",
	}, nil)
	districtRepo.On("GetByCity", ctx, int64(1)).Return([]*domain.District{
		{ID: 10, Name: "Mokotow", CityID: 1},
		{ID: 11, Name: "Wola", CityID: 1},
	}, nil)

	city, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, city.Districts, 2)
	assert.Equal(t, "Mokotow", city.Districts[0].Name)

	cityRepo.AssertExpectations(t)
	districtRepo.AssertExpectations(t)
}

func TestCityUseCase_GetByID_DistrictFailureDegrades(t *testing.T) {
	uc, cityRepo, districtRepo := newCityUseCase()
	ctx := context.Background()

	cityRepo.On("GetByID", ctx, int64(1)).Return(&domain.City{ID: 1, Name: "Warsaw"}, nil)
	districtRepo.On("GetByCity", ctx, int64(1)).Return(nil, apperrors.ErrDatabaseError)

	city, err := uc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, city.Districts)
}

func TestCityUseCase_Create_RejectsInvalidBoundary(t *testing.T) {
	uc, cityRepo, _ := newCityUseCase()

	// A point is not an acceptable boundary.
	point := geojson.PointFromLatLon(52.2297, 21.0122)
	_, err := uc.Create(context.Background(), dto.CityCreateRequest{
		Name: "Warsaw", Country: "Poland", Boundaries: point,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGeometry)
	cityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCityUseCase_Create_RejectsOpenRing(t *testing.T) {
	uc, cityRepo, _ := newCityUseCase()

	open, err := geojson.Decode(`{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,1]]]}`)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CityCreateRequest{
		Name: "Warsaw", Country: "Poland", Boundaries: open,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidGeometry)
	cityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCityUseCase_Create_BoundaryOptional(t *testing.T) {
	uc, cityRepo, _ := newCityUseCase()
	ctx := context.Background()

	cityRepo.On("Create", ctx, mock.AnythingOfType("*domain.City")).Return(&domain.City{
		ID: 1, Name: "Warsaw", Country: "Poland",
	}, nil)

	city, err := uc.Create(ctx, dto.CityCreateRequest{Name: "Warsaw", Country: "Poland"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), city.ID)

	cityRepo.AssertExpectations(t)
}

func TestCityUseCase_Update_PassesPatchThrough(t *testing.T) {
	uc, cityRepo, _ := newCityUseCase()
	ctx := context.Background()

	name := "Warszawa"
	cityRepo.On("Update", ctx, int64(1), mock.MatchedBy(func(p domain.CityPatch) bool {
		return p.Name != nil && *p.Name == name && p.Country == nil && p.Boundaries == nil
	})).Return(&domain.City{ID: 1, Name: name, Country: "Poland"}, nil)

	city, err := uc.Update(ctx, 1, dto.CityUpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, city.Name)

	cityRepo.AssertExpectations(t)
}

func TestCityUseCase_Delete(t *testing.T) {
	uc, cityRepo, _ := newCityUseCase()
	ctx := context.Background()

	cityRepo.On("Delete", ctx, int64(1)).Return(true, nil)

	deleted, err := uc.Delete(ctx, 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	cityRepo.AssertExpectations(t)
}

func TestCityUseCase_Delete_Missing(t *testing.T) {
	uc, cityRepo, _ := newCityUseCase()
	ctx := context.Background()

	cityRepo.On("Delete", ctx, int64(99)).Return(false, nil)

	deleted, err := uc.Delete(ctx, 99)
	require.NoError(t, err)
	assert.False(t, deleted)
}
