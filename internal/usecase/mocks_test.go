package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/flat-catalog/internal/domain"
)

type mockCityRepo struct{ mock.Mock }

func (m *mockCityRepo) GetAll(ctx context.Context) ([]*domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.City), args.Error(1)
}

func (m *mockCityRepo) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *mockCityRepo) GetByCountry(ctx context.Context, country string) ([]*domain.City, error) {
	args := m.Called(ctx, country)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.City), args.Error(1)
}

func (m *mockCityRepo) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *mockCityRepo) Update(ctx context.Context, id int64, patch domain.CityPatch) (*domain.City, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *mockCityRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockDistrictRepo struct{ mock.Mock }

func (m *mockDistrictRepo) GetAll(ctx context.Context) ([]*domain.District, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.District), args.Error(1)
}

func (m *mockDistrictRepo) GetByID(ctx context.Context, id int64) (*domain.District, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *mockDistrictRepo) GetByCity(ctx context.Context, cityID int64) ([]*domain.District, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.District), args.Error(1)
}

func (m *mockDistrictRepo) Create(ctx context.Context, district *domain.District) (*domain.District, error) {
	args := m.Called(ctx, district)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *mockDistrictRepo) Update(ctx context.Context, id int64, patch domain.DistrictPatch) (*domain.District, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.District), args.Error(1)
}

func (m *mockDistrictRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockFlatRepo struct{ mock.Mock }

func (m *mockFlatRepo) GetAll(ctx context.Context) ([]*domain.Flat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Flat), args.Error(1)
}

func (m *mockFlatRepo) GetByID(ctx context.Context, id int64) (*domain.Flat, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flat), args.Error(1)
}

func (m *mockFlatRepo) GetByCity(ctx context.Context, cityID int64) ([]*domain.Flat, error) {
	args := m.Called(ctx, cityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Flat), args.Error(1)
}

func (m *mockFlatRepo) GetByDistrict(ctx context.Context, districtID int64) ([]*domain.Flat, error) {
	args := m.Called(ctx, districtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Flat), args.Error(1)
}

func (m *mockFlatRepo) Create(ctx context.Context, flat *domain.Flat) (*domain.Flat, error) {
	args := m.Called(ctx, flat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flat), args.Error(1)
}

func (m *mockFlatRepo) Update(ctx context.Context, id int64, patch domain.FlatPatch) (*domain.Flat, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flat), args.Error(1)
}

func (m *mockFlatRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockAmenityRepo struct{ mock.Mock }

func (m *mockAmenityRepo) GetAll(ctx context.Context) ([]*domain.Amenity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Amenity), args.Error(1)
}

func (m *mockAmenityRepo) GetByID(ctx context.Context, id int64) (*domain.Amenity, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Amenity), args.Error(1)
}

func (m *mockAmenityRepo) GetByFlat(ctx context.Context, flatID int64) ([]*domain.Amenity, error) {
	args := m.Called(ctx, flatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Amenity), args.Error(1)
}

func (m *mockAmenityRepo) Create(ctx context.Context, amenity *domain.Amenity) (*domain.Amenity, error) {
	args := m.Called(ctx, amenity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Amenity), args.Error(1)
}

func (m *mockAmenityRepo) Update(ctx context.Context, id int64, patch domain.AmenityPatch) (*domain.Amenity, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Amenity), args.Error(1)
}

func (m *mockAmenityRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockFlatAmenityRepo struct{ mock.Mock }

func (m *mockFlatAmenityRepo) GetAll(ctx context.Context) ([]*domain.FlatAmenity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FlatAmenity), args.Error(1)
}

func (m *mockFlatAmenityRepo) GetByFlat(ctx context.Context, flatID int64) ([]*domain.FlatAmenity, error) {
	args := m.Called(ctx, flatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FlatAmenity), args.Error(1)
}

func (m *mockFlatAmenityRepo) GetByAmenity(ctx context.Context, amenityID int64) ([]*domain.FlatAmenity, error) {
	args := m.Called(ctx, amenityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FlatAmenity), args.Error(1)
}

func (m *mockFlatAmenityRepo) Create(ctx context.Context, flatID, amenityID int64) (*domain.FlatAmenity, error) {
	args := m.Called(ctx, flatID, amenityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FlatAmenity), args.Error(1)
}

func (m *mockFlatAmenityRepo) Delete(ctx context.Context, flatID, amenityID int64) (bool, error) {
	args := m.Called(ctx, flatID, amenityID)
	return args.Bool(0), args.Error(1)
}
