package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flat-catalog/internal/domain"
	apperrors "github.com/flat-catalog/internal/pkg/errors"
	"github.com/flat-catalog/internal/pkg/geojson"
	"github.com/flat-catalog/internal/repository/postgres"
)

func districtRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "city_id", "boundaries"})
}

func TestDistrictRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDistrictRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM districts WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(districtRows().AddRow(10, "Mokotow", int64(1), warsawBoundary))

	district, err := repo.GetByID(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, "Mokotow", district.Name)
	assert.Equal(t, int64(1), district.CityID)
	require.NotNil(t, district.Boundaries)
	assert.Equal(t, geojson.TypePolygon, district.Boundaries.Type)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistrictRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDistrictRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM districts WHERE id = \$1`).
		WithArgs(int64(42)).
		WillReturnRows(districtRows())

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrDistrictNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistrictRepository_GetByCity(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDistrictRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM districts WHERE city_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(districtRows().
			AddRow(10, "Mokotow", int64(1), nil).
			AddRow(11, "Wola", int64(1), nil))

	districts, err := repo.GetByCity(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, districts, 2)
	assert.Equal(t, "Wola", districts[1].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistrictRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDistrictRepository(db)

	mock.ExpectQuery(`INSERT INTO districts (.+) RETURNING`).
		WithArgs("Mokotow", nil, int64(1)).
		WillReturnRows(districtRows().AddRow(10, "Mokotow", int64(1), nil))

	district, err := repo.Create(context.Background(), &domain.District{Name: "Mokotow", CityID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(10), district.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistrictRepository_Update_PartialPatch(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDistrictRepository(db)

	name := "Stary Mokotow"
	mock.ExpectQuery(`UPDATE districts SET name = \$1 WHERE id = \$2 RETURNING`).
		WithArgs(name, int64(10)).
		WillReturnRows(districtRows().AddRow(10, name, int64(1), nil))

	district, err := repo.Update(context.Background(), 10, domain.DistrictPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, district.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistrictRepository_Update_EmptyPatchReadsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDistrictRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM districts WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnRows(districtRows().AddRow(10, "Mokotow", int64(1), nil))

	district, err := repo.Update(context.Background(), 10, domain.DistrictPatch{})
	require.NoError(t, err)
	assert.Equal(t, "Mokotow", district.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDistrictRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewDistrictRepository(db)

	mock.ExpectExec(`DELETE FROM districts WHERE id = \$1`).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
