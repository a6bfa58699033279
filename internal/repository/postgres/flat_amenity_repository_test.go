package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/flat-catalog/internal/pkg/errors"
	"github.com/flat-catalog/internal/repository/postgres"
)

func associationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"flat_id", "amenity_id"})
}

func TestFlatAmenityRepository_GetByFlat(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFlatAmenityRepository(db)

	mock.ExpectQuery(`SELECT flat_id, amenity_id FROM flat_amenities WHERE flat_id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(associationRows().AddRow(int64(1), int64(2)).AddRow(int64(1), int64(5)))

	associations, err := repo.GetByFlat(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, associations, 2)
	assert.Equal(t, int64(2), associations[0].AmenityID)
	assert.Equal(t, int64(5), associations[1].AmenityID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlatAmenityRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFlatAmenityRepository(db)

	mock.ExpectQuery(`INSERT INTO flat_amenities (.+) RETURNING flat_id, amenity_id`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(associationRows().AddRow(int64(1), int64(2)))

	association, err := repo.Create(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), association.FlatID)
	assert.Equal(t, int64(2), association.AmenityID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlatAmenityRepository_Create_DuplicatePair(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFlatAmenityRepository(db)

	// The composite primary key rejects the second insert of the same pair.
	mock.ExpectQuery(`INSERT INTO flat_amenities (.+) RETURNING flat_id, amenity_id`).
		WithArgs(int64(1), int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "flat_amenities_pkey"})

	_, err := repo.Create(context.Background(), 1, 2)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateAssociation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlatAmenityRepository_Create_MissingFlat(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFlatAmenityRepository(db)

	mock.ExpectQuery(`INSERT INTO flat_amenities (.+) RETURNING flat_id, amenity_id`).
		WithArgs(int64(99), int64(2)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "flat_amenities_flat_id_fkey"})

	_, err := repo.Create(context.Background(), 99, 2)
	assert.ErrorIs(t, err, apperrors.ErrIntegrityViolation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlatAmenityRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFlatAmenityRepository(db)

	mock.ExpectExec(`DELETE FROM flat_amenities WHERE flat_id = \$1 AND amenity_id = \$2`).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	deleted, err := repo.Delete(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.True(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFlatAmenityRepository_Delete_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := postgres.NewFlatAmenityRepository(db)

	mock.ExpectExec(`DELETE FROM flat_amenities WHERE flat_id = \$1 AND amenity_id = \$2`).
		WithArgs(int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.Delete(context.Background(), 1, 9)
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.NoError(t, mock.ExpectationsWereMet())
}
