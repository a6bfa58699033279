package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/domain/repository"
	apperrors "github.com/flat-catalog/internal/pkg/errors"
)

type flatAmenityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFlatAmenityRepository(db *DB) repository.FlatAmenityRepository {
	return &flatAmenityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *flatAmenityRepository) list(ctx context.Context, query string, args ...interface{}) ([]*domain.FlatAmenity, error) {
	var associations []*domain.FlatAmenity
	if err := r.db.SelectContext(ctx, &associations, query, args...); err != nil {
		r.logger.Error("Failed to list flat-amenity associations", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	return associations, nil
}

func (r *flatAmenityRepository) GetAll(ctx context.Context) ([]*domain.FlatAmenity, error) {
	return r.list(ctx, `SELECT flat_id, amenity_id FROM flat_amenities ORDER BY flat_id, amenity_id`)
}

func (r *flatAmenityRepository) GetByFlat(ctx context.Context, flatID int64) ([]*domain.FlatAmenity, error) {
	return r.list(ctx,
		`SELECT flat_id, amenity_id FROM flat_amenities WHERE flat_id = $1 ORDER BY amenity_id`, flatID)
}

func (r *flatAmenityRepository) GetByAmenity(ctx context.Context, amenityID int64) ([]*domain.FlatAmenity, error) {
	return r.list(ctx,
		`SELECT flat_id, amenity_id FROM flat_amenities WHERE amenity_id = $1 ORDER BY flat_id`, amenityID)
}

func (r *flatAmenityRepository) Create(ctx context.Context, flatID, amenityID int64) (*domain.FlatAmenity, error) {
	// No check-then-insert: the composite primary key is the uniqueness
	// guard, a duplicate pair comes back as a unique violation.
	query := `
		INSERT INTO flat_amenities (flat_id, amenity_id)
		VALUES ($1, $2)
		RETURNING flat_id, amenity_id`

	var association domain.FlatAmenity
	if err := r.db.GetContext(ctx, &association, query, flatID, amenityID); err != nil {
		r.logger.Error("Failed to create flat-amenity association",
			zap.Int64("flat_id", flatID),
			zap.Int64("amenity_id", amenityID),
			zap.Error(err))
		return nil, translateError(err, apperrors.ErrAssociationNotFound)
	}

	return &association, nil
}

func (r *flatAmenityRepository) Delete(ctx context.Context, flatID, amenityID int64) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM flat_amenities WHERE flat_id = $1 AND amenity_id = $2`, flatID, amenityID)
	if err != nil {
		r.logger.Error("Failed to delete flat-amenity association",
			zap.Int64("flat_id", flatID),
			zap.Int64("amenity_id", amenityID),
			zap.Error(err))
		return false, translateError(err, apperrors.ErrAssociationNotFound)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Error(err))
		return false, apperrors.ErrDatabaseError
	}

	return affected > 0, nil
}
