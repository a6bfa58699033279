package postgres

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/flat-catalog/internal/domain"
	"github.com/flat-catalog/internal/domain/repository"
	apperrors "github.com/flat-catalog/internal/pkg/errors"
)

type amenityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewAmenityRepository(db *DB) repository.AmenityRepository {
	return &amenityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *amenityRepository) listAmenities(ctx context.Context, query string, args ...interface{}) ([]*domain.Amenity, error) {
	var amenities []*domain.Amenity
	if err := r.db.SelectContext(ctx, &amenities, query, args...); err != nil {
		r.logger.Error("Failed to list amenities", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	return amenities, nil
}

func (r *amenityRepository) GetAll(ctx context.Context) ([]*domain.Amenity, error) {
	return r.listAmenities(ctx, `SELECT id, name FROM amenities ORDER BY id`)
}

func (r *amenityRepository) GetByID(ctx context.Context, id int64) (*domain.Amenity, error) {
	var amenity domain.Amenity
	err := r.db.GetContext(ctx, &amenity, `SELECT id, name FROM amenities WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrAmenityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get amenity by ID", zap.Int64("id", id), zap.Error(err))
		return nil, translateError(err, apperrors.ErrAmenityNotFound)
	}
	return &amenity, nil
}

func (r *amenityRepository) GetByFlat(ctx context.Context, flatID int64) ([]*domain.Amenity, error) {
	query := `
		SELECT a.id, a.name
		FROM amenities a
		JOIN flat_amenities fa ON fa.amenity_id = a.id
		WHERE fa.flat_id = $1
		ORDER BY a.id`
	return r.listAmenities(ctx, query, flatID)
}

func (r *amenityRepository) Create(ctx context.Context, amenity *domain.Amenity) (*domain.Amenity, error) {
	var created domain.Amenity
	err := r.db.GetContext(ctx, &created,
		`INSERT INTO amenities (name) VALUES ($1) RETURNING id, name`, amenity.Name)
	if err != nil {
		r.logger.Error("Failed to create amenity", zap.String("name", amenity.Name), zap.Error(err))
		return nil, translateError(err, apperrors.ErrAmenityNotFound)
	}
	return &created, nil
}

func (r *amenityRepository) Update(ctx context.Context, id int64, patch domain.AmenityPatch) (*domain.Amenity, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	builder := sq.Update("amenities").
		PlaceholderFormat(sq.Dollar).
		Set("name", *patch.Name).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name")

	query, args, err := builder.ToSql()
	if err != nil {
		r.logger.Error("Failed to build amenity update", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	var amenity domain.Amenity
	err = r.db.GetContext(ctx, &amenity, query, args...)
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrAmenityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update amenity", zap.Int64("id", id), zap.Error(err))
		return nil, translateError(err, apperrors.ErrAmenityNotFound)
	}
	return &amenity, nil
}

func (r *amenityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete amenity", zap.Int64("id", id), zap.Error(err))
		return false, translateError(err, apperrors.ErrAmenityNotFound)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Int64("id", id), zap.Error(err))
		return false, apperrors.ErrDatabaseError
	}

	return affected > 0, nil
}
