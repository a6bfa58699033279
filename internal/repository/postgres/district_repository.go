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
	"github.com/flat-catalog/internal/pkg/geojson"
)

const districtColumns = "id, name, city_id, ST_AsGeoJSON(boundaries) AS boundaries"

type districtRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewDistrictRepository(db *DB) repository.DistrictRepository {
	return &districtRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func scanDistrict(row interface{ Scan(...interface{}) error }) (*domain.District, error) {
	var district domain.District
	var boundaries sql.NullString

	if err := row.Scan(&district.ID, &district.Name, &district.CityID, &boundaries); err != nil {
		return nil, err
	}
	if boundaries.Valid {
		g, err := geojson.Decode(boundaries.String)
		if err != nil {
			return nil, err
		}
		district.Boundaries = g
	}
	return &district, nil
}

func (r *districtRepository) listDistricts(ctx context.Context, query string, args ...interface{}) ([]*domain.District, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list districts", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	var districts []*domain.District
	for rows.Next() {
		district, err := scanDistrict(rows)
		if err != nil {
			r.logger.Error("Failed to scan district", zap.Error(err))
			return nil, apperrors.ErrDatabaseError
		}
		districts = append(districts, district)
	}

	if err = rows.Err(); err != nil {
		r.logger.Error("Error iterating district rows", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return districts, nil
}

func (r *districtRepository) GetAll(ctx context.Context) ([]*domain.District, error) {
	return r.listDistricts(ctx, `SELECT `+districtColumns+` FROM districts ORDER BY id`)
}

func (r *districtRepository) GetByID(ctx context.Context, id int64) (*domain.District, error) {
	query := `SELECT ` + districtColumns + ` FROM districts WHERE id = $1`

	district, err := scanDistrict(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrDistrictNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get district by ID", zap.Int64("id", id), zap.Error(err))
		return nil, translateError(err, apperrors.ErrDistrictNotFound)
	}

	return district, nil
}

func (r *districtRepository) GetByCity(ctx context.Context, cityID int64) ([]*domain.District, error) {
	return r.listDistricts(ctx,
		`SELECT `+districtColumns+` FROM districts WHERE city_id = $1 ORDER BY id`, cityID)
}

func (r *districtRepository) Create(ctx context.Context, district *domain.District) (*domain.District, error) {
	query := `
		INSERT INTO districts (name, boundaries, city_id)
		VALUES ($1, ST_SetSRID(ST_GeomFromGeoJSON($2), 4326), $3)
		RETURNING ` + districtColumns

	var boundaries *string
	if district.Boundaries != nil {
		encoded, err := geojson.Encode(district.Boundaries, geojson.TypePolygon)
		if err != nil {
			return nil, err
		}
		boundaries = &encoded
	}

	created, err := scanDistrict(r.db.QueryRowContext(ctx, query, district.Name, boundaries, district.CityID))
	if err != nil {
		r.logger.Error("Failed to create district",
			zap.String("name", district.Name),
			zap.Int64("city_id", district.CityID),
			zap.Error(err))
		return nil, translateError(err, apperrors.ErrDistrictNotFound)
	}

	return created, nil
}

func (r *districtRepository) Update(ctx context.Context, id int64, patch domain.DistrictPatch) (*domain.District, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	builder := sq.Update("districts").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + districtColumns)

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Boundaries != nil {
		encoded, err := geojson.Encode(patch.Boundaries, geojson.TypePolygon)
		if err != nil {
			return nil, err
		}
		builder = builder.Set("boundaries", sq.Expr("ST_SetSRID(ST_GeomFromGeoJSON(?), 4326)", encoded))
	}
	if patch.CityID != nil {
		builder = builder.Set("city_id", *patch.CityID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		r.logger.Error("Failed to build district update", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	district, err := scanDistrict(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrDistrictNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update district", zap.Int64("id", id), zap.Error(err))
		return nil, translateError(err, apperrors.ErrDistrictNotFound)
	}

	return district, nil
}

func (r *districtRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM districts WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete district", zap.Int64("id", id), zap.Error(err))
		return false, translateError(err, apperrors.ErrDistrictNotFound)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Int64("id", id), zap.Error(err))
		return false, apperrors.ErrDatabaseError
	}

	return affected > 0, nil
}
