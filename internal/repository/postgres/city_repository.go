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

// cityColumns projects the geometry column as GeoJSON text in the row query
// itself, so no per-record post-processing is needed.
const cityColumns = "id, name, country, ST_AsGeoJSON(boundaries) AS boundaries"

type cityRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCityRepository(db *DB) repository.CityRepository {
	return &cityRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func scanCity(row interface{ Scan(...interface{}) error }) (*domain.City, error) {
	var city domain.City
	var boundaries sql.NullString

	if err := row.Scan(&city.ID, &city.Name, &city.Country, &boundaries); err != nil {
		return nil, err
	}
	if boundaries.Valid {
		g, err := geojson.Decode(boundaries.String)
		if err != nil {
			return nil, err
		}
		city.Boundaries = g
	}
	return &city, nil
}

func (r *cityRepository) GetAll(ctx context.Context) ([]*domain.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list cities", zap.Error(err))
		return nil, translateError(err, apperrors.ErrCityNotFound)
	}
	defer rows.Close()

	var cities []*domain.City
	for rows.Next() {
		city, err := scanCity(rows)
		if err != nil {
			r.logger.Error("Failed to scan city", zap.Error(err))
			return nil, apperrors.ErrDatabaseError
		}
		cities = append(cities, city)
	}

	if err = rows.Err(); err != nil {
		r.logger.Error("Error iterating city rows", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return cities, nil
}

func (r *cityRepository) GetByID(ctx context.Context, id int64) (*domain.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities WHERE id = $1`

	city, err := scanCity(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get city by ID", zap.Int64("id", id), zap.Error(err))
		return nil, translateError(err, apperrors.ErrCityNotFound)
	}

	return city, nil
}

func (r *cityRepository) GetByCountry(ctx context.Context, country string) ([]*domain.City, error) {
	query := `SELECT ` + cityColumns + ` FROM cities WHERE country = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, country)
	if err != nil {
		r.logger.Error("Failed to list cities by country", zap.String("country", country), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	var cities []*domain.City
	for rows.Next() {
		city, err := scanCity(rows)
		if err != nil {
			r.logger.Error("Failed to scan city", zap.Error(err))
			return nil, apperrors.ErrDatabaseError
		}
		cities = append(cities, city)
	}

	if err = rows.Err(); err != nil {
		r.logger.Error("Error iterating city rows", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return cities, nil
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) (*domain.City, error) {
	query := `
		INSERT INTO cities (name, boundaries, country)
		VALUES ($1, ST_SetSRID(ST_GeomFromGeoJSON($2), 4326), $3)
		RETURNING ` + cityColumns

	// ST_GeomFromGeoJSON(NULL) yields NULL, so an absent boundary stores NULL.
	var boundaries *string
	if city.Boundaries != nil {
		encoded, err := geojson.Encode(city.Boundaries, geojson.TypePolygon)
		if err != nil {
			return nil, err
		}
		boundaries = &encoded
	}

	created, err := scanCity(r.db.QueryRowContext(ctx, query, city.Name, boundaries, city.Country))
	if err != nil {
		r.logger.Error("Failed to create city", zap.String("name", city.Name), zap.Error(err))
		return nil, translateError(err, apperrors.ErrCityNotFound)
	}

	return created, nil
}

func (r *cityRepository) Update(ctx context.Context, id int64, patch domain.CityPatch) (*domain.City, error) {
	// An all-nil patch is a valid no-change save.
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	builder := sq.Update("cities").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + cityColumns)

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
	if patch.Country != nil {
		builder = builder.Set("country", *patch.Country)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		r.logger.Error("Failed to build city update", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	city, err := scanCity(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrCityNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update city", zap.Int64("id", id), zap.Error(err))
		return nil, translateError(err, apperrors.ErrCityNotFound)
	}

	return city, nil
}

func (r *cityRepository) Delete(ctx context.Context, id int64) (bool, error) {
	// Districts and flats go with the city through ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM cities WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete city", zap.Int64("id", id), zap.Error(err))
		return false, translateError(err, apperrors.ErrCityNotFound)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Int64("id", id), zap.Error(err))
		return false, apperrors.ErrDatabaseError
	}

	return affected > 0, nil
}
