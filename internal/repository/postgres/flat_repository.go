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

const flatColumns = `id, title, description, address,
			ST_AsGeoJSON(coordinates) AS coordinates,
			floor, rooms_number, square, price, currency, city_id, district_id`

type flatRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFlatRepository(db *DB) repository.FlatRepository {
	return &flatRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func scanFlat(row interface{ Scan(...interface{}) error }) (*domain.Flat, error) {
	var flat domain.Flat
	var coordinates string

	err := row.Scan(
		&flat.ID, &flat.Title, &flat.Description, &flat.Address,
		&coordinates,
		&flat.Floor, &flat.RoomsNumber, &flat.Square, &flat.Price,
		&flat.Currency, &flat.CityID, &flat.DistrictID,
	)
	if err != nil {
		return nil, err
	}

	g, err := geojson.Decode(coordinates)
	if err != nil {
		return nil, err
	}
	flat.Coordinates = g

	return &flat, nil
}

func (r *flatRepository) listFlats(ctx context.Context, query string, args ...interface{}) ([]*domain.Flat, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list flats", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}
	defer rows.Close()

	var flats []*domain.Flat
	for rows.Next() {
		flat, err := scanFlat(rows)
		if err != nil {
			r.logger.Error("Failed to scan flat", zap.Error(err))
			return nil, apperrors.ErrDatabaseError
		}
		flats = append(flats, flat)
	}

	if err = rows.Err(); err != nil {
		r.logger.Error("Error iterating flat rows", zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return flats, nil
}

func (r *flatRepository) GetAll(ctx context.Context) ([]*domain.Flat, error) {
	return r.listFlats(ctx, `SELECT `+flatColumns+` FROM flats ORDER BY id`)
}

func (r *flatRepository) GetByID(ctx context.Context, id int64) (*domain.Flat, error) {
	query := `SELECT ` + flatColumns + ` FROM flats WHERE id = $1`

	flat, err := scanFlat(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrFlatNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get flat by ID", zap.Int64("id", id), zap.Error(err))
		return nil, translateError(err, apperrors.ErrFlatNotFound)
	}

	return flat, nil
}

func (r *flatRepository) GetByCity(ctx context.Context, cityID int64) ([]*domain.Flat, error) {
	return r.listFlats(ctx,
		`SELECT `+flatColumns+` FROM flats WHERE city_id = $1 ORDER BY id`, cityID)
}

func (r *flatRepository) GetByDistrict(ctx context.Context, districtID int64) ([]*domain.Flat, error) {
	return r.listFlats(ctx,
		`SELECT `+flatColumns+` FROM flats WHERE district_id = $1 ORDER BY id`, districtID)
}

func (r *flatRepository) Create(ctx context.Context, flat *domain.Flat) (*domain.Flat, error) {
	query := `
		INSERT INTO flats (
			title, description, address, coordinates,
			floor, rooms_number, square, price, currency, city_id, district_id
		)
		VALUES ($1, $2, $3, ST_SetSRID(ST_GeomFromGeoJSON($4), 4326),
			$5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + flatColumns

	encoded, err := geojson.Encode(flat.Coordinates, geojson.TypePoint)
	if err != nil {
		return nil, err
	}

	currency := flat.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	created, err := scanFlat(r.db.QueryRowContext(ctx, query,
		flat.Title, flat.Description, flat.Address, encoded,
		flat.Floor, flat.RoomsNumber, flat.Square, flat.Price,
		currency, flat.CityID, flat.DistrictID,
	))
	if err != nil {
		r.logger.Error("Failed to create flat",
			zap.String("title", flat.Title),
			zap.Int64("city_id", flat.CityID),
			zap.Int64("district_id", flat.DistrictID),
			zap.Error(err))
		return nil, translateError(err, apperrors.ErrFlatNotFound)
	}

	return created, nil
}

func (r *flatRepository) Update(ctx context.Context, id int64, patch domain.FlatPatch) (*domain.Flat, error) {
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	builder := sq.Update("flats").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + flatColumns)

	if patch.Title != nil {
		builder = builder.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Address != nil {
		builder = builder.Set("address", *patch.Address)
	}
	if patch.Coordinates != nil {
		encoded, err := geojson.Encode(patch.Coordinates, geojson.TypePoint)
		if err != nil {
			return nil, err
		}
		builder = builder.Set("coordinates", sq.Expr("ST_SetSRID(ST_GeomFromGeoJSON(?), 4326)", encoded))
	}
	if patch.Floor != nil {
		builder = builder.Set("floor", *patch.Floor)
	}
	if patch.RoomsNumber != nil {
		builder = builder.Set("rooms_number", *patch.RoomsNumber)
	}
	if patch.Square != nil {
		builder = builder.Set("square", *patch.Square)
	}
	if patch.Price != nil {
		builder = builder.Set("price", *patch.Price)
	}
	if patch.Currency != nil {
		builder = builder.Set("currency", *patch.Currency)
	}
	if patch.CityID != nil {
		builder = builder.Set("city_id", *patch.CityID)
	}
	if patch.DistrictID != nil {
		builder = builder.Set("district_id", *patch.DistrictID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		r.logger.Error("Failed to build flat update", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	flat, err := scanFlat(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, apperrors.ErrFlatNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update flat", zap.Int64("id", id), zap.Error(err))
		return nil, translateError(err, apperrors.ErrFlatNotFound)
	}

	return flat, nil
}

func (r *flatRepository) Delete(ctx context.Context, id int64) (bool, error) {
	// Join rows go with the flat through ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM flats WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete flat", zap.Int64("id", id), zap.Error(err))
		return false, translateError(err, apperrors.ErrFlatNotFound)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read delete result", zap.Int64("id", id), zap.Error(err))
		return false, apperrors.ErrDatabaseError
	}

	return affected > 0, nil
}
