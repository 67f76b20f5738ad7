package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/domain/repository"
	"github.com/aqarview/geosearch/internal/pkg/errors"
)

type listingRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewListingRepository(db *DB) repository.ListingRepository {
	return &listingRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

const listingColumns = `
	id, lat, lon, final_lat, final_lon,
	COALESCE(title, '') AS title,
	COALESCE(price_num::text, '') AS price_num,
	COALESCE(property_type, '') AS property_type,
	COALESCE(district, '') AS district,
	COALESCE(city, '') AS city,
	image_url, rooms, baths, halls,
	COALESCE(area_m2::text, '') AS area_m2,
	COALESCE(purpose, '') AS purpose
`

func (r *listingRepository) Search(ctx context.Context, q domain.ListingQuery) ([]domain.Listing, error) {
	query := `
		SELECT ` + listingColumns + `
		FROM properties
		WHERE purpose = $1
		  AND city = $2
		  AND final_lat IS NOT NULL
		  AND final_lon IS NOT NULL
		  AND final_lat BETWEEN $3 AND $4
		  AND final_lon BETWEEN $5 AND $6
	`

	args := []interface{}{
		q.Purpose, q.City,
		q.Bounds.South, q.Bounds.North,
		q.Bounds.West, q.Bounds.East,
	}
	argIdx := 7

	if q.PropertyType != "" {
		query += fmt.Sprintf(" AND property_type = $%d", argIdx)
		args = append(args, q.PropertyType)
		argIdx++
	}

	if q.District != "" {
		query += fmt.Sprintf(" AND district = $%d", argIdx)
		args = append(args, q.District)
		argIdx++
	}

	if q.Text != "" {
		query += fmt.Sprintf(
			" AND (city ILIKE $%d OR district ILIKE $%d OR title ILIKE $%d)",
			argIdx, argIdx, argIdx,
		)
		args = append(args, "%"+q.Text+"%")
		argIdx++
	}

	if q.Rooms != nil {
		query += fmt.Sprintf(" AND rooms = $%d", argIdx)
		args = append(args, *q.Rooms)
		argIdx++
	}

	if q.Baths != nil {
		query += fmt.Sprintf(" AND baths = $%d", argIdx)
		args = append(args, *q.Baths)
		argIdx++
	}

	if q.Halls != nil {
		query += fmt.Sprintf(" AND halls = $%d", argIdx)
		args = append(args, *q.Halls)
		argIdx++
	}

	query += fmt.Sprintf(" ORDER BY id LIMIT $%d", argIdx)
	args = append(args, q.Limit)

	var listings []domain.Listing
	if err := r.db.SelectContext(ctx, &listings, query, args...); err != nil {
		r.logger.Error("Failed to search listings",
			zap.String("purpose", q.Purpose),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return listings, nil
}

func (r *listingRepository) DistinctPropertyTypes(ctx context.Context, search string) ([]string, error) {
	query := `
		SELECT DISTINCT property_type
		FROM properties
		WHERE property_type IS NOT NULL AND property_type <> ''
	`
	var args []interface{}
	if search != "" {
		query += " AND property_type ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY property_type"

	var types []string
	if err := r.db.SelectContext(ctx, &types, query, args...); err != nil {
		r.logger.Error("Failed to get property types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return types, nil
}

func (r *listingRepository) DistinctDistricts(ctx context.Context, search string) ([]string, error) {
	query := `
		SELECT DISTINCT district
		FROM properties
		WHERE district IS NOT NULL AND district <> ''
	`
	var args []interface{}
	if search != "" {
		query += " AND district ILIKE $1"
		args = append(args, "%"+search+"%")
	}
	query += " ORDER BY district"

	var districts []string
	if err := r.db.SelectContext(ctx, &districts, query, args...); err != nil {
		r.logger.Error("Failed to get districts", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return districts, nil
}
