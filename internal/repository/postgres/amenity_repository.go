package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/aqarview/geosearch/internal/domain"
	"github.com/aqarview/geosearch/internal/domain/repository"
	"github.com/aqarview/geosearch/internal/pkg/errors"
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

// Gender and level values already offered as predefined facet options;
// distinct lookups only surface values outside these sets.
var (
	predefinedGenders = []string{"boys", "girls", "both"}
	predefinedLevels  = []string{"nursery", "kindergarten", "elementary", "middle", "high"}
)

func (r *amenityRepository) GetByCategory(
	ctx context.Context,
	category domain.AmenityCategory,
	filter domain.AmenityFilter,
) ([]domain.AmenityPoint, error) {
	var query string
	var args []interface{}
	argIdx := 1

	switch category {
	case domain.AmenitySchool:
		query = `
			SELECT id, name, NULL::text AS name_en, lat, lon, gender, primary_level, district
			FROM schools
			WHERE lat IS NOT NULL AND lon IS NOT NULL AND name IS NOT NULL
		`
		if filter.Gender != "" {
			query += fmt.Sprintf(" AND gender = $%d", argIdx)
			args = append(args, filter.Gender)
			argIdx++
		}
		if filter.Level != "" {
			query += fmt.Sprintf(" AND primary_level = $%d", argIdx)
			args = append(args, filter.Level)
			argIdx++
		}
		if filter.Search != "" {
			query += fmt.Sprintf(" AND (name ILIKE $%d OR district ILIKE $%d)", argIdx, argIdx)
			args = append(args, "%"+filter.Search+"%")
			argIdx++
		}

	case domain.AmenityUniversity:
		query = `
			SELECT id, name, name_en, lat, lon,
			       NULL::text AS gender, NULL::text AS primary_level, district
			FROM universities
			WHERE lat IS NOT NULL AND lon IS NOT NULL AND name IS NOT NULL
		`
		if filter.Search != "" {
			query += fmt.Sprintf(" AND (name ILIKE $%d OR name_en ILIKE $%d)", argIdx, argIdx)
			args = append(args, "%"+filter.Search+"%")
			argIdx++
		}

	case domain.AmenityMosque:
		query = `
			SELECT id, name, NULL::text AS name_en, lat, lon,
			       NULL::text AS gender, NULL::text AS primary_level, district
			FROM mosques
			WHERE lat IS NOT NULL AND lon IS NOT NULL AND name IS NOT NULL
		`

	case domain.AmenityMetro:
		query = `
			SELECT id, name, name_en, lat, lon,
			       NULL::text AS gender, NULL::text AS primary_level, NULL::text AS district
			FROM metro_stations
			WHERE lat IS NOT NULL AND lon IS NOT NULL AND name IS NOT NULL
		`

	default:
		return nil, errors.ErrInvalidAmenityCategory
	}

	query += " ORDER BY name"

	var points []domain.AmenityPoint
	if err := r.db.SelectContext(ctx, &points, query, args...); err != nil {
		r.logger.Error("Failed to get amenity points",
			zap.String("category", string(category)),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return points, nil
}

func (r *amenityRepository) DistinctSchoolGenders(ctx context.Context, search string) ([]string, error) {
	query := `
		SELECT DISTINCT gender
		FROM schools
		WHERE gender IS NOT NULL AND gender <> ''
		  AND gender ILIKE $1
		  AND LOWER(gender) <> ALL($2)
		ORDER BY gender
	`

	var genders []string
	err := r.db.SelectContext(ctx, &genders, query, "%"+search+"%", pq.Array(predefinedGenders))
	if err != nil {
		r.logger.Error("Failed to get school genders", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return genders, nil
}

func (r *amenityRepository) DistinctSchoolLevels(ctx context.Context, search string) ([]string, error) {
	query := `
		SELECT DISTINCT primary_level
		FROM schools
		WHERE primary_level IS NOT NULL AND primary_level <> ''
		  AND primary_level ILIKE $1
		  AND LOWER(primary_level) <> ALL($2)
		ORDER BY primary_level
	`

	var levels []string
	err := r.db.SelectContext(ctx, &levels, query, "%"+search+"%", pq.Array(predefinedLevels))
	if err != nil {
		r.logger.Error("Failed to get school levels", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return levels, nil
}
