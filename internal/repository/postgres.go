package repository

import (
	"context"
	"errors"
	"fmt"

	"hvrdb/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a lookup matches no store.
var ErrNotFound = errors.New("repository: no store found")

const schema = `
	CREATE EXTENSION IF NOT EXISTS postgis;

	CREATE TABLE IF NOT EXISTS stores (
		id BIGSERIAL PRIMARY KEY,
		dataset VARCHAR(64) NOT NULL,
		company VARCHAR(255) NOT NULL DEFAULT '',
		name VARCHAR(255) NOT NULL DEFAULT '',
		category VARCHAR(255) NOT NULL DEFAULT '',
		address VARCHAR(512) NOT NULL DEFAULT '',
		phone VARCHAR(64) NOT NULL DEFAULT '',
		city VARCHAR(255) NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL,
		search_tsvector TSVECTOR GENERATED ALWAYS AS (
			to_tsvector('simple', company || ' ' || name || ' ' || address || ' ' || city)
		) STORED,
		geom GEOGRAPHY(POINT, 4326) GENERATED ALWAYS AS (
			ST_SetSRID(ST_MakePoint(longitude, latitude), 4326)::geography
		) STORED
	);
	CREATE INDEX IF NOT EXISTS stores_geom_idx ON stores USING GIST (geom);
	CREATE INDEX IF NOT EXISTS stores_search_tsvector_idx ON stores USING GIN (search_tsvector);
	CREATE INDEX IF NOT EXISTS stores_category_idx ON stores (category);
`

const selectColumns = `
	id,
	dataset,
	company,
	name,
	category,
	address,
	phone,
	city,
	latitude,
	longitude
`

// Repository stores imported locations in PostgreSQL with PostGIS.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateSchema creates the stores table and its indexes if they do not exist.
func (r *Repository) CreateSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// ReplaceDataset deletes the stores of dataset and bulk inserts locations in one transaction.
func (r *Repository) ReplaceDataset(ctx context.Context, dataset string, locations []models.Location) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM stores WHERE dataset = $1", dataset); err != nil {
		return 0, fmt.Errorf("repository: failed to clear dataset %s: %w", dataset, err)
	}

	n, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"stores"},
		[]string{"dataset", "company", "name", "category", "address", "phone", "city", "latitude", "longitude"},
		pgx.CopyFromSlice(len(locations), func(i int) ([]any, error) {
			l := locations[i]
			return []any{dataset, l.Company, l.Name, l.Category, l.Address, l.Phone, l.City, l.Latitude, l.Longitude}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to copy stores: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repository: failed to commit: %w", err)
	}
	return n, nil
}

// CountStores returns the number of stores imported for dataset.
func (r *Repository) CountStores(ctx context.Context, dataset string) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM stores WHERE dataset = $1", dataset).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to count stores: %w", err)
	}
	return count, nil
}

// SearchStoresByText performs a full-text search over company, name, address and city.
func (r *Repository) SearchStoresByText(ctx context.Context, query string) ([]models.Location, error) {
	sql := `SELECT` + selectColumns + `
		FROM stores
		WHERE search_tsvector @@ plainto_tsquery('simple', $1)
		ORDER BY ts_rank(search_tsvector, plainto_tsquery('simple', $1)) DESC, id
		LIMIT 10
	`
	return r.query(ctx, sql, query)
}

// ListStoresByCategory returns up to 100 stores in category.
func (r *Repository) ListStoresByCategory(ctx context.Context, category string) ([]models.Location, error) {
	sql := `SELECT` + selectColumns + `
		FROM stores
		WHERE category = $1
		ORDER BY id
		LIMIT 100
	`
	return r.query(ctx, sql, category)
}

// FindNearestStore performs a spatial query to find the nearest store within 10km of the given coordinates
func (r *Repository) FindNearestStore(ctx context.Context, lat, lon float64) (*models.Location, error) {
	sql := `SELECT` + selectColumns + `
		FROM stores
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography, 10000)
		ORDER BY geom <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)::geography
		LIMIT 1
	`

	loc, err := scanLocation(r.db.QueryRow(ctx, sql, lat, lon))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}
	return &loc, nil
}

func (r *Repository) query(ctx context.Context, sql string, args ...any) ([]models.Location, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan store: %w", err)
		}
		locations = append(locations, loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

func scanLocation(row pgx.Row) (models.Location, error) {
	var loc models.Location
	err := row.Scan(
		&loc.ID,
		&loc.Dataset,
		&loc.Company,
		&loc.Name,
		&loc.Category,
		&loc.Address,
		&loc.Phone,
		&loc.City,
		&loc.Latitude,
		&loc.Longitude,
	)
	return loc, err
}
