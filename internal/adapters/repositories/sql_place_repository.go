package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"poi-route-service/internal/domain"
	"poi-route-service/internal/platform/obs"
)

// SQLPlaceRepository is a Postgres-backed PlaceSource, used through the pgx
// stdlib driver.
type SQLPlaceRepository struct {
	DB *sql.DB
}

func NewSQLPlaceRepository(db *sql.DB) *SQLPlaceRepository {
	return &SQLPlaceRepository{DB: db}
}

// Initialize the Postgres places table.
func InitPostgresSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init postgres schema: DB is nil")
	}

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS places (
		seq BIGSERIAL PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		formatted_address TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL DEFAULT 0,
		lng DOUBLE PRECISION NOT NULL DEFAULT 0,
		types_json TEXT NOT NULL DEFAULT '[]',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		user_rating_count INTEGER NOT NULL DEFAULT 0,
		price_level TEXT NOT NULL DEFAULT '',
		business_status TEXT NOT NULL DEFAULT ''
	);
	`,
		`CREATE INDEX IF NOT EXISTS idx_places_rating ON places(rating);`,
	}

	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init postgres schema: exec statement #%d: %w", i+1, err)
		}
	}
	return nil
}

// Fetch all places in insertion order.
func (s *SQLPlaceRepository) ListPlaces(ctx context.Context) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "postgres.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("place repository: db is nil")
	}

	q := `
	SELECT id, name, formatted_address, lat, lng, types_json,
		rating, user_rating_count, price_level, business_status
	FROM places
	ORDER BY seq;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

// Upsert many places; existing ids keep their sequence position.
func (s *SQLPlaceRepository) UpsertPlaces(ctx context.Context, places []domain.Place) error {
	if s.DB == nil {
		return errors.New("place repository: db is nil")
	}

	if len(places) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("upsert places: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO places (id, name, formatted_address, lat, lng, types_json,
		rating, user_rating_count, price_level, business_status)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (id) DO UPDATE
	SET name = EXCLUDED.name,
		formatted_address = EXCLUDED.formatted_address,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		types_json = EXCLUDED.types_json,
		rating = EXCLUDED.rating,
		user_rating_count = EXCLUDED.user_rating_count,
		price_level = EXCLUDED.price_level,
		business_status = EXCLUDED.business_status;
	`)
	if err != nil {
		return fmt.Errorf("upsert places: db prepare: %w", err)
	}
	defer stmt.Close()

	for _, p := range places {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return fmt.Errorf("upsert places: empty id")
		}

		types, err := encodeTypes(p.Categories)
		if err != nil {
			return fmt.Errorf("upsert places id=%q: %w", id, err)
		}

		if _, err := stmt.ExecContext(ctx,
			id, p.Name, p.Address, p.Location.Lat, p.Location.Lon, types,
			p.RatingScore, p.RatingCount, p.PriceLevel, p.OperationalStatus,
		); err != nil {
			return fmt.Errorf("upsert places id=%q: %w", id, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("upsert places commit: %w", err)
	}

	return nil
}
