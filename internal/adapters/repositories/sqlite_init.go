package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"poi-route-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlacesQuery := `
	CREATE TABLE IF NOT EXISTS places (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		formatted_address TEXT NOT NULL DEFAULT '',
		lat REAL NOT NULL DEFAULT 0,
		lng REAL NOT NULL DEFAULT 0,
		types_json TEXT NOT NULL DEFAULT '[]',
		rating REAL NOT NULL DEFAULT 0,
		user_rating_count INTEGER NOT NULL DEFAULT 0,
		price_level TEXT NOT NULL DEFAULT '',
		business_status TEXT NOT NULL DEFAULT ''
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_places_rating
	ON places(rating);
	`

	statements := []string{
		createPlacesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the places table. Existing ids are updated in place so their
// original load position is kept.
func SeedPlaces(ctx context.Context, db *sql.DB, places []domain.Place) error {
	if db == nil {
		return errors.New("seed places: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed places: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO places (
		id,
		name,
		formatted_address,
		lat,
		lng,
		types_json,
		rating,
		user_rating_count,
		price_level,
		business_status
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT (id) DO UPDATE
	SET name = excluded.name,
		formatted_address = excluded.formatted_address,
		lat = excluded.lat,
		lng = excluded.lng,
		types_json = excluded.types_json,
		rating = excluded.rating,
		user_rating_count = excluded.user_rating_count,
		price_level = excluded.price_level,
		business_status = excluded.business_status;
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed places: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range places {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return fmt.Errorf("seed places: item at index %d: id cannot be empty", i+1)
		}

		types, err := encodeTypes(p.Categories)
		if err != nil {
			return fmt.Errorf("seed places: id=%q: %w", id, err)
		}

		if _, err := stmt.ExecContext(ctx,
			id, p.Name, p.Address, p.Location.Lat, p.Location.Lon, types,
			p.RatingScore, p.RatingCount, p.PriceLevel, p.OperationalStatus,
		); err != nil {
			return fmt.Errorf("seed places: insert id=%q: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed places: commit tx: %w", err)
	}

	return nil
}

func encodeTypes(categories []string) (string, error) {
	if categories == nil {
		categories = []string{}
	}
	b, err := json.Marshal(categories)
	if err != nil {
		return "", fmt.Errorf("encode types: %w", err)
	}
	return string(b), nil
}

// decodeTypes tolerates malformed stored values by returning no categories.
func decodeTypes(raw string) []string {
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	return out
}

// nullablePriceLevel keeps integer price levels stored as numbers readable.
func nullablePriceLevel(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	s := strings.TrimSpace(v.String)
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		return strconv.Itoa(int(f))
	}
	return s
}
