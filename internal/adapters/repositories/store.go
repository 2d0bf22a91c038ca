package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"poi-route-service/internal/domain"
	"poi-route-service/internal/ports"
)

// PlaceStore is a database-backed place source that can also be seeded.
type PlaceStore interface {
	ports.PlaceSource
	UpsertPlaces(ctx context.Context, places []domain.Place) error
}

// NewPlaceStore creates the schema for driver on db and returns the matching
// repository.
func NewPlaceStore(ctx context.Context, db *sql.DB, driver string) (PlaceStore, error) {
	switch driver {
	case "sqlite":
		if err := InitSchema(db); err != nil {
			return nil, fmt.Errorf("new place store: %w", err)
		}
		return NewSqlitePlaceRepository(db), nil
	case "postgres":
		if err := InitPostgresSchema(ctx, db); err != nil {
			return nil, fmt.Errorf("new place store: %w", err)
		}
		return NewSQLPlaceRepository(db), nil
	default:
		return nil, fmt.Errorf("new place store: unsupported driver %q", driver)
	}
}
