package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"poi-route-service/internal/domain"
	"poi-route-service/internal/platform/obs"
)

// SQLite-backed implementation of the PlaceSource port.
type SqlitePlaceRepository struct{ DB *sql.DB }

func NewSqlitePlaceRepository(db *sql.DB) *SqlitePlaceRepository {
	return &SqlitePlaceRepository{DB: db}
}

// Return all places in insertion order.
func (s *SqlitePlaceRepository) ListPlaces(ctx context.Context) (_ []domain.Place, err error) {
	defer obs.Time(ctx, "sqlite.ListPlaces")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite place repository: DB is nil")
	}

	query := `
	SELECT
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
	FROM places
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list places: query places table: %w", err)
	}
	defer rows.Close()

	return scanPlaces(rows)
}

func scanPlaces(rows *sql.Rows) ([]domain.Place, error) {
	places := make([]domain.Place, 0, 256)
	for rows.Next() {
		var (
			p      domain.Place
			types  string
			price  sql.NullString
			status sql.NullString
		)
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Address, &p.Location.Lat, &p.Location.Lon,
			&types, &p.RatingScore, &p.RatingCount, &price, &status,
		); err != nil {
			return nil, fmt.Errorf("list places: scan row: %w", err)
		}
		p.Categories = decodeTypes(types)
		p.PriceLevel = nullablePriceLevel(price)
		p.OperationalStatus = status.String
		places = append(places, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list places: row iteration: %w", err)
	}

	return places, nil
}

// UpsertPlaces seeds rows through SeedPlaces.
func (s *SqlitePlaceRepository) UpsertPlaces(ctx context.Context, places []domain.Place) error {
	return SeedPlaces(ctx, s.DB, places)
}
