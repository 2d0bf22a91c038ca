package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"poi-route-service/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "places.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSqlitePlaceRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	store, err := NewPlaceStore(ctx, db, "sqlite")
	require.NoError(t, err)
	require.NoError(t, InitSchema(db), "schema creation is idempotent")

	seed := []domain.Place{
		{
			ID:                "p1",
			Name:              "Anitkabir",
			Address:           "Ankara",
			Location:          domain.Coordinates{Lat: 39.925, Lon: 32.836},
			Categories:        []string{"museum", "tourist_attraction"},
			RatingScore:       4.9,
			RatingCount:       12000,
			PriceLevel:        "1",
			OperationalStatus: "OPERATIONAL",
		},
		{ID: "p2", Name: "Kugulu Park", Categories: []string{"park"}},
	}
	require.NoError(t, store.UpsertPlaces(ctx, seed))

	places, err := store.ListPlaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, seed, places)
}

func TestSeedPlacesUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	require.NoError(t, InitSchema(db))

	require.NoError(t, SeedPlaces(ctx, db, []domain.Place{{ID: "a", Name: "first"}, {ID: "b", Name: "second"}}))
	require.NoError(t, SeedPlaces(ctx, db, []domain.Place{{ID: "a", Name: "renamed", RatingScore: 4.1}}))

	places, err := NewSqlitePlaceRepository(db).ListPlaces(ctx)
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "a", places[0].ID)
	assert.Equal(t, "renamed", places[0].Name)
	assert.Equal(t, 4.1, places[0].RatingScore)
	assert.Equal(t, "b", places[1].ID)
}

func TestNilDB(t *testing.T) {
	assert.Error(t, InitSchema(nil))
	assert.Error(t, SeedPlaces(context.Background(), nil, nil))

	_, err := NewSqlitePlaceRepository(nil).ListPlaces(context.Background())
	assert.Error(t, err)
}

func TestNewPlaceStoreUnknownDriver(t *testing.T) {
	_, err := NewPlaceStore(context.Background(), openTestDB(t), "oracle")
	assert.Error(t, err)
}
