package main

import (
	"context"
	"log"
	"os"

	"poi-route-service/internal/adapters/csvsource"
	"poi-route-service/internal/adapters/repositories"
	"poi-route-service/internal/config"
	"poi-route-service/internal/platform/db"
)

// dbtool initializes the places schema and imports CSV files given as
// arguments (or SEED_PATH) into the configured database.
func main() {
	cfg, err := config.Load(config.Get("CONFIG_FILE", ""))
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	dsn := cfg.DBPath
	if cfg.DBDriver == "postgres" {
		dsn = cfg.DatabaseURL
	}
	conn, err := db.Open(ctx, cfg.DBDriver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Println("Initializing database schema...")
	store, err := repositories.NewPlaceStore(ctx, conn, cfg.DBDriver)
	if err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	paths := os.Args[1:]
	if len(paths) == 0 && cfg.SeedPath != "" {
		paths = []string{cfg.SeedPath}
	}
	if len(paths) == 0 {
		log.Println("No CSV files given; nothing to import.")
		return
	}

	log.Println("Importing places...")
	places, err := csvsource.NewCSVPlaceSource(paths...).ListPlaces(ctx)
	if err != nil {
		log.Fatalf("reading csv failed: %v", err)
	}
	if err := store.UpsertPlaces(ctx, places); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("Import complete. places=%d files=%d", len(places), len(paths))
}
