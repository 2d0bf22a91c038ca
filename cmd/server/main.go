package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"poi-route-service/internal/adapters/cache"
	"poi-route-service/internal/adapters/csvsource"
	"poi-route-service/internal/adapters/distance"
	"poi-route-service/internal/adapters/repositories"
	"poi-route-service/internal/api"
	"poi-route-service/internal/catalog"
	"poi-route-service/internal/config"
	"poi-route-service/internal/platform/db"
	"poi-route-service/internal/services"
)

// main is the application composition root.
// It loads the catalog from the database (and CATALOG_DIR), then serves the route API.
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

	store, err := repositories.NewPlaceStore(ctx, conn, cfg.DBDriver)
	if err != nil {
		log.Fatal(err)
	}

	// Seed demo data on startup for local runs.
	if cfg.SeedPath != "" {
		if err := seed(ctx, store, cfg.SeedPath); err != nil {
			log.Fatal(err)
		}
	}

	cat, err := loadCatalog(ctx, store, cfg.CatalogDir)
	if err != nil {
		log.Fatal(err)
	}

	planner := services.NewRoutePlanner(
		cat,
		distance.NewSpeedTableEstimator(nil),
		services.WithWorkers(cfg.GenerateWorkers),
	)
	routes := cache.NewRouteCache(cfg.RouteTTL)
	router := api.NewRouter(planner, routes, cfg.RouteAlternatives)

	log.Printf("Server listening addr=:%s places=%d", cfg.Port, cat.Len())
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func seed(ctx context.Context, store repositories.PlaceStore, path string) error {
	places, err := csvsource.NewCSVPlaceSource(path).ListPlaces(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if err := store.UpsertPlaces(ctx, places); err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	log.Printf("seeded places=%d path=%s", len(places), path)
	return nil
}

// loadCatalog loads database rows first, then any CSV files in dir, so CSV
// rows override stored ones with the same id.
func loadCatalog(ctx context.Context, store repositories.PlaceStore, dir string) (*catalog.Catalog, error) {
	cat := catalog.New()
	if _, err := cat.LoadFrom(ctx, store); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if dir != "" {
		src, err := csvsource.NewDirectorySource(dir)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		if _, err := cat.LoadFrom(ctx, src); err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}
	return cat, nil
}
