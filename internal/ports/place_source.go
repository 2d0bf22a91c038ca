package ports

import (
	"context"
	"poi-route-service/internal/domain"
)

// Port: a boundary for retrieving catalog places from an upstream store.
type PlaceSource interface {
	// Retrieve every place the source holds, in a stable order.
	ListPlaces(ctx context.Context) ([]domain.Place, error)
}
