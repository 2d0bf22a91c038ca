package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"poi-route-service/internal/api/handlers"
	"poi-route-service/internal/ports"
	"poi-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// Handlers only see the planner and the RouteStore port, never concrete adapters.
func NewRouter(planner *services.RoutePlanner, store ports.RouteStore, defaultK int) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware)

	placeHandler := &handlers.PlaceHandler{Catalog: planner.Catalog()}
	routeHandler := &handlers.RouteHandler{
		Planner:  planner,
		Store:    store,
		DefaultK: defaultK,
	}

	r.Get("/health", handlers.Health(planner.Catalog()))

	r.Get("/places", placeHandler.List)
	r.Get("/places/{placeID}", placeHandler.Get)

	r.Route("/routes", func(r chi.Router) {
		r.Post("/", routeHandler.Generate)
		r.Route("/{routeID}", func(r chi.Router) {
			r.Get("/", routeHandler.Get)
			r.Delete("/", routeHandler.Delete)
			r.Post("/reroll", routeHandler.Reroll)
			r.Post("/reorder", routeHandler.Reorder)
			r.Post("/stops", routeHandler.InsertStop)
			r.Delete("/stops/{index}", routeHandler.RemoveStop)
		})
	})

	return r
}
