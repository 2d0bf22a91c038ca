package handlers

import (
	"net/http"

	"poi-route-service/internal/catalog"
)

// Health provides a liveness check that also reports the catalog size.
func Health(cat *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := map[string]any{"status": "ok", "places": cat.Len()}
		writeJSON(w, r, http.StatusOK, res)
	}
}
