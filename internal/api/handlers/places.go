package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"poi-route-service/internal/api/dto"
	"poi-route-service/internal/catalog"
	"poi-route-service/internal/domain"
)

// PlaceHandler exposes read-only catalog queries.
type PlaceHandler struct {
	Catalog *catalog.Catalog
}

// List narrows the catalog by every query parameter given: ids, name,
// category, price_level and min_rating. With none it returns all places.
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var queries [][]*domain.Place
	if ids := strings.TrimSpace(q.Get("ids")); ids != "" {
		queries = append(queries, h.Catalog.ByIDs(strings.Split(ids, ",")))
	}
	if name := q.Get("name"); name != "" {
		queries = append(queries, h.Catalog.ByNameSubstring(name))
	}
	if category := q.Get("category"); category != "" {
		queries = append(queries, h.Catalog.ByCategory(category))
	}
	if level := q.Get("price_level"); level != "" {
		queries = append(queries, h.Catalog.ByPriceLevel(level))
	}
	if raw := q.Get("min_rating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "min_rating must be a number")
			return
		}
		queries = append(queries, h.Catalog.ByMinRating(minRating))
	}

	places := h.Catalog.All()
	if len(queries) > 0 {
		places = queries[0]
		for _, other := range queries[1:] {
			places = intersect(places, other)
		}
	}

	res := dto.ListPlacesResponse{Places: make([]dto.PlaceResponse, 0, len(places))}
	for _, p := range places {
		res.Places = append(res.Places, toPlaceResponse(p))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Catalog.ByID(chi.URLParam(r, "placeID"))
	if !ok {
		writeError(w, r, http.StatusNotFound, "place not found")
		return
	}
	writeJSON(w, r, http.StatusOK, toPlaceResponse(p))
}

// intersect keeps the elements of a (in a's order) that also appear in b.
func intersect(a, b []*domain.Place) []*domain.Place {
	in := make(map[*domain.Place]struct{}, len(b))
	for _, p := range b {
		in[p] = struct{}{}
	}

	out := make([]*domain.Place, 0, len(a))
	for _, p := range a {
		if _, ok := in[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
