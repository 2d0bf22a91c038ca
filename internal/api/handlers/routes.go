package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"poi-route-service/internal/api/dto"
	"poi-route-service/internal/domain"
	"poi-route-service/internal/platform/obs"
	"poi-route-service/internal/ports"
	"poi-route-service/internal/services"
)

const maxAlternatives = 10

// RouteHandler generates routes and applies interactive edits to them.
type RouteHandler struct {
	Planner  *services.RoutePlanner
	Store    ports.RouteStore
	DefaultK int
}

// Generate builds k alternatives for the posted profile and keeps them in
// the store for later edits.
func (h *RouteHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateRoutesRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	k := req.K
	if k == 0 {
		k = h.DefaultK
	}
	if k < 1 || k > maxAlternatives {
		writeError(w, r, http.StatusBadRequest, "k must be between 1 and 10")
		return
	}

	// Sessions are keyed by request id; anonymous requests get their own.
	if strings.TrimSpace(req.Profile["requestId"]) == "" && strings.TrimSpace(req.Profile["tripId"]) == "" {
		if req.Profile == nil {
			req.Profile = map[string]string{}
		}
		req.Profile["requestId"] = uuid.NewString()
	}

	profile := services.ParseTripProfile(req.Profile)
	routes, err := h.Planner.GenerateRoutes(r.Context(), profile, k)
	switch {
	case errors.Is(err, services.ErrInvalidStopBudget),
		errors.Is(err, services.ErrInvalidTimeBudget):
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	case errors.Is(err, services.ErrNoCatalog):
		log.Printf("generate routes failed: %v", err)
		writeError(w, r, http.StatusServiceUnavailable, "place catalog not loaded")
		return
	case err != nil:
		log.Printf("generate routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListRoutesResponse{Routes: make([]dto.RouteResponse, 0, len(routes))}
	for _, route := range routes {
		res.Routes = append(res.Routes, toRouteResponse(route))
	}

	// Responses are built before publishing; stored routes may be edited concurrently.
	if err := h.publish(routes, profile); err != nil {
		if errors.Is(err, ports.ErrRouteExists) {
			writeError(w, r, http.StatusConflict, "requestId already in use")
			return
		}
		log.Printf("store routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, res)
}

// publish stores every route or none of them.
func (h *RouteHandler) publish(routes []*domain.Route, profile domain.TripProfile) error {
	for i, route := range routes {
		if err := h.Store.Add(&ports.RouteSession{Route: route, Profile: profile}); err != nil {
			for _, added := range routes[:i] {
				h.Store.Delete(added.RouteID)
			}
			return err
		}
	}
	return nil
}

// session loads the route named in the URL, writing a 404 when it is unknown.
func (h *RouteHandler) session(w http.ResponseWriter, r *http.Request) (*ports.RouteSession, bool) {
	s, err := h.Store.Get(chi.URLParam(r, "routeID"))
	if errors.Is(err, ports.ErrRouteNotFound) {
		writeError(w, r, http.StatusNotFound, "route not found")
		return nil, false
	}
	if err != nil {
		log.Printf("load route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return nil, false
	}
	return s, true
}

func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	s.Mu.Lock()
	res := toRouteResponse(s.Route)
	s.Mu.Unlock()

	writeJSON(w, r, http.StatusOK, res)
}

// Delete drops the route session. Unknown ids are answered with 404.
func (h *RouteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.session(w, r); !ok {
		return
	}
	h.Store.Delete(chi.URLParam(r, "routeID"))
	w.WriteHeader(http.StatusNoContent)
}

// mutate runs op under the session lock and reports its outcome. Invalid
// input is answered with 422; applied edits and "no candidate" with 200.
func (h *RouteHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	s *ports.RouteSession,
	op func(*ports.RouteSession) services.MutationOutcome,
) {
	defer obs.Time(r.Context(), "routes."+name)(nil)

	s.Mu.Lock()
	outcome := op(s)
	res := dto.MutationResponse{Outcome: outcome.String(), Route: toRouteResponse(s.Route)}
	s.Mu.Unlock()

	status := http.StatusOK
	if outcome == services.OutcomeInvalidInput {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, r, status, res)
}

func (h *RouteHandler) Reroll(w http.ResponseWriter, r *http.Request) {
	var req dto.RerollRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	ov := services.ParseRerollOverrides(req.Overrides)
	h.mutate(w, r, "Reroll", s, func(s *ports.RouteSession) services.MutationOutcome {
		return h.Planner.Mutator().Reroll(s.Route, s.Profile, req.Index, ov, nil)
	})
}

func (h *RouteHandler) InsertStop(w http.ResponseWriter, r *http.Request) {
	var req dto.InsertStopRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	place, found := h.Planner.Catalog().ByID(req.PlaceID)
	if !found {
		writeError(w, r, http.StatusNotFound, "place not found")
		return
	}

	h.mutate(w, r, "Insert", s, func(s *ports.RouteSession) services.MutationOutcome {
		return h.Planner.Mutator().Insert(s.Route, s.Profile, req.Index, place)
	})
}

func (h *RouteHandler) RemoveStop(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "index must be an integer")
		return
	}
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	h.mutate(w, r, "Remove", s, func(s *ports.RouteSession) services.MutationOutcome {
		return h.Planner.Mutator().Remove(s.Route, s.Profile, index)
	})
}

func (h *RouteHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	s, ok := h.session(w, r)
	if !ok {
		return
	}

	h.mutate(w, r, "Reorder", s, func(s *ports.RouteSession) services.MutationOutcome {
		return h.Planner.Mutator().Reorder(s.Route, s.Profile, req.Order)
	})
}
