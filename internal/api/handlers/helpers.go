package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"poi-route-service/internal/api/dto"
	"poi-route-service/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

// decodeBody reads exactly one JSON object with no unknown fields.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return errors.New("invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("body must contain only one JSON object")
	}
	return nil
}

func toPlaceResponse(p *domain.Place) dto.PlaceResponse {
	types := append([]string{}, p.Categories...)
	return dto.PlaceResponse{
		ID:                p.ID,
		Name:              p.Name,
		Address:           p.Address,
		Lat:               p.Location.Lat,
		Lng:               p.Location.Lon,
		Coordinates:       p.Location.CoordsToList(),
		Types:             types,
		Rating:            p.RatingScore,
		UserRatingCount:   p.RatingCount,
		PriceLevel:        p.PriceLevel,
		OperationalStatus: p.OperationalStatus,
	}
}

func toRouteResponse(r *domain.Route) dto.RouteResponse {
	res := dto.RouteResponse{
		RouteID:              r.RouteID,
		TravelMode:           string(r.TravelMode),
		Stops:                make([]dto.RouteStopResponse, 0, len(r.Stops)),
		Segments:             make([]dto.SegmentResponse, 0, len(r.Segments)),
		TotalDurationSeconds: r.TotalDurationSeconds,
		TotalDistanceMeters:  r.TotalDistanceMeters,
		Feasible:             r.Feasible,
	}
	for _, s := range r.Stops {
		res.Stops = append(res.Stops, dto.RouteStopResponse{
			Position:            s.Position,
			Place:               toPlaceResponse(s.Place),
			PlannedVisitMinutes: s.PlannedVisitMinutes,
		})
	}
	for _, s := range r.Segments {
		res.Segments = append(res.Segments, dto.SegmentResponse{
			FromPosition:    s.FromPosition,
			ToPosition:      s.ToPosition,
			DurationSeconds: s.DurationSeconds,
			DistanceMeters:  s.DistanceMeters,
		})
	}
	return res
}
