package dto

// GenerateRoutesRequest carries the flat trip profile mapping, including any
// weight_<category> keys, and the number of alternatives wanted.
type GenerateRoutesRequest struct {
	Profile map[string]string `json:"profile"`
	K       int               `json:"k"`
}

type RouteStopResponse struct {
	Position            int           `json:"position"`
	Place               PlaceResponse `json:"place"`
	PlannedVisitMinutes int           `json:"planned_visit_minutes"`
}

type SegmentResponse struct {
	FromPosition    int     `json:"from_position"`
	ToPosition      int     `json:"to_position"`
	DurationSeconds int     `json:"duration_seconds"`
	DistanceMeters  float64 `json:"distance_meters"`
}

type RouteResponse struct {
	RouteID              string              `json:"route_id"`
	TravelMode           string              `json:"travel_mode"`
	Stops                []RouteStopResponse `json:"stops"`
	Segments             []SegmentResponse   `json:"segments"`
	TotalDurationSeconds int                 `json:"total_duration_seconds"`
	TotalDistanceMeters  float64             `json:"total_distance_meters"`
	Feasible             bool                `json:"feasible"`
}

type ListRoutesResponse struct {
	Routes []RouteResponse `json:"routes"`
}

// RerollRequest overrides are the "type", "minRating" and "maxPriceLevel" keys.
type RerollRequest struct {
	Index     int               `json:"index"`
	Overrides map[string]string `json:"overrides"`
}

type InsertStopRequest struct {
	Index   int    `json:"index"`
	PlaceID string `json:"place_id"`
}

type ReorderRequest struct {
	Order []int `json:"order"`
}

type MutationResponse struct {
	Outcome string        `json:"outcome"`
	Route   RouteResponse `json:"route"`
}
