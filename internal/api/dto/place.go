package dto

type PlaceResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"formatted_address"`
	Lat               float64   `json:"lat"`
	Lng               float64   `json:"lng"`
	Coordinates       []float64 `json:"coordinates"` // GeoJSON order: [lng, lat]
	Types             []string  `json:"types"`
	Rating            float64   `json:"rating"`
	UserRatingCount   int       `json:"user_rating_count"`
	PriceLevel        string    `json:"price_level,omitempty"`
	OperationalStatus string    `json:"business_status,omitempty"`
}

type ListPlacesResponse struct {
	Places []PlaceResponse `json:"places"`
}
