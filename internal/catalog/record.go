package catalog

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"poi-route-service/internal/domain"
)

// Record is one tabular catalog row keyed by column name.
type Record map[string]string

// Alternate column spellings accepted for each field, in lookup order.
var (
	colID          = []string{"id"}
	colName        = []string{"name"}
	colAddress     = []string{"formatted_address", "formattedAddress"}
	colLat         = []string{"lat", "latitude"}
	colLng         = []string{"lng", "longtitude", "longitude"}
	colTypes       = []string{"types"}
	colRating      = []string{"rating", "ratingScore"}
	colRatingCount = []string{"user_rating_count", "ratingCount"}
	colPriceLevel  = []string{"price_level", "priceLevel"}
	colStatus      = []string{"business_status", "businessStatus"}
)

// first returns the first non-empty trimmed value among the given columns.
func (r Record) first(cols []string) string {
	for _, c := range cols {
		if v := strings.TrimSpace(r[c]); v != "" {
			return v
		}
	}
	return ""
}

// ParseRecord converts a row into a Place. Malformed numerics default to
// zero; ok is false only when the row has no id.
func ParseRecord(r Record) (domain.Place, bool) {
	id := r.first(colID)
	if id == "" {
		return domain.Place{}, false
	}

	return domain.Place{
		ID:      id,
		Name:    r.first(colName),
		Address: r.first(colAddress),
		Location: domain.Coordinates{
			Lat: ParseFloat(r.first(colLat), 0),
			Lon: ParseFloat(r.first(colLng), 0),
		},
		Categories:        ParseCategories(r.first(colTypes)),
		RatingScore:       ParseFloat(r.first(colRating), 0),
		RatingCount:       ParseInt(r.first(colRatingCount), 0),
		PriceLevel:        r.first(colPriceLevel),
		OperationalStatus: r.first(colStatus),
	}, true
}

// ParseCategories accepts a JSON array, a pipe-delimited or a comma-delimited
// list and returns lower-cased, trimmed, non-empty tags.
func ParseCategories(cell string) []string {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}

	var parts []string
	var arr []any
	switch {
	case json.Unmarshal([]byte(s), &arr) == nil:
		for _, v := range arr {
			switch t := v.(type) {
			case string:
				parts = append(parts, t)
			case nil:
			default:
				parts = append(parts, jsonScalar(t))
			}
		}
	case strings.Contains(s, "|"):
		parts = strings.Split(s, "|")
	default:
		parts = strings.Split(s, ",")
	}

	return NormalizeCategories(parts)
}

// NormalizeCategories lower-cases and trims tags, dropping empties.
func NormalizeCategories(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func jsonScalar(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// ParseFloat returns def for empty or unparsable input.
func ParseFloat(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// ParseInt accepts integral or decimal text ("12", "12.0") and truncates.
func ParseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f := ParseFloat(s, math.NaN())
	if math.IsNaN(f) {
		return def
	}
	return int(f)
}
