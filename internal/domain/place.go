package domain

import "strings"

// StatusOperational is the only business status that keeps a place eligible.
const StatusOperational = "OPERATIONAL"

// Represents a single point of interest from the catalog.
// A Place is created once at catalog load and never mutated afterwards;
// routes hold shared pointers to it. Categories are stored lower-cased.
type Place struct {
	ID                string
	Name              string
	Address           string
	Location          Coordinates
	Categories        []string
	RatingScore       float64
	RatingCount       int
	PriceLevel        string
	OperationalStatus string
}

// HasCategory reports whether the place carries tag (case-insensitive).
func (p *Place) HasCategory(tag string) bool {
	t := strings.ToLower(strings.TrimSpace(tag))
	if t == "" {
		return false
	}
	for _, c := range p.Categories {
		if c == t {
			return true
		}
	}
	return false
}

// PrimaryCategory returns the first category tag, or "" if the place has none.
func (p *Place) PrimaryCategory() string {
	if len(p.Categories) == 0 {
		return ""
	}
	return p.Categories[0]
}

// IsOperational treats an absent status as operational.
func (p *Place) IsOperational() bool {
	s := strings.TrimSpace(p.OperationalStatus)
	return s == "" || strings.EqualFold(s, StatusOperational)
}
