// Package catalog holds the immutable set of points of interest for a
// session and answers filter and lookup queries over it.
//
// Loading is single-writer: every Load must finish and Freeze must be called
// before the catalog is shared with concurrent readers. Once frozen, the
// catalog is safe for any number of concurrent readers.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"poi-route-service/internal/domain"
	"poi-route-service/internal/ports"
)

// ErrFrozen is returned when loading into a catalog that has been frozen.
var ErrFrozen = errors.New("catalog is frozen")

type Catalog struct {
	places []*domain.Place
	byID   map[string]int
	frozen bool
}

func New() *Catalog {
	return &Catalog{byID: make(map[string]int)}
}

// Load ingests tabular records. Rows without an id are skipped; a repeated id
// replaces the earlier record in place (last write wins). It returns the
// number of rows accepted.
func (c *Catalog) Load(records []Record) (int, error) {
	places := make([]domain.Place, 0, len(records))
	for _, r := range records {
		p, ok := ParseRecord(r)
		if !ok {
			continue
		}
		places = append(places, p)
	}
	return c.LoadPlaces(places)
}

// LoadPlaces ingests already-typed places with the same merge rules as Load.
// Categories are normalized to lower case on the way in.
func (c *Catalog) LoadPlaces(places []domain.Place) (int, error) {
	if c.frozen {
		return 0, ErrFrozen
	}

	n := 0
	for _, p := range places {
		p.ID = strings.TrimSpace(p.ID)
		if p.ID == "" {
			continue
		}
		p.Categories = NormalizeCategories(p.Categories)

		stored := p
		if i, ok := c.byID[p.ID]; ok {
			c.places[i] = &stored
		} else {
			c.byID[p.ID] = len(c.places)
			c.places = append(c.places, &stored)
		}
		n++
	}
	return n, nil
}

// LoadFrom pulls every place from src into the catalog.
func (c *Catalog) LoadFrom(ctx context.Context, src ports.PlaceSource) (int, error) {
	places, err := src.ListPlaces(ctx)
	if err != nil {
		return 0, fmt.Errorf("catalog load: %w", err)
	}
	n, err := c.LoadPlaces(places)
	if err != nil {
		return 0, fmt.Errorf("catalog load: %w", err)
	}
	return n, nil
}

// Freeze ends the loading phase.
func (c *Catalog) Freeze() { c.frozen = true }

func (c *Catalog) Frozen() bool { return c.frozen }

func (c *Catalog) Len() int { return len(c.places) }

// All returns every place in load order.
func (c *Catalog) All() []*domain.Place {
	return append([]*domain.Place(nil), c.places...)
}

func (c *Catalog) filter(keep func(*domain.Place) bool) []*domain.Place {
	out := make([]*domain.Place, 0)
	for _, p := range c.places {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// ByCategory matches tags case-insensitively. An empty tag matches nothing.
func (c *Catalog) ByCategory(tag string) []*domain.Place {
	if strings.TrimSpace(tag) == "" {
		return []*domain.Place{}
	}
	return c.filter(func(p *domain.Place) bool { return p.HasCategory(tag) })
}

func (c *Catalog) ByMinRating(score float64) []*domain.Place {
	return c.filter(func(p *domain.Place) bool { return p.RatingScore >= score })
}

// ByNameSubstring is a case-insensitive substring match. An empty query
// matches nothing.
func (c *Catalog) ByNameSubstring(query string) []*domain.Place {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []*domain.Place{}
	}
	return c.filter(func(p *domain.Place) bool {
		return strings.Contains(strings.ToLower(p.Name), q)
	})
}

// ByPriceLevel is an exact match on the trimmed price level.
func (c *Catalog) ByPriceLevel(level string) []*domain.Place {
	l := strings.TrimSpace(level)
	if l == "" {
		return []*domain.Place{}
	}
	return c.filter(func(p *domain.Place) bool { return strings.TrimSpace(p.PriceLevel) == l })
}

func (c *Catalog) ByID(id string) (*domain.Place, bool) {
	i, ok := c.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, false
	}
	return c.places[i], true
}

// ByIDs returns the places that exist, in input order, duplicates preserved.
func (c *Catalog) ByIDs(ids []string) []*domain.Place {
	out := make([]*domain.Place, 0, len(ids))
	for _, id := range ids {
		if p, ok := c.ByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}
