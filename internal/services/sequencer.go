package services

import (
	"math"

	"poi-route-service/internal/domain"
)

// SequenceTour orders places into a visiting sequence using a greedy
// nearest-neighbor pass.
//
// The tour starts at the place nearest the profile center when one is set,
// otherwise at the best-scoring place. Each step appends the unvisited place
// closest to the current one; ties go to the earliest input position.
// It does not attempt global tour optimization.
func SequenceTour(places []*domain.Place, profile domain.TripProfile) []*domain.Place {
	if len(places) <= 2 {
		return append([]*domain.Place(nil), places...)
	}

	start := 0
	if profile.Center != nil {
		best := math.Inf(1)
		for i, p := range places {
			if d := profile.Center.DistanceKm(p.Location); d < best {
				best, start = d, i
			}
		}
	} else {
		best := math.Inf(-1)
		for i, p := range places {
			if s := Score(p, profile); s > best {
				best, start = s, i
			}
		}
	}

	visited := make([]bool, len(places))
	visited[start] = true
	ordered := make([]*domain.Place, 0, len(places))
	ordered = append(ordered, places[start])
	current := places[start]

	for len(ordered) < len(places) {
		next := -1
		minKm := math.Inf(1)

		// Select next stop by minimum great-circle distance (greedy step).
		for i, p := range places {
			if visited[i] {
				continue
			}
			// Strict comparison keeps the earliest input position on ties.
			if d := current.Location.DistanceKm(p.Location); next == -1 || d < minKm {
				minKm, next = d, i
			}
		}

		visited[next] = true
		current = places[next]
		ordered = append(ordered, current)
	}

	return ordered
}
