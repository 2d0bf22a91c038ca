package services

import (
	"math"
	"slices"

	"poi-route-service/internal/domain"
)

const (
	ratingWeight     = 1.0
	popularityWeight = 0.4
	distancePenalty  = 0.05
)

// Score maps a place onto a desirability score for the profile:
//
//	1.0*rating + 0.4*ln(count+1) + sum(weights[tag]) - 0.05*km(center, place)
//
// The distance term is dropped when the profile has no center.
func Score(p *domain.Place, profile domain.TripProfile) float64 {
	popularity := math.Log(float64(max(p.RatingCount, 0)) + 1)

	bonus := 0.0
	for _, c := range p.Categories {
		bonus += profile.CategoryWeights[c]
	}

	penalty := 0.0
	if profile.Center != nil {
		penalty = distancePenalty * profile.Center.DistanceKm(p.Location)
	}

	return ratingWeight*p.RatingScore + popularityWeight*popularity + bonus - penalty
}

type scoredPlace struct {
	place *domain.Place
	score float64
}

// rankByScore returns places ordered by descending score. Equal scores keep
// their input order so ranking is deterministic.
func rankByScore(places []*domain.Place, profile domain.TripProfile) []*domain.Place {
	scored := make([]scoredPlace, 0, len(places))
	for _, p := range places {
		scored = append(scored, scoredPlace{place: p, score: Score(p, profile)})
	}

	slices.SortStableFunc(scored, func(a, b scoredPlace) int {
		switch {
		case a.score > b.score:
			return -1
		case a.score < b.score:
			return 1
		}
		return 0
	})

	out := make([]*domain.Place, 0, len(scored))
	for _, s := range scored {
		out = append(out, s.place)
	}
	return out
}
