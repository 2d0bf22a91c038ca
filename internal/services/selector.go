package services

import (
	"math/rand"

	"poi-route-service/internal/domain"
)

const (
	headPerStop = 10
	maxHeadSize = 40
)

// SelectPlaces chooses at most profile.StopBudget places from pool.
//
// Mandatory categories are served first, one best-scoring place each, in an
// rng-shuffled category order; categories without a candidate are skipped.
// Remaining slots are filled from a shuffled head of the score ranking, and
// finally by uniform draws from the whole pool.
func SelectPlaces(profile domain.TripProfile, pool []*domain.Place, rng *rand.Rand) []*domain.Place {
	budget := profile.StopBudget
	if budget <= 0 || len(pool) == 0 {
		return []*domain.Place{}
	}

	used := make(map[string]struct{}, budget)
	selected := make([]*domain.Place, 0, budget)
	take := func(p *domain.Place) {
		selected = append(selected, p)
		used[p.ID] = struct{}{}
	}
	unused := func() []*domain.Place {
		out := make([]*domain.Place, 0, len(pool))
		for _, p := range pool {
			if _, ok := used[p.ID]; !ok {
				out = append(out, p)
			}
		}
		return out
	}

	mandatory := append([]string(nil), profile.MandatoryCategories...)
	rng.Shuffle(len(mandatory), func(i, j int) { mandatory[i], mandatory[j] = mandatory[j], mandatory[i] })

	for _, category := range mandatory {
		if len(selected) >= budget {
			break
		}

		candidates := make([]*domain.Place, 0)
		for _, p := range unused() {
			if p.HasCategory(category) {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		take(rankByScore(candidates, profile)[0])
	}

	if len(selected) < budget {
		remaining := rankByScore(unused(), profile)
		head := remaining[:min(headPerStop*budget, maxHeadSize, len(remaining))]
		rng.Shuffle(len(head), func(i, j int) { head[i], head[j] = head[j], head[i] })

		for _, p := range head {
			if len(selected) >= budget {
				break
			}
			take(p)
		}
	}

	distinct := make(map[string]struct{}, len(pool))
	for _, p := range pool {
		distinct[p.ID] = struct{}{}
	}

	for len(selected) < budget && len(used) < len(distinct) {
		p := pool[rng.Intn(len(pool))]
		if _, ok := used[p.ID]; ok {
			continue
		}
		take(p)
	}

	return selected
}
