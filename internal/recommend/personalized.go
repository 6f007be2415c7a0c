// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"math"
)

// Recommendations ranks published recipes for the user, skipping any ID
// in exclude. At most limit recipes are returned.
func (e *Engine) Recommendations(exclude []string, limit int) []ScoredRecipe {
	if limit <= 0 {
		return []ScoredRecipe{}
	}

	skip := toSet(exclude)
	scored := make([]ScoredRecipe, 0, len(e.published))
	for i := range e.published {
		if _, ok := skip[e.published[i].ID]; ok {
			continue
		}
		score, reasons := e.personalScore(i)
		scored = append(scored, ScoredRecipe{
			Recipe:  e.published[i],
			Score:   score,
			Reasons: reasons,
		})
	}

	ranked := rank(scored, limit)
	e.logger.Debug().
		Int("candidates", len(scored)).
		Int("excluded", len(skip)).
		Int("returned", len(ranked)).
		Msg("personalized recommendations ranked")
	return ranked
}

// personalScore scores published[i] against the user's preferences.
func (e *Engine) personalScore(i int) (float64, []string) {
	r := &e.published[i]
	text := e.texts[i]
	w := e.cfg.Weights
	t := e.cfg.Thresholds

	var reasons []string
	score := r.AverageRating * w.Rating

	if r.AverageRating >= t.HighlyRated {
		reasons = append(reasons, ReasonHighlyRated)
	}
	if len(e.cuisineKW) > 0 && text.matchesAny(e.cuisineKW) {
		score += w.Cuisine
		reasons = append(reasons, ReasonCuisine)
	}
	if len(e.dietaryKW) > 0 && text.matchesAny(e.dietaryKW) {
		score += w.Dietary
		reasons = append(reasons, ReasonDietary)
	}
	if e.prefs.CookingTime > 0 && r.TotalTime() <= e.prefs.CookingTime {
		score += w.CookTime
		reasons = append(reasons, ReasonCookTime)
	}
	if len(e.mealTypeKW) > 0 && text.matchesAny(e.mealTypeKW) {
		score += w.MealType
		reasons = append(reasons, ReasonMealType)
	}
	if r.RatingsCount > t.PopularRatings {
		score += w.Popularity
		reasons = append(reasons, ReasonPopular)
	}
	if r.CreatedAt.After(e.now.Add(-t.RecentWindow)) {
		score += w.Recency
		reasons = append(reasons, ReasonRecent)
	}
	// Compares the user's own rating habits with the recipe's reception;
	// no other user's behavior is involved.
	if e.rated && e.meanGiven >= t.AffinityRating && r.AverageRating >= t.AffinityRating {
		score += w.RatingAffinity
		reasons = append(reasons, ReasonRatingAffinity)
	}

	return math.Max(0, score), reasons
}
