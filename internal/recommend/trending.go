// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"math"
	"time"
)

// categoryWindow is the recency cutoff for category trending.
const categoryWindow = 7 * 24 * time.Hour

// Trending ranks published recipes by trend score. The period only moves
// the cutoff for the recency bonus; decay and velocity windows are fixed.
func (e *Engine) Trending(limit int, period Period) []ScoredRecipe {
	if limit <= 0 {
		return []ScoredRecipe{}
	}
	cutoff := e.now.Add(-period.Window())

	scored := make([]ScoredRecipe, 0, len(e.published))
	for i := range e.published {
		scored = append(scored, ScoredRecipe{
			Recipe: e.published[i],
			Score:  e.trendScore(&e.published[i], cutoff),
		})
	}
	return rank(scored, limit)
}

// TrendingByCategory ranks the published recipes matching a category by
// trend score with a 7-day cutoff. Unknown categories yield an empty list.
func (e *Engine) TrendingByCategory(category string, limit int) []ScoredRecipe {
	keywords := CategoryKeywords(category)
	if len(keywords) == 0 || limit <= 0 {
		return []ScoredRecipe{}
	}
	cutoff := e.now.Add(-categoryWindow)

	var scored []ScoredRecipe
	for i := range e.published {
		if !e.texts[i].matchesAny(keywords) {
			continue
		}
		scored = append(scored, ScoredRecipe{
			Recipe: e.published[i],
			Score:  e.trendScore(&e.published[i], cutoff),
		})
	}
	if scored == nil {
		return []ScoredRecipe{}
	}
	return rank(scored, limit)
}

// TrendingForNewUsers ranks well-established recipes for users with no
// history. Only recipes rated 4.0 or better by at least 3 users qualify.
func (e *Engine) TrendingForNewUsers(limit int) []ScoredRecipe {
	if limit <= 0 {
		return []ScoredRecipe{}
	}

	scored := []ScoredRecipe{}
	for i := range e.published {
		r := &e.published[i]
		if r.AverageRating < 4.0 || r.RatingsCount < 3 {
			continue
		}
		scored = append(scored, ScoredRecipe{
			Recipe: *r,
			Score:  newUserScore(r),
		})
	}
	return rank(scored, limit)
}

// trendScore combines rating quality, decaying recency, engagement rate and
// popularity. Recipes created on or after cutoff earn the recency bonus.
func (e *Engine) trendScore(r *Recipe, cutoff time.Time) float64 {
	days := e.now.Sub(r.CreatedAt).Hours() / 24
	count := float64(r.RatingsCount)

	score := r.AverageRating * 20

	if !r.CreatedAt.Before(cutoff) {
		score += 40 * math.Max(0.1, 1-days/30)
	}

	score += math.Min(count/math.Max(days, 1)*15, 50)
	score += math.Min(math.Log(count+1)*8, 60)

	if r.AverageRating >= 4.5 && r.RatingsCount >= 3 {
		score += 35
	}
	// Velocity: many ratings within the first week.
	if days <= 7 && r.RatingsCount >= 5 {
		score += 25
	}
	if r.AverageRating >= 4.0 && r.RatingsCount >= 2 {
		score += 15
	}

	return math.Max(0, score)
}

func newUserScore(r *Recipe) float64 {
	score := r.AverageRating*30 + math.Min(float64(r.RatingsCount)*3, 60)
	if r.AverageRating >= 4.5 && r.RatingsCount >= 5 {
		score += 40
	}
	if total := r.TotalTime(); total > 0 && total <= 60 {
		score += 20
	}
	return score
}
