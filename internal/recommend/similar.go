// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"math"
)

// Similarity points.
const (
	titleWordPoints       = 5
	descriptionWordPoints = 2
	closeTimePoints       = 10
	nearTimePoints        = 5
	servingsPoints        = 5
	ratingPoints          = 8

	closeTimeMinutes = 15
	nearTimeMinutes  = 30
	servingsSlack    = 1
	ratingSlack      = 0.5
)

// Similar ranks published recipes by likeness to the recipe baseID.
// The base recipe is never included. An unknown baseID yields an empty list.
func (e *Engine) Similar(baseID string, limit int) []ScoredRecipe {
	base, ok := e.all[baseID]
	if !ok {
		e.logger.Debug().Str("recipe_id", baseID).Msg("similar: base recipe not found")
		return []ScoredRecipe{}
	}
	if limit <= 0 {
		return []ScoredRecipe{}
	}

	baseTitle := words(base.Title)
	baseDesc := words(base.Description)

	scored := make([]ScoredRecipe, 0, len(e.published))
	for i := range e.published {
		r := &e.published[i]
		if r.ID == baseID {
			continue
		}
		scored = append(scored, ScoredRecipe{
			Recipe: *r,
			Score:  similarity(base, r, baseTitle, baseDesc),
		})
	}
	return rank(scored, limit)
}

// similarity scores other against base. baseTitle and baseDesc are the
// pre-split words of base.
func similarity(base, other *Recipe, baseTitle, baseDesc []string) float64 {
	score := float64(titleWordPoints * sharedWords(baseTitle, words(other.Title)))

	if base.Description != "" && other.Description != "" {
		score += float64(descriptionWordPoints * sharedWords(baseDesc, words(other.Description)))
	}

	switch diff := absInt(base.TotalTime() - other.TotalTime()); {
	case diff <= closeTimeMinutes:
		score += closeTimePoints
	case diff <= nearTimeMinutes:
		score += nearTimePoints
	}

	if absInt(base.Servings-other.Servings) <= servingsSlack {
		score += servingsPoints
	}
	if math.Abs(base.AverageRating-other.AverageRating) <= ratingSlack {
		score += ratingPoints
	}
	return score
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
