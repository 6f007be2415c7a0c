// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

// ForOccasion ranks published recipes by keyword relevance to an occasion.
// Title hits are worth 10 and description hits 5. Recipes with no hits are
// dropped, so an unknown occasion yields an empty list.
func (e *Engine) ForOccasion(occasion string, limit int) []ScoredRecipe {
	keywords := OccasionKeywords(occasion)
	if len(keywords) == 0 || limit <= 0 {
		return []ScoredRecipe{}
	}

	scored := []ScoredRecipe{}
	for i := range e.published {
		title, desc := e.texts[i].hits(keywords)
		relevance := 10*title + 5*desc
		if relevance == 0 {
			continue
		}
		scored = append(scored, ScoredRecipe{
			Recipe: e.published[i],
			Score:  float64(relevance),
		})
	}

	ranked := rank(scored, limit)
	e.logger.Debug().
		Str("occasion", occasion).
		Int("matched", len(scored)).
		Int("returned", len(ranked)).
		Msg("occasion recommendations ranked")
	return ranked
}
