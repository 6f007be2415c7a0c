// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

package recommend

import (
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// Engine answers recommendation queries over one user's snapshot.
type Engine struct {
	cfg    *Config
	logger zerolog.Logger
	now    time.Time

	// all indexes every input recipe by ID, published or not.
	all map[string]*Recipe

	// published holds the published recipes in input order, with texts[i]
	// the lowercased search text of published[i].
	published []Recipe
	texts     []searchText

	prefs       Preferences
	cuisineKW   []string
	dietaryKW   []string
	mealTypeKW  []string
	viewHistory []string

	// meanGiven is the mean of the ratings the user gave; rated is false
	// when the user has rated nothing.
	meanGiven float64
	rated     bool
}

// NewEngine builds an engine from a snapshot. A nil cfg uses DefaultConfig.
// The input is not retained beyond read-only copies.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func NewEngine(in Input, cfg *Config, logger zerolog.Logger) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	e := &Engine{
		cfg:         cfg.Clone(),
		logger:      logger.With().Str("component", "recommend").Logger(),
		now:         now,
		all:         make(map[string]*Recipe, len(in.Recipes)),
		published:   make([]Recipe, 0, len(in.Recipes)),
		prefs:       in.Preferences,
		viewHistory: append([]string(nil), in.ViewHistory...),
	}

	for i := range in.Recipes {
		r := in.Recipes[i]
		if _, dup := e.all[r.ID]; !dup {
			e.all[r.ID] = &r
		}
		if r.IsPublished {
			e.published = append(e.published, r)
		}
	}
	e.texts = make([]searchText, len(e.published))
	for i := range e.published {
		e.texts[i] = newSearchText(&e.published[i])
	}

	for _, c := range in.Preferences.FavoriteCuisines {
		e.cuisineKW = append(e.cuisineKW, CuisineKeywords(c)...)
	}
	for _, d := range in.Preferences.DietaryRestrictions {
		e.dietaryKW = append(e.dietaryKW, DietaryKeywords(d)...)
	}
	for _, m := range in.Preferences.MealTypes {
		e.mealTypeKW = append(e.mealTypeKW, MealTypeKeywords(m)...)
	}

	if len(in.Ratings) > 0 {
		sum := 0
		for _, v := range in.Ratings {
			sum += v
		}
		e.meanGiven = float64(sum) / float64(len(in.Ratings))
		e.rated = true
	}

	e.logger.Debug().
		Int("recipes", len(in.Recipes)).
		Int("published", len(e.published)).
		Int("ratings_given", len(in.Ratings)).
		Int("views", len(in.ViewHistory)).
		Msg("engine constructed")

	return e
}

// ViewHistory returns a copy of the user's view history.
func (e *Engine) ViewHistory() []string {
	return append([]string(nil), e.viewHistory...)
}

// IsNewUser reports whether the user has no views, no ratings and no
// stated preferences.
func (e *Engine) IsNewUser() bool {
	return len(e.viewHistory) == 0 && !e.rated && e.prefs.IsEmpty()
}

// PublishedCount returns the number of published recipes in the snapshot.
func (e *Engine) PublishedCount() int {
	return len(e.published)
}

// rank sorts by descending score and truncates to limit. The sort is
// stable so equal scores keep input order.
func rank(scored []ScoredRecipe, limit int) []ScoredRecipe {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if limit < len(scored) {
		scored = scored[:limit]
	}
	return scored
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
