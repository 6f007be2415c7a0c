// Larder - Recipe Sharing and Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/larder

// Package recommend scores and ranks recipes for a single user.
//
// # Model
//
// An Engine is built per request from a read-only snapshot:
//
//   - the published recipe catalog, with average rating and rating count
//     already joined by the caller
//   - the user's stated preferences (cuisines, dietary restrictions,
//     meal types, maximum cook time)
//   - the user's view history and the ratings the user has given
//
// Every query is a pure function of that snapshot and the evaluation time,
// so two engines built from identical input return identical lists.
//
// # Queries
//
//	engine := recommend.NewEngine(recommend.Input{
//	    Recipes:     recipes,
//	    Preferences: prefs,
//	    Ratings:     ratings,
//	}, recommend.DefaultConfig(), logger)
//
//	personal := engine.Recommendations(exclude, 6)
//	similar := engine.Similar("r-42", 6)
//	trending := engine.Trending(6, recommend.PeriodWeekly)
//	party := engine.ForOccasion(recommend.OccasionParty, 6)
//	soups := engine.TrendingByCategory("soups", 6)
//	starters := engine.TrendingForNewUsers(6)
//
// Each query returns []ScoredRecipe ordered by descending score. Use
// Recipes to drop the scores when only the recipes are needed.
//
// # Keyword Matching
//
// Cuisine, dietary, meal-type, occasion and category tags resolve to lists
// of lowercase keywords (see keywords.go). A recipe matches a keyword when
// the keyword is a substring of its lowercased title or description. There
// is no tokenization or stemming, so "vegan" also matches "veganism".
//
// # Ordering
//
// Ranking uses a stable sort. Recipes with equal scores keep the order in
// which they appeared in Input.Recipes.
//
// # Thread Safety
//
// An Engine never mutates its input and holds no mutable state after
// construction. It is safe for concurrent use.
package recommend
